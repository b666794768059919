package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"sort"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/lautanbiru/fish_ledger_app/internal/dto"
	"github.com/lautanbiru/fish_ledger_app/internal/middleware"
	"github.com/lautanbiru/fish_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for daily report snapshots.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
	title            string
	tmpl             *template.Template
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingSvcFacade, title string) *reportHandler {
	return &reportHandler{
		reportingService: rs,
		title:            title,
		tmpl:             template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// registerReportRoutes registers routes related to daily reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, cfg *config.Config) {
	h := newReportHandler(reportingService, cfg.ReportTitle)

	reports := rg.Group("/reports")
	{
		reports.GET("/:date", h.getDailyReport)
	}
}

// getDailyReport godoc
// @Summary Get the daily report
// @Description Builds the read-only report snapshot for a date; ?format=html renders a printable page instead of JSON
// @Tags reports
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   format query string false "Output format (html)"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/{date} [get]
func (h *reportHandler) getDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BuildDailyReport(c.Request.Context(), date)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to build report")
		return
	}

	if c.Query("format") == "html" {
		h.renderHTML(c, logger, report)
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

type reportPage struct {
	Title    string
	Report   *domain.DailyReport
	Products []string
}

func (h *reportHandler) renderHTML(c *gin.Context, logger *slog.Logger, report *domain.DailyReport) {
	// Column order follows the price book so every row lines up.
	products := make([]string, 0, len(report.Prices))
	for name := range report.Prices {
		products = append(products, name)
	}
	sort.Strings(products)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, reportPage{Title: h.title, Report: report, Products: products}); err != nil {
		logger.Error("Failed to render report template", slog.String("error", err.Error()))
	}
}

const reportTemplate = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.Report.Date}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
th, td { border: 1px solid #444; padding: 4px 8px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
caption { font-weight: bold; margin-bottom: 0.5em; text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<h2>{{.Report.Date}}</h2>

<table>
<caption>Penjualan</caption>
<tr>
<th>Pelanggan</th>
{{range .Products}}<th>{{.}}</th>{{end}}
<th>Total</th><th>Bayar</th><th>Kas Bon</th>
</tr>
{{range .Report.Customers}}{{$row := .}}
<tr>
<td>{{.Name}}</td>
{{range $.Products}}<td>{{index $row.Items .}}</td>{{end}}
<td>{{.Total}}</td><td>{{.Paid}}</td><td>{{.KasBon}}</td>
</tr>
{{end}}
</table>

<table>
<caption>Stok</caption>
<tr><th>Ikan</th><th>Masuk</th><th>Keluar</th><th>Mati</th><th>Sisa</th></tr>
{{range .Products}}
<tr>
<td>{{.}}</td>
<td>{{index $.Report.Stock.StockIn .}}</td>
<td>{{index $.Report.Stock.StockOut .}}</td>
<td>{{index $.Report.Stock.StockDead .}}</td>
<td>{{index $.Report.Stock.StockRemaining .}}</td>
</tr>
{{end}}
</table>

<p>Total pendapatan: {{.Report.Summary.TotalRevenue}}<br>
Total kas bon: {{.Report.Summary.TotalKasBon}}<br>
Jumlah pelanggan: {{.Report.Summary.TotalCustomers}}</p>
</body>
</html>
`
