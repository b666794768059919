package dto

import (
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportCustomerRow is one customer line of the daily report.
type ReportCustomerRow struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Items    map[string]int64 `json:"items"`
	Total    decimal.Decimal  `json:"total"`
	Paid     decimal.Decimal  `json:"paid"`
	KasBon   decimal.Decimal  `json:"kasBon"`
}

// ReportSummaryResponse aggregates the day's report rows.
type ReportSummaryResponse struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalKasBon    decimal.Decimal `json:"totalKasBon"`
	TotalCustomers int             `json:"totalCustomers"`
}

// DailyReportResponse defines the full report snapshot payload.
type DailyReportResponse struct {
	Date      string                     `json:"date"`
	Customers []ReportCustomerRow        `json:"customers"`
	Summary   ReportSummaryResponse      `json:"summary"`
	Stock     StockDayResponse           `json:"stock"`
	Prices    map[string]decimal.Decimal `json:"prices"`
}

// ToDailyReportResponse converts a domain.DailyReport to DailyReportResponse DTO
func ToDailyReportResponse(report *domain.DailyReport) DailyReportResponse {
	rows := make([]ReportCustomerRow, len(report.Customers))
	for i, row := range report.Customers {
		rows[i] = ReportCustomerRow{
			Name:     row.Name,
			Category: row.Category,
			Items:    row.Items,
			Total:    row.Total,
			Paid:     row.Paid,
			KasBon:   row.KasBon,
		}
	}
	return DailyReportResponse{
		Date:      report.Date,
		Customers: rows,
		Summary: ReportSummaryResponse{
			TotalRevenue:   report.Summary.TotalRevenue,
			TotalKasBon:    report.Summary.TotalKasBon,
			TotalCustomers: report.Summary.TotalCustomers,
		},
		Stock:  ToStockDayResponse(&report.Stock),
		Prices: report.Prices,
	}
}
