package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/lautanbiru/fish_ledger_app/internal/dto"
	"github.com/lautanbiru/fish_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the per-date ledger: transactions,
// payments, stock and day closeout.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes under /days/:date.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	days := rg.Group("/days/:date")
	{
		days.GET("", h.getDay)
		days.PUT("/customers/:id/items/:product", h.setItemQuantity)
		days.PUT("/customers/:id/payment", h.recordPayment)
		days.PUT("/stock/in/:product", h.setStockIn)
		days.PUT("/stock/dead/:product", h.setStockDead)
		days.POST("/closeout", h.closeoutDay)
	}
}

// respondLedgerError maps service errors onto HTTP statuses shared by every
// ledger route.
func respondLedgerError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// getDay godoc
// @Summary Get the day view
// @Description Retrieves all transactions, the stock record and kas bon balances for a date
// @Tags days
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to load day"
// @Router /days/{date} [get]
func (h *ledgerHandler) getDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}

	day, err := h.ledgerService.GetDay(c.Request.Context(), date)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to load day")
		return
	}

	c.JSON(http.StatusOK, dto.ToDayResponse(day))
}

// setItemQuantity godoc
// @Summary Set an item quantity
// @Description Records a quantity for one product on a customer's daily transaction; zero removes the product and the total is recomputed from the price book
// @Tags days
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   id path int true "Customer ID"
// @Param   product path string true "Product name"
// @Param   quantity body dto.SetItemQuantityRequest true "Quantity"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to save transaction"
// @Router /days/{date}/customers/{id}/items/{product} [put]
func (h *ledgerHandler) setItemQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req dto.SetItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetItemQuantity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.SetItemQuantity(c.Request.Context(), date, id, c.Param("product"), req.Quantity)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to save transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment for a customer's day and reconciles the shortfall into the kas bon; null clears the recorded payment
// @Tags days
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   id path int true "Customer ID"
// @Param   payment body dto.RecordPaymentRequest true "Paid amount (nullable)"
// @Success 200 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /days/{date}/customers/{id}/payment [put]
func (h *ledgerHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	credit, err := h.ledgerService.RecordPayment(c.Request.Context(), date, id, req.Paid)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}

// setStockIn godoc
// @Summary Set stock-in
// @Description Records the incoming stock quantity for a product on a date and re-derives the stock record
// @Tags days
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   product path string true "Product name"
// @Param   quantity body dto.SetStockQuantityRequest true "Quantity"
// @Success 200 {object} dto.StockDayResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save stock"
// @Router /days/{date}/stock/in/{product} [put]
func (h *ledgerHandler) setStockIn(c *gin.Context) {
	h.setStock(c, h.ledgerService.SetStockIn)
}

// setStockDead godoc
// @Summary Set dead stock
// @Description Records the dead stock quantity for a product on a date and re-derives the stock record
// @Tags days
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   product path string true "Product name"
// @Param   quantity body dto.SetStockQuantityRequest true "Quantity"
// @Success 200 {object} dto.StockDayResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save stock"
// @Router /days/{date}/stock/dead/{product} [put]
func (h *ledgerHandler) setStockDead(c *gin.Context) {
	h.setStock(c, h.ledgerService.SetStockDead)
}

func (h *ledgerHandler) setStock(c *gin.Context, apply func(ctx context.Context, date, product string, quantity int64) (*domain.StockDay, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var req dto.SetStockQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	stock, err := apply(c.Request.Context(), date, c.Param("product"), req.Quantity)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to save stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockDayResponse(stock))
}

// closeoutDay godoc
// @Summary Close out a day
// @Description Deletes every transaction on the date and resets its stock record; kas bon balances are untouched
// @Tags days
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to close out day"
// @Router /days/{date}/closeout [post]
func (h *ledgerHandler) closeoutDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.CloseoutDay(c.Request.Context(), date); err != nil {
		respondLedgerError(c, logger, err, "Failed to close out day")
		return
	}

	c.Status(http.StatusNoContent)
}
