package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/lautanbiru/fish_ledger_app/internal/dto"
	"github.com/lautanbiru/fish_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, ls portssvc.LedgerSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
		ledgerService:   ls,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newCustomerHandler(customerService, ledgerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
		customers.PUT("/:id/credit", h.setCredit)
	}
}

func customerIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return 0, false
	}
	return id, true
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves the customer directory; with ?search=term, matches are reordered to the front
// @Tags customers
// @Produce  json
// @Param   search query string false "Search term"
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.SearchCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// createCustomer godoc
// @Summary Register a customer
// @Description Adds a customer to the directory; category defaults when omitted
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to add customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.AddCustomer(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add customer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Edits a customer's name and optionally category
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path int true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to update customer"
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req.Name, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update customer in service", slog.String("error", err.Error()), slog.Int64("customer_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Remove a customer
// @Description Deletes a customer together with all their transactions and kas bon, then re-derives stock for the affected dates
// @Tags customers
// @Produce  json
// @Param   id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to remove customer"
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.RemoveCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to remove customer in service", slog.String("error", err.Error()), slog.Int64("customer_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove customer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// setCredit godoc
// @Summary Override kas bon
// @Description Sets a customer's kas bon balance directly, bypassing payment reconciliation
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path int true "Customer ID"
// @Param   credit body dto.SetCreditRequest true "New balance"
// @Success 200 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to set kas bon"
// @Router /customers/{id}/credit [put]
func (h *customerHandler) setCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req dto.SetCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCredit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	credit, err := h.ledgerService.SetCreditOverride(c.Request.Context(), id, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to set kas bon in service", slog.String("error", err.Error()), slog.Int64("customer_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set kas bon"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}
