package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/lautanbiru/fish_ledger_app/internal/dto"
	"github.com/lautanbiru/fish_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceBookHandler handles HTTP requests related to the price book.
type priceBookHandler struct {
	priceBookService portssvc.PriceBookSvcFacade
}

// newPriceBookHandler creates a new priceBookHandler.
func newPriceBookHandler(ps portssvc.PriceBookSvcFacade) *priceBookHandler {
	return &priceBookHandler{
		priceBookService: ps,
	}
}

// registerPriceBookRoutes registers routes related to the price book.
func registerPriceBookRoutes(rg *gin.RouterGroup, priceBookService portssvc.PriceBookSvcFacade) {
	h := newPriceBookHandler(priceBookService)

	prices := rg.Group("/prices")
	{
		prices.GET("", h.listPrices)
		prices.POST("", h.addProduct)
		prices.PUT("", h.setPrices)
		prices.PUT("/:name", h.setPrice)
	}
}

// listPrices godoc
// @Summary List the price book
// @Description Retrieves every product and its unit price, seeding the default catalog on first use
// @Tags prices
// @Produce  json
// @Success 200 {array} dto.PriceResponse
// @Failure 500 {object} map[string]string "Failed to list prices"
// @Router /prices [get]
func (h *priceBookHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.priceBookService.ListPrices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list prices from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPriceResponse(products))
}

// addProduct godoc
// @Summary Add a product
// @Description Adds a new product to the price book
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   product body dto.AddProductRequest true "Product details"
// @Success 201 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Product already exists"
// @Failure 500 {object} map[string]string "Failed to add product"
// @Router /prices [post]
func (h *priceBookHandler) addProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.priceBookService.AddProduct(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to add duplicate product", slog.String("product", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Product '%s' already exists", req.Name)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPriceResponse(product))
}

// setPrice godoc
// @Summary Set one price
// @Description Updates (or creates) the unit price of a single product
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   name path string true "Product name"
// @Param   price body dto.SetPriceRequest true "New price"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to set price"
// @Router /prices/{name} [put]
func (h *priceBookHandler) setPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	var req dto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.priceBookService.SetPrice(c.Request.Context(), name, req.Price); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set price in service", slog.String("error", err.Error()), slog.String("product", name))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PriceResponse{Name: name, Price: domain.CoerceAmount(req.Price)})
}

// setPrices godoc
// @Summary Bulk price edit
// @Description Applies a name to price map of price updates
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   prices body dto.SetPricesRequest true "Price updates"
// @Success 200 {array} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to set prices"
// @Router /prices [put]
func (h *priceBookHandler) setPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.priceBookService.SetPrices(c.Request.Context(), req.Prices); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set prices in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set prices"})
		}
		return
	}

	products, err := h.priceBookService.ListPrices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reload prices after bulk edit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prices"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceResponse(products))
}
