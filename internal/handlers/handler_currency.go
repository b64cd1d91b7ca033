package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sporax/currency_converter_app/internal/apperrors"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
	"github.com/sporax/currency_converter_app/internal/dto"
	"github.com/sporax/currency_converter_app/internal/middleware"
)

// currencyHandler handles HTTP requests related to currency definitions.
type currencyHandler struct {
	registry portssvc.RegistrySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(registry portssvc.RegistrySvcFacade) *currencyHandler {
	return &currencyHandler{registry: registry}
}

// registerCurrencyRoutes registers routes related to currency definitions.
func registerCurrencyRoutes(rg *gin.RouterGroup, registry portssvc.RegistrySvcFacade) {
	h := newCurrencyHandler(registry)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:name", h.getCurrency)
		currencies.DELETE("/:name", h.deleteCurrency)
	}
}

// createCurrency registers a new currency in the currency store.
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	format, err := domain.ParseFormat(req.Format)
	if err != nil {
		logger.Warn("Rejected unknown format code", slog.String("format", req.Format))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency, err := h.registry.NewCurrency(c.Request.Context(), req.Name, format)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build currency record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		return
	}

	if err := h.registry.AddToDatabase(c.Request.Context(), currency); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate currency", slog.String("name", currency.Name))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency '%s' already exists", currency.Name)})
			return
		}
		logger.Error("Failed to persist currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		return
	}

	logger.Info("Currency created successfully", slog.String("name", currency.Name))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listCurrencies reconstructs every registered currency in store order.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.registry.InitializeAllCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to initialize currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency retrieves a single currency by name, rates hydrated.
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency removes a currency definition from the currency store.
// Rates other currencies hold towards it are left in place.
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency for deletion", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete currency"})
		return
	}

	if err := h.registry.RemoveFromDatabase(c.Request.Context(), currency); err != nil {
		logger.Error("Failed to remove currency", slog.String("name", currency.Name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete currency"})
		return
	}

	logger.Info("Currency removed successfully", slog.String("name", currency.Name))
	c.Status(http.StatusNoContent)
}
