package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sporax/currency_converter_app/internal/apperrors"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
	"github.com/sporax/currency_converter_app/internal/dto"
	"github.com/sporax/currency_converter_app/internal/middleware"
)

// rateHandler handles HTTP requests related to conversion rates.
type rateHandler struct {
	registry portssvc.RegistrySvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(registry portssvc.RegistrySvcFacade) *rateHandler {
	return &rateHandler{registry: registry}
}

// registerRateRoutes registers routes related to conversion rates.
func registerRateRoutes(rg *gin.RouterGroup, registry portssvc.RegistrySvcFacade) {
	h := newRateHandler(registry)

	currencies := rg.Group("/currencies/:name/rates")
	{
		currencies.GET("", h.listRates)
		currencies.DELETE("", h.clearRates)
		currencies.GET("/:to", h.getRate)
		currencies.PUT("/:to", h.setRate)
	}
	rg.DELETE("/rates", h.clearAllRates)
}

// setRate stores a conversion rate for the (name, to) pair, replacing any
// previous value for the pair.
func (h *rateHandler) setRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")
	to := c.Param("to")

	var req dto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency for setRate", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set rate"})
		return
	}

	if err := h.registry.SetRate(c.Request.Context(), currency, to, req.Rate); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set rate", slog.String("from", currency.Name), slog.String("to", to), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set rate"})
		return
	}

	logger.Info("Rate stored successfully", slog.String("from", currency.Name), slog.String("to", to))
	c.JSON(http.StatusOK, dto.RateResponse{From: currency.Name, To: strings.ToUpper(to), Rate: req.Rate})
}

// getRate returns the stored rate for the (name, to) pair. An absent pair is
// a 404, never a default rate.
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")
	to := c.Param("to")

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency for getRate", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rate"})
		return
	}

	rate, err := h.registry.GetRate(c.Request.Context(), currency, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get rate", slog.String("from", currency.Name), slog.String("to", to), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rate"})
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{From: currency.Name, To: strings.ToUpper(to), Rate: rate})
}

// listRates returns every outbound rate stored for the currency.
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency for listRates", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"from": currency.Name, "rates": currency.Rates})
}

// clearRates removes every outbound rate stored for the currency.
func (h *rateHandler) clearRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	currency, err := h.registry.GetCurrency(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not found", name)})
			return
		}
		logger.Error("Failed to get currency for clearRates", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rates"})
		return
	}

	if err := h.registry.ClearRates(c.Request.Context(), currency); err != nil {
		logger.Error("Failed to clear rates", slog.String("name", currency.Name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rates"})
		return
	}

	logger.Info("Rates cleared", slog.String("name", currency.Name))
	c.Status(http.StatusNoContent)
}

// clearAllRates truncates the rate store entirely.
func (h *rateHandler) clearAllRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.registry.ClearAllRates(c.Request.Context()); err != nil {
		logger.Error("Failed to clear rate store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rates"})
		return
	}

	logger.Info("Rate store cleared")
	c.Status(http.StatusNoContent)
}
