package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/apperrors"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
	"github.com/sporax/currency_converter_app/internal/dto"
	"github.com/sporax/currency_converter_app/internal/middleware"
)

// convertHandler handles HTTP requests for conversions and word rendering.
type convertHandler struct {
	converter portssvc.ConverterSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(converter portssvc.ConverterSvcFacade) *convertHandler {
	return &convertHandler{converter: converter}
}

// registerConvertRoutes registers the conversion and words routes.
func registerConvertRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvcFacade) {
	h := newConvertHandler(converter)

	rg.GET("/convert", h.convert)
	rg.GET("/currencies/:name/words", h.amountInWords)
}

// convert applies the stored rate between two currencies to an amount.
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' and 'to' query parameters are required"})
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'amount' must be a decimal number"})
		return
	}

	conversion, err := h.converter.Convert(c.Request.Context(), from, to, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to convert amount", slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// amountInWords renders an amount in the magnitude words of the currency's
// declared format.
func (h *convertHandler) amountInWords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'amount' must be a decimal number"})
		return
	}

	words, err := h.converter.AmountInWords(c.Request.Context(), name, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to render amount in words", slog.String("name", name), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WordsResponse{Currency: strings.ToUpper(name), Amount: amount, InWords: words})
}
