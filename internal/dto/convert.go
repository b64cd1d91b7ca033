package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/core/domain"
)

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Converted decimal.Decimal `json:"converted"`
	InWords   string          `json:"inWords"`
}

// ToConversionResponse converts a domain.Conversion to a ConversionResponse DTO.
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		From:      c.From,
		To:        c.To,
		Amount:    c.Amount,
		Rate:      c.Rate,
		Converted: c.Converted,
		InWords:   c.InWords,
	}
}

// WordsResponse defines the data returned when rendering an amount in the
// magnitude words of a currency's format.
type WordsResponse struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	InWords  string          `json:"inWords"`
}
