package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	Name   string `json:"name" binding:"required,alpha,min=1,max=16"`
	Format string `json:"format" binding:"required"` // "isf" or "usf", case-insensitive
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Name   string                     `json:"name"`
	Format string                     `json:"format"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Name:   c.Name,
		Format: c.Format.String(),
		Rates:  c.Rates,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of
// CurrencyResponse DTOs.
func ToListCurrencyResponse(currencies []*domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}
