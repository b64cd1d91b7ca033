package dto

import "github.com/shopspring/decimal"

// SetRateRequest defines the payload for storing a conversion rate.
type SetRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// RateResponse defines the data returned for a single directed rate.
type RateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}
