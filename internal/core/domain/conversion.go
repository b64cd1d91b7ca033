package domain

import "github.com/shopspring/decimal"

// Conversion is the result of applying a stored rate to an amount.
type Conversion struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Converted decimal.Decimal `json:"converted"`
	InWords   string          `json:"inWords"` // Converted rendered in the target currency's convention
}
