package domain

import "github.com/shopspring/decimal"

// Currency represents a registered currency and its outbound conversion rates.
type Currency struct {
	Name   string                     `json:"name"`   // Primary key, always uppercase (e.g., "USD")
	Format Format                     `json:"format"` // Magnitude-naming convention
	Rates  map[string]decimal.Decimal `json:"rates"`  // Target currency name -> conversion multiplier
}

// ConvertsTo reports whether a conversion rate to the other currency is stored.
func (c *Currency) ConvertsTo(other string) bool {
	_, ok := c.Rates[other]
	return ok
}

// Definition is a single entry of the currency store: a name and its format,
// without the hydrated rates.
type Definition struct {
	Name   string
	Format Format
}
