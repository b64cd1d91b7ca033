package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateRepository persists directed conversion rates in the rate store.
type RateRepository interface {
	// RatesFrom returns every stored rate whose source currency matches,
	// keyed by target currency name. A missing store reads as empty.
	RatesFrom(ctx context.Context, from string) (map[string]decimal.Decimal, error)

	// UpsertRate replaces the stored rate for the (from, to) pair, or appends
	// a new entry if the pair was never stored. The store never holds more
	// than one line per directed pair afterwards.
	UpsertRate(ctx context.Context, from, to string, rate decimal.Decimal) error

	// DeleteRatesFrom removes every rate whose source currency matches.
	DeleteRatesFrom(ctx context.Context, from string) error

	// DeleteAllRates truncates the rate store.
	DeleteAllRates(ctx context.Context) error

	// Compact removes blank lines from the store, preserving line order.
	Compact(ctx context.Context) error
}
