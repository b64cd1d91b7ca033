package repositories

import (
	"context"

	"github.com/sporax/currency_converter_app/internal/core/domain"
)

// CurrencyRepository persists currency definitions in the currency store.
type CurrencyRepository interface {
	// SaveCurrency appends a definition to the store. If a definition with
	// the same name already exists the store is left untouched and
	// apperrors.ErrDuplicate is returned.
	SaveCurrency(ctx context.Context, def domain.Definition) error

	// DeleteCurrency removes every definition whose name matches exactly.
	DeleteCurrency(ctx context.Context, name string) error

	// ListCurrencies returns definitions in store order, duplicates included.
	// A missing store reads as empty.
	ListCurrencies(ctx context.Context) ([]domain.Definition, error)

	// Compact removes blank lines from the store, preserving line order.
	Compact(ctx context.Context) error
}
