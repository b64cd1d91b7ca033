package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/core/domain"
)

// RegistryReaderSvc defines read operations over the currency registry.
type RegistryReaderSvc interface {
	// GetCurrency retrieves a registered currency by name, rates hydrated.
	GetCurrency(ctx context.Context, name string) (*domain.Currency, error)

	// InitializeAllCurrencies reconstructs every registered currency in store
	// order, keeping the first occurrence of a duplicated name.
	InitializeAllCurrencies(ctx context.Context) ([]*domain.Currency, error)

	// GetRate returns the stored conversion rate from the record to the other
	// currency. It fails with apperrors.ErrNotFound when no rate is stored.
	GetRate(ctx context.Context, c *domain.Currency, other string) (decimal.Decimal, error)
}

// RegistryWriterSvc defines write operations over the currency registry.
type RegistryWriterSvc interface {
	// NewCurrency builds a currency record, hydrating its rates from the
	// rate store. It does not persist the definition; see AddToDatabase.
	NewCurrency(ctx context.Context, name string, format domain.Format) (*domain.Currency, error)

	// AddToDatabase persists the record's definition in the currency store.
	AddToDatabase(ctx context.Context, c *domain.Currency) error

	// RemoveFromDatabase deletes the record's definition from the currency
	// store. Rates held by other currencies towards it are left alone.
	RemoveFromDatabase(ctx context.Context, c *domain.Currency) error

	// SetRate stores a conversion rate from the record to the other currency,
	// replacing any previous rate for the pair, then re-hydrates the record.
	SetRate(ctx context.Context, c *domain.Currency, other string, rate decimal.Decimal) error

	// ClearRates removes every stored rate originating from the record.
	ClearRates(ctx context.Context, c *domain.Currency) error

	// ClearAllRates empties the rate store entirely.
	ClearAllRates(ctx context.Context) error

	// Compact prunes blank lines from both stores.
	Compact(ctx context.Context) error
}

// RegistrySvcFacade combines all registry service interfaces.
type RegistrySvcFacade interface {
	RegistryReaderSvc
	RegistryWriterSvc
}
