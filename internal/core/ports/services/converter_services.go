package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/core/domain"
)

// ConverterSvcFacade converts amounts between registered currencies and
// renders amounts in the magnitude words of a currency's format.
type ConverterSvcFacade interface {
	// Convert applies the stored rate from one currency to another and
	// renders the result in the target currency's naming convention.
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Conversion, error)

	// AmountInWords renders an amount using the named currency's convention.
	AmountInWords(ctx context.Context, name string, amount decimal.Decimal) (string, error)
}
