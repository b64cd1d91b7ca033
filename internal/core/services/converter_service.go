package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/apperrors"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
	"github.com/sporax/currency_converter_app/internal/utils/magnitude"
)

// ConverterService converts amounts between registered currencies and renders
// amounts in the magnitude words of a currency's declared format.
type ConverterService struct {
	registry portssvc.RegistrySvcFacade
}

// NewConverterService creates a new ConverterService.
func NewConverterService(registry portssvc.RegistrySvcFacade) *ConverterService {
	return &ConverterService{registry: registry}
}

// Convert applies the stored rate from one currency to another. The result is
// also rendered in words using the target currency's naming convention.
func (s *ConverterService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Conversion, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	source, err := s.registry.GetCurrency(ctx, from)
	if err != nil {
		return nil, err
	}
	target, err := s.registry.GetCurrency(ctx, to)
	if err != nil {
		return nil, err
	}

	rate, err := s.registry.GetRate(ctx, source, target.Name)
	if err != nil {
		return nil, err
	}

	converted := amount.Mul(rate)
	return &domain.Conversion{
		From:      source.Name,
		To:        target.Name,
		Amount:    amount,
		Rate:      rate,
		Converted: converted,
		InWords:   scaleFor(target.Format).ToWords(converted),
	}, nil
}

// AmountInWords renders an amount using the named currency's convention.
func (s *ConverterService) AmountInWords(ctx context.Context, name string, amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	c, err := s.registry.GetCurrency(ctx, name)
	if err != nil {
		return "", err
	}
	return scaleFor(c.Format).ToWords(amount), nil
}

// scaleFor maps a persisted format tag to its naming convention. Anything
// that is not Western is treated as Indian, matching the legacy stores.
func scaleFor(f domain.Format) magnitude.Scale {
	if f == domain.WesternFormat {
		return magnitude.Western
	}
	return magnitude.Indian
}
