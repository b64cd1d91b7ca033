package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/apperrors"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	portsrepo "github.com/sporax/currency_converter_app/internal/core/ports/repositories"
)

// RegistryService provides CRUD over persisted currency and rate data plus
// rate lookup for conversions.
type RegistryService struct {
	currencyRepo portsrepo.CurrencyRepository
	rateRepo     portsrepo.RateRepository
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(currencyRepo portsrepo.CurrencyRepository, rateRepo portsrepo.RateRepository) *RegistryService {
	return &RegistryService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
	}
}

// NewCurrency builds a currency record, normalizing the name to uppercase and
// hydrating its rates from the rate store. A missing rate store simply means
// the currency has no stored rates yet.
func (s *RegistryService) NewCurrency(ctx context.Context, name string, format domain.Format) (*domain.Currency, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("%w: currency name must not be empty", apperrors.ErrValidation)
	}
	// Names become store tokens, so the field separator cannot appear in them.
	if strings.Contains(name, ":") {
		return nil, fmt.Errorf("%w: currency name must not contain ':'", apperrors.ErrValidation)
	}

	rates, err := s.rateRepo.RatesFrom(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate rates for %s: %w", name, err)
	}
	return &domain.Currency{Name: name, Format: format, Rates: rates}, nil
}

// AddToDatabase persists the record's definition. Adding a name that is
// already registered returns apperrors.ErrDuplicate and leaves the store
// unchanged.
func (s *RegistryService) AddToDatabase(ctx context.Context, c *domain.Currency) error {
	if err := s.currencyRepo.SaveCurrency(ctx, domain.Definition{Name: c.Name, Format: c.Format}); err != nil {
		return fmt.Errorf("failed to add currency %s to store: %w", c.Name, err)
	}
	return nil
}

// RemoveFromDatabase deletes the record's definition from the currency store.
// Rates other currencies hold towards it are not cascaded.
func (s *RegistryService) RemoveFromDatabase(ctx context.Context, c *domain.Currency) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, c.Name); err != nil {
		return fmt.Errorf("failed to remove currency %s from store: %w", c.Name, err)
	}
	return nil
}

// GetRate returns the hydrated rate from the record to the other currency.
// An absent pair is a loud apperrors.ErrNotFound, never a default value.
func (s *RegistryService) GetRate(ctx context.Context, c *domain.Currency, other string) (decimal.Decimal, error) {
	other = strings.ToUpper(strings.TrimSpace(other))
	rate, ok := c.Rates[other]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no conversion rate from %s to %s", apperrors.ErrNotFound, c.Name, other)
	}
	return rate, nil
}

// SetRate stores a conversion rate for the pair, replacing any existing one,
// then re-hydrates the record's in-memory rates from the rewritten store.
func (s *RegistryService) SetRate(ctx context.Context, c *domain.Currency, other string, rate decimal.Decimal) error {
	other = strings.ToUpper(strings.TrimSpace(other))
	if other == "" {
		return fmt.Errorf("%w: target currency name must not be empty", apperrors.ErrValidation)
	}
	if other == c.Name {
		return fmt.Errorf("%w: a currency cannot store a rate to itself", apperrors.ErrValidation)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: conversion rate must be positive", apperrors.ErrValidation)
	}

	if err := s.rateRepo.UpsertRate(ctx, c.Name, other, rate); err != nil {
		return fmt.Errorf("failed to store rate %s->%s: %w", c.Name, other, err)
	}
	rates, err := s.rateRepo.RatesFrom(ctx, c.Name)
	if err != nil {
		return fmt.Errorf("failed to re-hydrate rates for %s: %w", c.Name, err)
	}
	c.Rates = rates
	return nil
}

// ClearRates removes every stored rate originating from the record.
func (s *RegistryService) ClearRates(ctx context.Context, c *domain.Currency) error {
	if err := s.rateRepo.DeleteRatesFrom(ctx, c.Name); err != nil {
		return fmt.Errorf("failed to clear rates for %s: %w", c.Name, err)
	}
	c.Rates = make(map[string]decimal.Decimal)
	return nil
}

// ClearAllRates empties the rate store entirely.
func (s *RegistryService) ClearAllRates(ctx context.Context) error {
	if err := s.rateRepo.DeleteAllRates(ctx); err != nil {
		return fmt.Errorf("failed to clear rate store: %w", err)
	}
	return nil
}

// Compact prunes blank lines from both stores, preserving line order.
func (s *RegistryService) Compact(ctx context.Context) error {
	if err := s.currencyRepo.Compact(ctx); err != nil {
		return fmt.Errorf("failed to compact currency store: %w", err)
	}
	if err := s.rateRepo.Compact(ctx); err != nil {
		return fmt.Errorf("failed to compact rate store: %w", err)
	}
	return nil
}

// GetCurrency retrieves a registered currency by name, rates hydrated.
func (s *RegistryService) GetCurrency(ctx context.Context, name string) (*domain.Currency, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	defs, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	for _, def := range defs {
		if def.Name == name {
			return s.NewCurrency(ctx, def.Name, def.Format)
		}
	}
	return nil, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrNotFound, name)
}

// InitializeAllCurrencies compacts both stores, then reconstructs every
// registered currency in store order. The first occurrence of a duplicated
// name wins; later duplicates are skipped.
func (s *RegistryService) InitializeAllCurrencies(ctx context.Context) ([]*domain.Currency, error) {
	if err := s.Compact(ctx); err != nil {
		return nil, err
	}
	defs, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	seen := make(map[string]struct{}, len(defs))
	currencies := make([]*domain.Currency, 0, len(defs))
	for _, def := range defs {
		if _, dup := seen[def.Name]; dup {
			continue
		}
		seen[def.Name] = struct{}{}
		c, err := s.NewCurrency(ctx, def.Name, def.Format)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, nil
}
