package services_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/adapters/store/flatfile"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	"github.com/sporax/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileBackedRegistry wires the registry to real flat-file stores in a
// temporary directory.
func newFileBackedRegistry(t *testing.T) (*services.RegistryService, string, string) {
	t.Helper()
	dir := t.TempDir()
	currenciesPath := filepath.Join(dir, ".currencies.txt")
	ratesPath := filepath.Join(dir, ".rates.txt")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	registry := services.NewRegistryService(
		flatfile.NewCurrencyRepository(currenciesPath, logger),
		flatfile.NewRateRepository(ratesPath, logger),
	)
	return registry, currenciesPath, ratesPath
}

func TestCurrencyRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newFileBackedRegistry(t)

	usd, err := registry.NewCurrency(ctx, "usd", domain.WesternFormat)
	require.NoError(t, err)
	require.NoError(t, registry.AddToDatabase(ctx, usd))

	inr, err := registry.NewCurrency(ctx, "inr", domain.IndianFormat)
	require.NoError(t, err)
	require.NoError(t, registry.AddToDatabase(ctx, inr))

	reloaded, err := registry.InitializeAllCurrencies(ctx)
	require.NoError(t, err)

	require.Len(t, reloaded, 2)
	assert.Equal(t, "USD", reloaded[0].Name)
	assert.Equal(t, domain.WesternFormat, reloaded[0].Format)
	assert.Equal(t, "INR", reloaded[1].Name)
	assert.Equal(t, domain.IndianFormat, reloaded[1].Format)
}

func TestSetRateThenGetRateThroughStore(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newFileBackedRegistry(t)

	usd, err := registry.NewCurrency(ctx, "USD", domain.WesternFormat)
	require.NoError(t, err)
	require.NoError(t, registry.AddToDatabase(ctx, usd))

	rate := decimal.RequireFromString("83.2")
	require.NoError(t, registry.SetRate(ctx, usd, "inr", rate))

	got, err := registry.GetRate(ctx, usd, "INR")
	require.NoError(t, err)
	assert.True(t, got.Equal(rate))

	// A fresh record hydrates the same rate back from the store.
	fresh, err := registry.GetCurrency(ctx, "USD")
	require.NoError(t, err)
	got, err = registry.GetRate(ctx, fresh, "INR")
	require.NoError(t, err)
	assert.True(t, got.Equal(rate))
}

func TestSetRateTwiceUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	registry, _, ratesPath := newFileBackedRegistry(t)

	usd, err := registry.NewCurrency(ctx, "USD", domain.WesternFormat)
	require.NoError(t, err)

	require.NoError(t, registry.SetRate(ctx, usd, "INR", decimal.RequireFromString("82.5")))
	require.NoError(t, registry.SetRate(ctx, usd, "INR", decimal.RequireFromString("83.2")))

	data, err := os.ReadFile(ratesPath)
	require.NoError(t, err)
	assert.Equal(t, "USD:INR:83.2\n", string(data))

	got, err := registry.GetRate(ctx, usd, "INR")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("83.2")))
}

func TestClearRatesEmptiesConvertsTo(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newFileBackedRegistry(t)

	usd, err := registry.NewCurrency(ctx, "USD", domain.WesternFormat)
	require.NoError(t, err)
	require.NoError(t, registry.SetRate(ctx, usd, "INR", decimal.RequireFromString("83.2")))
	require.NoError(t, registry.SetRate(ctx, usd, "EUR", decimal.RequireFromString("0.9")))

	require.NoError(t, registry.ClearRates(ctx, usd))

	assert.False(t, usd.ConvertsTo("INR"))
	assert.False(t, usd.ConvertsTo("EUR"))
	_, err = registry.GetRate(ctx, usd, "INR")
	assert.Error(t, err)
}

func TestInitializeAllCurrenciesDedupesAndCompacts(t *testing.T) {
	ctx := context.Background()
	registry, currenciesPath, _ := newFileBackedRegistry(t)

	// Hand-written store with blank-line runs and a duplicated name.
	content := "\nUSD:usf\n\n\nINR:isf\nUSD:isf\n\nEUR:usf\n"
	require.NoError(t, os.WriteFile(currenciesPath, []byte(content), 0o644))

	currencies, err := registry.InitializeAllCurrencies(ctx)
	require.NoError(t, err)

	require.Len(t, currencies, 3)
	assert.Equal(t, "USD", currencies[0].Name)
	assert.Equal(t, domain.WesternFormat, currencies[0].Format, "first USD line wins")
	assert.Equal(t, "INR", currencies[1].Name)
	assert.Equal(t, "EUR", currencies[2].Name)

	data, err := os.ReadFile(currenciesPath)
	require.NoError(t, err)
	assert.Equal(t, "USD:usf\nINR:isf\nUSD:isf\nEUR:usf\n", string(data), "compaction drops blank lines, keeps order")
}

func TestRemoveFromDatabaseDoesNotCascadeRates(t *testing.T) {
	ctx := context.Background()
	registry, _, ratesPath := newFileBackedRegistry(t)

	usd, err := registry.NewCurrency(ctx, "USD", domain.WesternFormat)
	require.NoError(t, err)
	require.NoError(t, registry.AddToDatabase(ctx, usd))

	inr, err := registry.NewCurrency(ctx, "INR", domain.IndianFormat)
	require.NoError(t, err)
	require.NoError(t, registry.AddToDatabase(ctx, inr))

	require.NoError(t, registry.SetRate(ctx, inr, "USD", decimal.RequireFromString("0.012")))
	require.NoError(t, registry.RemoveFromDatabase(ctx, usd))

	// INR still holds its rate towards the removed currency.
	data, err := os.ReadFile(ratesPath)
	require.NoError(t, err)
	assert.Equal(t, "INR:USD:0.012\n", string(data))

	_, err = registry.GetCurrency(ctx, "USD")
	assert.Error(t, err)
}
