package flatfile

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestUpsertRateRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rates.txt")
	repo := NewRateRepository(path, testLogger())

	require.NoError(t, repo.UpsertRate(ctx, "USD", "INR", mustDecimal(t, "83.2")))

	rates, err := repo.RatesFrom(ctx, "USD")
	require.NoError(t, err)
	require.Contains(t, rates, "INR")
	assert.True(t, rates["INR"].Equal(mustDecimal(t, "83.2")))
}

func TestUpsertRateUpdatesInsteadOfDuplicating(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rates.txt")
	repo := NewRateRepository(path, testLogger())

	require.NoError(t, repo.UpsertRate(ctx, "USD", "INR", mustDecimal(t, "82.5")))
	require.NoError(t, repo.UpsertRate(ctx, "USD", "EUR", mustDecimal(t, "0.9")))
	require.NoError(t, repo.UpsertRate(ctx, "USD", "INR", mustDecimal(t, "83.2")))

	// Exactly one line per directed pair after the second set.
	content := readStore(t, path)
	assert.Equal(t, 1, strings.Count(content, "USD:INR:"))
	assert.Contains(t, content, "USD:INR:83.2\n")

	rates, err := repo.RatesFrom(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, rates["INR"].Equal(mustDecimal(t, "83.2")))
	assert.True(t, rates["EUR"].Equal(mustDecimal(t, "0.9")))
}

func TestUpsertRateMatchesPairTokensNotPrefixes(t *testing.T) {
	// The legacy rate code spliced the new rate at a fixed character offset
	// of the "FROM:TO:" prefix; pairs with longer names broke it. Token
	// matching keeps unrelated pairs intact.
	ctx := context.Background()
	path := writeStore(t, "USDT:INR:90\nUSD:INR:83\n")
	repo := NewRateRepository(path, testLogger())

	require.NoError(t, repo.UpsertRate(ctx, "USD", "INR", mustDecimal(t, "84")))

	assert.Equal(t, "USDT:INR:90\nUSD:INR:84\n", readStore(t, path))
}

func TestRatesFromIgnoresOtherSourcesAndBadLines(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "USD:INR:83.2\nEUR:INR:90.1\nUSD:EUR\nUSD:GBP:not-a-number\n\nUSD:JPY:151\n")
	repo := NewRateRepository(path, testLogger())

	rates, err := repo.RatesFrom(ctx, "USD")
	require.NoError(t, err)

	require.Len(t, rates, 2)
	assert.True(t, rates["INR"].Equal(mustDecimal(t, "83.2")))
	assert.True(t, rates["JPY"].Equal(mustDecimal(t, "151")))
}

func TestDeleteRatesFromRemovesOnlyThatSource(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "USD:INR:83.2\nINR:USD:0.012\nUSD:EUR:0.9\n")
	repo := NewRateRepository(path, testLogger())

	require.NoError(t, repo.DeleteRatesFrom(ctx, "USD"))

	assert.Equal(t, "INR:USD:0.012\n", readStore(t, path))

	rates, err := repo.RatesFrom(ctx, "USD")
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestDeleteAllRatesTruncatesTheStore(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "USD:INR:83.2\nINR:USD:0.012\n")
	repo := NewRateRepository(path, testLogger())

	require.NoError(t, repo.DeleteAllRates(ctx))

	assert.Equal(t, "", readStore(t, path))
}
