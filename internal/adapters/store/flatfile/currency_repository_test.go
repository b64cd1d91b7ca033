package flatfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sporax/currency_converter_app/internal/apperrors"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCurrencyAppendsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "currencies.txt")
	repo := NewCurrencyRepository(path, testLogger())

	require.NoError(t, repo.SaveCurrency(ctx, domain.Definition{Name: "USD", Format: domain.WesternFormat}))
	require.NoError(t, repo.SaveCurrency(ctx, domain.Definition{Name: "INR", Format: domain.IndianFormat}))

	err := repo.SaveCurrency(ctx, domain.Definition{Name: "USD", Format: domain.WesternFormat})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	assert.Equal(t, "USD:usf\nINR:isf\n", readStore(t, path))
}

func TestSaveCurrencySharedPrefixIsNotADuplicate(t *testing.T) {
	// The legacy store code compared only the first three characters, so
	// "USDT" would falsely collide with "USD". Matching the full name token
	// fixes that.
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "currencies.txt")
	repo := NewCurrencyRepository(path, testLogger())

	require.NoError(t, repo.SaveCurrency(ctx, domain.Definition{Name: "USD", Format: domain.WesternFormat}))
	require.NoError(t, repo.SaveCurrency(ctx, domain.Definition{Name: "USDT", Format: domain.WesternFormat}))

	defs, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestDeleteCurrencyRemovesOnlyExactMatches(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "USD:usf\nUSDT:usf\nINR:isf\n")
	repo := NewCurrencyRepository(path, testLogger())

	require.NoError(t, repo.DeleteCurrency(ctx, "USD"))

	assert.Equal(t, "USDT:usf\nINR:isf\n", readStore(t, path))
}

func TestListCurrenciesSkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "USD:usf\nnot a record\nXXX:zzf\nINR:ISF\n")
	repo := NewCurrencyRepository(path, testLogger())

	defs, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)

	// One bad line must not abort loading the others; format codes are
	// case-insensitive on read.
	require.Len(t, defs, 2)
	assert.Equal(t, domain.Definition{Name: "USD", Format: domain.WesternFormat}, defs[0])
	assert.Equal(t, domain.Definition{Name: "INR", Format: domain.IndianFormat}, defs[1])
}

func TestListCurrenciesPreservesStoreOrderWithDuplicates(t *testing.T) {
	ctx := context.Background()
	path := writeStore(t, "EUR:usf\nINR:isf\nEUR:usf\n")
	repo := NewCurrencyRepository(path, testLogger())

	defs, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)

	require.Len(t, defs, 3)
	assert.Equal(t, "EUR", defs[0].Name)
	assert.Equal(t, "INR", defs[1].Name)
	assert.Equal(t, "EUR", defs[2].Name)
}
