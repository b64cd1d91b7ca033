package flatfile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sporax/currency_converter_app/internal/apperrors"
	"github.com/sporax/currency_converter_app/internal/core/domain"
	"github.com/sporax/currency_converter_app/internal/core/ports/repositories"
)

// FileCurrencyRepository stores currency definitions as "NAME:formatcode"
// lines in the currency store file.
type FileCurrencyRepository struct {
	store *lineStore
}

// NewCurrencyRepository creates a repository over the currency store at path.
func NewCurrencyRepository(path string, logger *slog.Logger) repositories.CurrencyRepository {
	return &FileCurrencyRepository{store: newLineStore(path, logger)}
}

// SaveCurrency appends a definition unless one with the same name exists.
// Existence is an exact name-token match; a fixed-length prefix check would
// false-positive on longer names sharing a prefix.
func (r *FileCurrencyRepository) SaveCurrency(ctx context.Context, def domain.Definition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Split(line, fieldSep)[0] == def.Name {
			return apperrors.ErrDuplicate
		}
	}
	lines = append(lines, def.Name+fieldSep+strings.ToLower(def.Format.String()))
	return r.store.writeLines(lines)
}

// DeleteCurrency removes every line whose name token matches exactly.
func (r *FileCurrencyRepository) DeleteCurrency(ctx context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, line := range lines {
		if strings.Split(line, fieldSep)[0] == name {
			continue
		}
		kept = append(kept, line)
	}
	return r.store.writeLines(kept)
}

// ListCurrencies returns definitions in store order. Malformed lines are
// skipped and logged rather than aborting the whole load.
func (r *FileCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Definition, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return nil, err
	}
	defs := make([]domain.Definition, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != 2 {
			r.store.logger.Warn("skipping malformed currency line", slog.String("line", line))
			continue
		}
		format, err := domain.ParseFormat(fields[1])
		if err != nil {
			r.store.logger.Warn("skipping currency line with unknown format", slog.String("line", line))
			continue
		}
		defs = append(defs, domain.Definition{Name: fields[0], Format: format})
	}
	return defs, nil
}

// Compact removes blank lines from the currency store.
func (r *FileCurrencyRepository) Compact(ctx context.Context) error {
	return r.store.compact()
}
