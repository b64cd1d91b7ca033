package flatfile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sporax/currency_converter_app/internal/core/ports/repositories"
)

// FileRateRepository stores directed conversion rates as "FROM:TO:rate"
// lines in the rate store file.
type FileRateRepository struct {
	store *lineStore
}

// NewRateRepository creates a repository over the rate store at path.
func NewRateRepository(path string, logger *slog.Logger) repositories.RateRepository {
	return &FileRateRepository{store: newLineStore(path, logger)}
}

// RatesFrom collects every stored rate whose source matches, keyed by target
// currency name. Malformed lines and unparseable rates are skipped and logged.
func (r *FileRateRepository) RatesFrom(ctx context.Context, from string) (map[string]decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return nil, err
	}
	rates := make(map[string]decimal.Decimal)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != 3 {
			r.store.logger.Warn("skipping malformed rate line", slog.String("line", line))
			continue
		}
		if fields[0] != from {
			continue
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
		if err != nil {
			r.store.logger.Warn("skipping rate line with unparseable rate", slog.String("line", line))
			continue
		}
		rates[fields[1]] = rate
	}
	return rates, nil
}

// UpsertRate replaces the line for the (from, to) pair in place, or appends
// one if the pair was never stored. The pair token match is delimiter-bounded
// rather than a fixed-offset prefix splice.
func (r *FileRateRepository) UpsertRate(ctx context.Context, from, to string, rate decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return err
	}
	entry := from + fieldSep + to + fieldSep + rate.String()
	replaced := false
	for i, line := range lines {
		fields := strings.Split(line, fieldSep)
		if len(fields) == 3 && fields[0] == from && fields[1] == to {
			lines[i] = entry
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, entry)
	}
	return r.store.writeLines(lines)
}

// DeleteRatesFrom removes every rate line whose source token matches.
func (r *FileRateRepository) DeleteRatesFrom(ctx context.Context, from string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lines, err := r.store.readLines()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, line := range lines {
		if strings.Split(line, fieldSep)[0] == from {
			continue
		}
		kept = append(kept, line)
	}
	return r.store.writeLines(kept)
}

// DeleteAllRates truncates the rate store.
func (r *FileRateRepository) DeleteAllRates(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeLines(nil)
}

// Compact removes blank lines from the rate store.
func (r *FileRateRepository) Compact(ctx context.Context) error {
	return r.store.compact()
}
