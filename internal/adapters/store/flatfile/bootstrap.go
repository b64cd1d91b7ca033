package flatfile

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Bundled seed templates, copied into the store locations on first run.
var (
	//go:embed seeds/currencies.txt
	currencySeed []byte
	//go:embed seeds/rates.txt
	rateSeed []byte
)

// EnsureStores creates the two store files if they do not exist yet, seeding
// each from its bundled template. Existing stores are never overwritten.
func EnsureStores(currenciesPath, ratesPath string, logger *slog.Logger) error {
	if err := seedIfMissing(currenciesPath, currencySeed, logger); err != nil {
		return err
	}
	return seedIfMissing(ratesPath, rateSeed, logger)
}

func seedIfMissing(path string, seed []byte, logger *slog.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat store %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, seed, 0o644); err != nil {
		return fmt.Errorf("failed to seed store %s: %w", path, err)
	}
	logger.Info("seeded new store from bundled template", slog.String("path", path))
	return nil
}
