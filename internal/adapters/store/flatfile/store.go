// Package flatfile persists the currency registry in two line-oriented text
// files: one currency definition or directed rate per line, fields separated
// by ':'. Every mutation reads the whole file, transforms it in memory and
// rewrites it through a temp file plus atomic rename, so a failed write never
// truncates the previous contents.
package flatfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const fieldSep = ":"

// lineStore serializes in-process access to one store file. Concurrent
// processes mutating the same file remain a last-writer-wins race.
type lineStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func newLineStore(path string, logger *slog.Logger) *lineStore {
	return &lineStore{path: path, logger: logger.With(slog.String("store", filepath.Base(path)))}
}

// readLines returns the raw store lines. A missing file reads as an empty
// store; the first write will create it.
func (s *lineStore) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("store file missing, treating as empty", slog.String("path", s.path))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

// writeLines rewrites the store with the given lines, dropping blank ones.
func (s *lineStore) writeLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for store %s: %w", s.path, err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file for store %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for store %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store %s: %w", s.path, err)
	}
	return nil
}

// compact rewrites the store without blank lines, preserving line order.
func (s *lineStore) compact() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, err := s.readLines()
	if err != nil {
		return err
	}
	return s.writeLines(lines)
}
