// Package store caches forecast snapshots and fetch-run audit rows in
// SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/lox/dotoo/internal/logging"
)

type Store struct {
	db     *sql.DB
	logger zerolog.Logger
	enc    *zstd.Encoder
	dec    *zstd.Decoder
}

func New(db *sql.DB, logger zerolog.Logger) (*Store, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Store{
		db:     db,
		logger: logging.Component(logger, "store"),
		enc:    enc,
		dec:    dec,
	}, nil
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	s, err := New(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	s.dec.Close()
	s.enc.Close()
	return s.db.Close()
}
