// Package sqlite provides a SQLite-backed session dataset.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/sessionsearch/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrDuplicateCode indicates two documents share a session code.
var ErrDuplicateCode = errors.New("duplicate session code")

// Store persists raw session documents in SQLite, keeping their dataset order.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite session store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceSessions swaps the stored dataset for docs in one transaction and
// returns the number of stored documents. Every document needs a string code.
func (s *Store) ReplaceSessions(ctx context.Context, docs []map[string]any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace sessions: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return 0, fmt.Errorf("clear sessions: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sessions (ordinal, code, payload) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert session: %w", err)
	}
	defer stmt.Close()

	for i, doc := range docs {
		code, _ := doc["code"].(string)
		if strings.TrimSpace(code) == "" {
			return 0, fmt.Errorf("session %d has no code", i)
		}
		payload, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("encode session %s: %w", code, err)
		}
		if _, err := stmt.ExecContext(ctx, i, code, string(payload)); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("insert session %s: %w", code, ErrDuplicateCode)
			}
			return 0, fmt.Errorf("insert session %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace sessions: %w", err)
	}
	return len(docs), nil
}

// LoadSessions returns every stored document in dataset order.
func (s *Store) LoadSessions(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT code, payload FROM sessions ORDER BY ordinal`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	docs := []map[string]any{}
	for rows.Next() {
		var code, payload string
		if err := rows.Scan(&code, &payload); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		var doc map[string]any
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			return nil, fmt.Errorf("decode session %s: %w", code, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return docs, nil
}

// CountSessions returns the number of stored documents.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
