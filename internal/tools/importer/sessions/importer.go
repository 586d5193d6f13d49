// Package sessionimporter converts a JSON or MessagePack session dataset into
// the SQLite catalog store.
package sessionimporter

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/storage"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/storage/sqlite"
)

// Config holds configuration for the session importer.
type Config struct {
	In     string
	Out    string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Out: filepath.Join("data", "sessions.db"),
	}

	fs.StringVar(&cfg.In, "in", "", "source dataset (.json or .msgpack)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "SQLite database to write")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.In) == "" {
		return invalidArgument("in is required")
	}
	inFormat, err := storage.DetectFormat(c.In)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "unsupported input", err)
	}
	if inFormat == storage.FormatSQLite {
		return invalidArgument("in must be a JSON or MessagePack dataset")
	}
	if c.DryRun {
		return nil
	}
	outFormat, err := storage.DetectFormat(c.Out)
	if err != nil || outFormat != storage.FormatSQLite {
		return invalidArgument("out must be a .db, .sqlite or .sqlite3 file")
	}
	return nil
}

func invalidArgument(message string) error {
	return apperrors.New(apperrors.CodeInvalidArgument, message)
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	docs, err := storage.ReadDocuments(ctx, cfg.In)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.In, err)
	}
	sessions, err := storage.BuildSessions(docs)
	if err != nil {
		return fmt.Errorf("validate %s: %w", cfg.In, err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d session(s)\n", len(sessions))
		return err
	}

	store, err := sqlite.Open(cfg.Out)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close session store: %v", err)
		}
	}()

	count, err := store.ReplaceSessions(ctx, docs)
	if err != nil {
		return fmt.Errorf("import %s: %w", cfg.In, err)
	}
	_, err = fmt.Fprintf(out, "imported %d session(s) into %s\n", count, cfg.Out)
	return err
}
