// Package storage loads session datasets from disk into domain sessions.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/storage/sqlite"
)

// Format identifies a dataset encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatSQLite  Format = "sqlite"
)

// DetectFormat picks a dataset format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q", filepath.Ext(path))
	}
}

// Load reads the dataset at path and builds the session collection. Any
// failure is a DATASET_LOAD_FAILED error; callers must not serve queries
// without a collection.
func Load(ctx context.Context, path string) ([]domain.Session, error) {
	docs, err := ReadDocuments(ctx, path)
	if err != nil {
		return nil, loadFailed(path, err)
	}
	sessions, err := BuildSessions(docs)
	if err != nil {
		return nil, loadFailed(path, err)
	}
	return sessions, nil
}

func loadFailed(path string, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeDatasetLoadFailed, "load dataset",
		map[string]string{"path": path}, cause)
}

// ReadDocuments decodes the raw session records stored at path.
func ReadDocuments(ctx context.Context, path string) ([]map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == FormatSQLite {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("stat dataset: %w", err)
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadSessions(ctx)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	if format == FormatMsgpack {
		return DecodeMsgpack(file)
	}
	return DecodeJSON(file)
}

// DecodeJSON decodes a JSON array of session records.
func DecodeJSON(r io.Reader) ([]map[string]any, error) {
	var docs []map[string]any
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode json dataset: %w", err)
	}
	return docs, nil
}

// DecodeMsgpack decodes a MessagePack array of session records.
func DecodeMsgpack(r io.Reader) ([]map[string]any, error) {
	var docs []map[string]any
	if err := msgpack.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode msgpack dataset: %w", err)
	}
	return docs, nil
}

// BuildSessions converts raw records into sessions, keeping their order.
// Records without a code and repeated codes are rejected.
func BuildSessions(docs []map[string]any) ([]domain.Session, error) {
	sessions := make([]domain.Session, 0, len(docs))
	seen := make(map[string]int, len(docs))
	for i, doc := range docs {
		session, err := domain.SessionFromMap(doc)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		if first, ok := seen[session.Code]; ok {
			return nil, fmt.Errorf("session %d: code %s already used by session %d: %w",
				i, session.Code, first, sqlite.ErrDuplicateCode)
		}
		seen[session.Code] = i
		sessions = append(sessions, session)
	}
	return sessions, nil
}
