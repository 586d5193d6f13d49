package service

import (
	"context"

	"github.com/louisbranch/sessionsearch/internal/platform/timeouts"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/storage"
)

// LoadCatalog reads the dataset at path into a query engine, bounded by the
// dataset load timeout.
func LoadCatalog(ctx context.Context, path string) (*query.Engine, error) {
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.DatasetLoad)
	defer cancel()

	sessions, err := storage.Load(loadCtx, path)
	if err != nil {
		return nil, err
	}
	return query.NewEngine(sessions), nil
}
