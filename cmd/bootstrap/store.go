package bootstrap

import (
	"context"
	"log/slog"

	"aaai-platform/internal/infra/db"
	"aaai-platform/internal/infra/memstore"
	"aaai-platform/internal/infra/repository"
	"aaai-platform/internal/pkg/config"
	"aaai-platform/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewCatalogRepository,
	),
)

// NewCatalogRepository picks the catalog backend: the seeded in-memory store
// by default, Postgres when DB_DSN is set.
func NewCatalogRepository(lc fx.Lifecycle, cfg config.Config) (usecase.CatalogRepository, error) {
	if cfg.Store.DSN == "" {
		slog.Info("using in-memory catalog store")
		return memstore.New(), nil
	}

	pool, cleanup, err := db.Connect(cfg.Store.DSN)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	slog.Info("using postgres catalog store")
	return repository.NewCatalogRepository(pool), nil
}
