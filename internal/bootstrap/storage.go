package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nt-jambaa/toktok-mini-game/internal/catalog"
	"github.com/nt-jambaa/toktok-mini-game/internal/config"
	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
	"github.com/nt-jambaa/toktok-mini-game/internal/storage"
)

// InitializeStorage opens the configured key-value backend
func InitializeStorage(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, error) {
	kv, err := storage.Open(ctx, storage.Options{
		Driver:    cfg.StorageDriver,
		Path:      cfg.StoragePath,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver, "path", cfg.StoragePath)
	return kv, nil
}

// LoadCatalog returns the built-in catalog, or the file at CatalogPath when set
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		c = loaded
	}

	slog.Info(LogMsgCatalogLoaded, "animals", len(c.List()), "path", cfg.CatalogPath)
	return c, nil
}
