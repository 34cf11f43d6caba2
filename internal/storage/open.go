package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/database"
	"github.com/nt-jambaa/toktok-mini-game/internal/database/sqlite"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
)

// Options selects and configures a storage backend
type Options struct {
	Driver    string
	Path      string
	CacheSize int
	CacheTTL  time.Duration
}

// Open builds the configured backend wrapped in the LRU cache.
// A CacheSize below zero disables caching.
func Open(ctx context.Context, opts Options) (repository.KeyValueStore, error) {
	var backend repository.KeyValueStore

	switch opts.Driver {
	case DriverSQLite, "":
		db, err := database.Open(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		backend = sqlite.NewKVStore(db)
	case DriverFile:
		fs, err := NewFileStore(opts.Path)
		if err != nil {
			return nil, err
		}
		backend = fs
	case DriverMemory:
		backend = NewMemoryStore()
	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriver, opts.Driver)
	}

	logger.FromContext(ctx).Info("Storage opened", "driver", opts.Driver, "path", opts.Path)

	if opts.CacheSize < 0 {
		return backend, nil
	}
	return NewCachedStore(backend, opts.CacheSize, opts.CacheTTL), nil
}
