package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
)

func exerciseStore(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "toktok_farm_xp")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "toktok_farm_xp", "300"))
	value, found, err := store.Get(ctx, "toktok_farm_xp")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "300", value)

	require.NoError(t, store.Delete(ctx, "toktok_farm_xp"))
	require.NoError(t, store.Delete(ctx, "never-set"))
	_, found, err = store.Get(ctx, "toktok_farm_xp")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Ping(ctx))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)

	require.NoError(t, store.Close())
	_, _, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, store.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "farm.json"))
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "farm.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "toktok_farm_state", `{"animalType":"cow"}`))
	require.NoError(t, first.Close())

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, found, err := second.Get(ctx, "toktok_farm_state")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"animalType":"cow"}`, value)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestFileStore_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "{not json"},
		{"truncated", `{"toktok_farm_state": "{\"animalType`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "farm.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			store, err := Open(ctx, Options{Driver: DriverFile, Path: path})
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			_, found, err := store.Get(ctx, "toktok_farm_state")
			require.NoError(t, err)
			assert.False(t, found, "a corrupt document reads as absent")

			kept, err := os.ReadFile(path + CorruptFileSuffix)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(kept))

			require.NoError(t, store.Set(ctx, "toktok_farm_xp", "10"))
			value, found, err := store.Get(ctx, "toktok_farm_xp")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "10", value)
		})
	}
}

// countingStore records backend reads so cache hits can be observed
type countingStore struct {
	*MemoryStore
	gets   int
	setErr error
}

func (c *countingStore) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	return c.MemoryStore.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	if c.setErr != nil {
		return c.setErr
	}
	return c.MemoryStore.Set(ctx, key, value)
}

func TestCachedStore(t *testing.T) {
	backend := &countingStore{MemoryStore: NewMemoryStore()}
	exerciseStore(t, NewCachedStore(backend, 4, 0))
}

func TestCachedStore_CachesHitsAndMisses(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{MemoryStore: NewMemoryStore()}
	cache := NewCachedStore(backend, 4, DefaultCacheTTL)

	_, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	_, _, _ = cache.Get(ctx, "k")
	assert.Equal(t, 1, backend.gets, "absence is cached")

	require.NoError(t, cache.Set(ctx, "k", "v"))
	value, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
	assert.Equal(t, 1, backend.gets, "write-through serves reads from cache")
	assert.Equal(t, 1, cache.Len())
}

func TestCachedStore_FailedWriteInvalidates(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{MemoryStore: NewMemoryStore()}
	cache := NewCachedStore(backend, 4, DefaultCacheTTL)

	require.NoError(t, cache.Set(ctx, "k", "old"))
	backend.setErr = assert.AnError

	err := cache.Set(ctx, "k", "new")
	assert.ErrorIs(t, err, assert.AnError)

	value, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "old", value, "cache never runs ahead of the backend")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"sqlite", Options{Driver: DriverSQLite, Path: filepath.Join(dir, "farm.db")}, false},
		{"file", Options{Driver: DriverFile, Path: filepath.Join(dir, "farm.json")}, false},
		{"memory uncached", Options{Driver: DriverMemory, CacheSize: -1}, false},
		{"unknown", Options{Driver: "redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer store.Close()
			exerciseStore(t, store)
		})
	}
}
