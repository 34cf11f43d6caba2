package gamestate

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/storage"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return NewStore(kv, clock.NewManual(testNow)), kv
}

// brokenStore fails every operation
type brokenStore struct {
	*storage.MemoryStore
}

func (brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, assert.AnError }
func (brokenStore) Set(context.Context, string, string) error         { return assert.AnError }
func (brokenStore) Delete(context.Context, string) error              { return assert.AnError }

func TestLoad_Absent(t *testing.T) {
	store, _ := newTestStore(t)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestLoad_CorruptRecordsAreAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "{animalType: chicken"},
		{"wrong shape", `[1,2,3]`},
		{"missing animal", `{"startTime":1,"lastFedAt":1,"bonusReductionSeconds":0,"ordersPlaced":0,"status":"ACTIVE"}`},
		{"unknown status", `{"animalType":"cow","startTime":1,"lastFedAt":1,"bonusReductionSeconds":0,"ordersPlaced":0,"status":"LEFT"}`},
		{"negative orders", `{"animalType":"cow","startTime":1,"lastFedAt":1,"bonusReductionSeconds":0,"ordersPlaced":-2,"status":"ACTIVE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, kv := newTestStore(t)
			require.NoError(t, kv.Set(ctx, StateKey, tt.raw))

			state, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, state)
		})
	}
}

func TestLoad_BackendFailure(t *testing.T) {
	store := NewStore(brokenStore{storage.NewMemoryStore()}, clock.NewManual(testNow))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), ErrMsgFailedToReadState)
}

func TestCreate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.Create(ctx, "cow")
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, *created, *loaded)
	assert.Equal(t, "cow", loaded.AnimalType)
	assert.Equal(t, domain.StatusActive, loaded.Status)
	assert.Equal(t, 0, loaded.OrdersPlaced)
	assert.Zero(t, loaded.BonusReductionSeconds)
	assert.Equal(t, testNow.UnixMilli(), loaded.StartTime)
	assert.Equal(t, testNow.UnixMilli(), loaded.LastFedAt)
}

func TestCreate_PersistedLayout(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)

	_, err := store.Create(ctx, "chicken")
	require.NoError(t, err)

	raw, found, err := kv.Get(ctx, StateKey)
	require.NoError(t, err)
	require.True(t, found)

	ms := testNow.UnixMilli()
	assert.JSONEq(t, `{"animalType":"chicken","startTime":`+strconv.FormatInt(ms, 10)+`,"lastFedAt":`+strconv.FormatInt(ms, 10)+
		`,"bonusReductionSeconds":0,"ordersPlaced":0,"status":"ACTIVE"}`, raw)
}

func TestSave_ReplacesRecord(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Create(ctx, "chicken")
	require.NoError(t, err)

	replacement := domain.GameState{
		AnimalType:            "horse",
		StartTime:             10,
		LastFedAt:             20,
		BonusReductionSeconds: 86400,
		OrdersPlaced:          1,
		Status:                domain.StatusReadyToHarvest,
	}
	require.NoError(t, store.Save(ctx, replacement))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, replacement, *loaded)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Clear(ctx), "clearing with no record is fine")

	_, err := store.Create(ctx, "pig")
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestExperience(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	xp, err := store.LoadExperience(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, xp)

	total, err := store.AddExperience(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, total)

	xp, err = store.LoadExperience(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, xp)

	total, err = store.AddExperience(ctx, 700)
	require.NoError(t, err)
	assert.Equal(t, 1000, total)
}

func TestExperience_CorruptTreatedAsZero(t *testing.T) {
	for _, raw := range []string{"abc", "", "-50", "12.5"} {
		t.Run(raw, func(t *testing.T) {
			ctx := context.Background()
			store, kv := newTestStore(t)
			require.NoError(t, kv.Set(ctx, ExperienceKey, raw))

			xp, err := store.LoadExperience(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, xp)

			total, err := store.AddExperience(ctx, 500)
			require.NoError(t, err)
			assert.Equal(t, 500, total)

			stored, _, _ := kv.Get(ctx, ExperienceKey)
			assert.Equal(t, "500", stored)
		})
	}
}

func TestAddExperience_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	_, err := store.AddExperience(ctx, 100)
	require.NoError(t, err)

	_, err = store.AddExperience(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidExperienceAmount)

	xp, err := store.LoadExperience(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, xp)
}

func TestWrites_ReturnBackendErrors(t *testing.T) {
	ctx := context.Background()
	store := NewStore(brokenStore{storage.NewMemoryStore()}, clock.NewManual(testNow))

	_, err := store.Create(ctx, "cow")
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, store.Clear(ctx), assert.AnError)
	_, err = store.AddExperience(ctx, 1)
	assert.ErrorIs(t, err, assert.AnError)
}
