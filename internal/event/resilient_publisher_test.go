package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(Type, Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, skipped, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Zero(t, skipped)
	return entries
}

func TestReadDeadLetters(t *testing.T) {
	dir := t.TempDir()

	entries, skipped, err := ReadDeadLetters(filepath.Join(dir, "absent.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, skipped)

	path := filepath.Join(dir, "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, dlw.Write(NewFarmStartedEvent(domain.GameState{AnimalType: "pig", StartTime: 7}), 3, errors.New("subscriber down")))
	require.NoError(t, dlw.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{truncated\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, skipped, err = ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, FarmStarted, entries[0].Event.Type)
	assert.Equal(t, "subscriber down", entries[0].LastError)

	payload, err := DecodePayload[domain.FarmStartedPayload](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.FarmStartedPayload{AnimalType: "pig", StartTime: 7}, payload)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewFarmStartedEvent(domain.GameState{AnimalType: "cow"})))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt < 3 }}

	rp, err := NewResilientPublisher(bus, 5, time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewFarmActionEvent(FarmFed, domain.GameState{AnimalType: "cow"}))

	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 2, time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewFarmEndedEvent(FarmAbandoned, domain.GameState{AnimalType: "sheep"}, 0, 0))

	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, FarmAbandoned, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Contains(t, entries[0].LastError, "mock publish error")
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewFarmTickEvent(domain.FarmSnapshot{}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, FarmTick, entries[0].Event.Type)
}
