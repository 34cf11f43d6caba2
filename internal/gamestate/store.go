package gamestate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
)

// Store persists the single game record and the cumulative experience counter.
// Each mutating call is written to the backend before it returns.
type Store struct {
	kv       repository.KeyValueStore
	clock    clock.Clock
	validate *validator.Validate
}

// NewStore creates a store over kv, stamping new games with clk
func NewStore(kv repository.KeyValueStore, clk clock.Clock) *Store {
	return &Store{
		kv:       kv,
		clock:    clk,
		validate: validator.New(),
	}
}

// Load returns the persisted game, or nil when there is none.
// An unparseable or structurally invalid record is treated as absent.
func (s *Store) Load(ctx context.Context) (*domain.GameState, error) {
	raw, found, err := s.kv.Get(ctx, StateKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadState, err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var state domain.GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCorruptState, "error", err)
		return nil, nil
	}
	if err := s.validate.Struct(state); err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidState, "error", err)
		return nil, nil
	}
	return &state, nil
}

// Save replaces the persisted record with state
func (s *Store) Save(ctx context.Context, state domain.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}
	if err := s.kv.Set(ctx, StateKey, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteState, err)
	}
	return nil
}

// Clear removes the persisted record
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, StateKey); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearState, err)
	}
	return nil
}

// Create starts a fresh ACTIVE game for animalType and persists it
func (s *Store) Create(ctx context.Context, animalType string) (*domain.GameState, error) {
	now := s.clock.Now().UnixMilli()
	state := domain.GameState{
		AnimalType:            animalType,
		StartTime:             now,
		LastFedAt:             now,
		BonusReductionSeconds: 0,
		OrdersPlaced:          0,
		Status:                domain.StatusActive,
	}
	if err := s.Save(ctx, state); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGameCreated, "animal", animalType, "start_time", now)
	return &state, nil
}

// LoadExperience returns the stored total, or 0 when absent or unreadable
func (s *Store) LoadExperience(ctx context.Context) (int, error) {
	raw, found, err := s.kv.Get(ctx, ExperienceKey)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadExperience, err)
	}
	if !found {
		return 0, nil
	}
	return parseExperience(ctx, raw), nil
}

// AddExperience adds amount to the stored total and returns the new total
func (s *Store) AddExperience(ctx context.Context, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidExperienceAmount, amount)
	}

	current, err := s.LoadExperience(ctx)
	if err != nil {
		return 0, err
	}

	total := current + amount
	if err := s.kv.Set(ctx, ExperienceKey, strconv.Itoa(total)); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToWriteExperience, err)
	}

	logger.FromContext(ctx).Info(LogMsgExperienceAdded, "amount", amount, "total", total)
	return total, nil
}

func parseExperience(ctx context.Context, raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		logger.FromContext(ctx).Warn(LogMsgCorruptExperience, "value", raw)
		return 0
	}
	return value
}
