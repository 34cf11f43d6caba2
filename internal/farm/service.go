package farm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/growth"
	"github.com/nt-jambaa/toktok-mini-game/internal/hunger"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// Service runs the farm lifecycle: NoGame -> ACTIVE -> READY_TO_HARVEST -> NoGame,
// with ACTIVE -> NoGame when the animal runs away from hunger.
type Service interface {
	// Animals lists the catalog in display order
	Animals() []domain.Animal

	// Animal returns one catalog entry or domain.ErrAnimalNotFound
	Animal(key string) (domain.Animal, error)

	// Current returns the stored game or domain.ErrNoActiveGame
	Current(ctx context.Context) (*domain.GameState, error)

	// NewGame places a new animal on an empty farm
	NewGame(ctx context.Context, animalType string) (*domain.GameState, error)

	// Feed resets the hunger clock of the growing animal
	Feed(ctx context.Context) (*domain.GameState, error)

	// OrderSpeedUp removes one day of remaining growth
	OrderSpeedUp(ctx context.Context) (*domain.GameState, error)

	// Snapshot derives display values without changing anything
	Snapshot(ctx context.Context, scale float64) (*domain.FarmSnapshot, error)

	// Poll is one driver tick: hunger is checked before growth and transitions are persisted
	Poll(ctx context.Context, scale float64) (*domain.FarmSnapshot, error)

	// Harvest collects a grown animal, awards experience and empties the farm
	Harvest(ctx context.Context) (*domain.HarvestResult, error)

	// Experience returns the cumulative farm XP
	Experience(ctx context.Context) (int, error)
}

// AnimalCatalog is the read-only animal definition source
type AnimalCatalog interface {
	List() []domain.Animal
	Get(key string) (domain.Animal, bool)
}

// StateStore persists the game record and the experience counter
type StateStore interface {
	Load(ctx context.Context) (*domain.GameState, error)
	Save(ctx context.Context, state domain.GameState) error
	Clear(ctx context.Context) error
	Create(ctx context.Context, animalType string) (*domain.GameState, error)
	LoadExperience(ctx context.Context) (int, error)
	AddExperience(ctx context.Context, amount int) (int, error)
}

type service struct {
	// mu serialises read-modify-write cycles between HTTP actions and the poll driver
	mu sync.Mutex

	catalog AnimalCatalog
	store   StateStore
	growth  *growth.Engine
	hunger  *hunger.Engine
	bus     event.Bus
}

// NewService creates a new farm service
func NewService(catalog AnimalCatalog, store StateStore, clk clock.Clock, bus event.Bus) Service {
	return &service{
		catalog: catalog,
		store:   store,
		growth:  growth.NewEngine(catalog, clk),
		hunger:  hunger.NewEngine(clk),
		bus:     bus,
	}
}

func (s *service) Animals() []domain.Animal {
	return s.catalog.List()
}

func (s *service) Animal(key string) (domain.Animal, error) {
	animal, ok := s.catalog.Get(key)
	if !ok {
		return domain.Animal{}, fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, key)
	}
	return animal, nil
}

func (s *service) Current(ctx context.Context) (*domain.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrNoActiveGame
	}
	return state, nil
}

func (s *service) NewGame(ctx context.Context, animalType string) (*domain.GameState, error) {
	if _, err := s.Animal(animalType); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.StatusReadyToHarvest {
			return nil, domain.ErrHarvestPending
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrGameInProgress, existing.AnimalType)
	}

	state, err := s.store.Create(ctx, animalType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgGameStarted, logger.AttrKeyAnimal, animalType)
	s.publish(ctx, event.NewFarmStartedEvent(*state))
	return state, nil
}

func (s *service) Feed(ctx context.Context) (*domain.GameState, error) {
	return s.applyAction(ctx, event.FarmFed, LogMsgAnimalFed, s.hunger.Feed)
}

func (s *service) OrderSpeedUp(ctx context.Context) (*domain.GameState, error) {
	return s.applyAction(ctx, event.FarmOrderPlaced, LogMsgOrderPlaced, s.growth.ApplyOrderSpeedUp)
}

// applyAction runs a pure engine action on the growing animal and persists the result
func (s *service) applyAction(
	ctx context.Context,
	eventType event.Type,
	logMsg string,
	action func(domain.GameState) domain.GameState,
) (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.requireActive(ctx)
	if err != nil {
		return nil, err
	}

	updated := action(*state)
	if err := s.store.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}

	logger.FromContext(ctx).Info(logMsg,
		logger.AttrKeyAnimal, updated.AnimalType,
		logger.AttrKeyOrdersPlaced, updated.OrdersPlaced,
		"last_fed_at", updated.LastFedAt)
	s.publish(ctx, event.NewFarmActionEvent(eventType, updated))
	return &updated, nil
}

func (s *service) Snapshot(ctx context.Context, scale float64) (*domain.FarmSnapshot, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	xp, err := s.store.LoadExperience(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := s.snapshot(state, scale, xp)
	return &snapshot, nil
}

func (s *service) Poll(ctx context.Context, scale float64) (*domain.FarmSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		xp, err := s.store.LoadExperience(ctx)
		if err != nil {
			return nil, err
		}
		snapshot := s.snapshot(nil, scale, xp)
		return &snapshot, nil
	}

	outcome := s.evaluate(*state, scale)
	switch {
	case outcome == domain.OutcomeAbandoned:
		if err := s.store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgClearFailed, err)
		}
		log.Info(LogMsgAnimalAbandoned, logger.AttrKeyAnimal, state.AnimalType)
		s.publish(ctx, event.NewFarmEndedEvent(event.FarmAbandoned, *state, 0, 0))

	case outcome == domain.OutcomeReadyToHarvest && state.Status == domain.StatusActive:
		state.Status = domain.StatusReadyToHarvest
		if err := s.store.Save(ctx, *state); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
		}
		log.Info(LogMsgReadyToHarvest, logger.AttrKeyAnimal, state.AnimalType, logger.AttrKeyOrdersPlaced, state.OrdersPlaced)
		s.publish(ctx, event.NewFarmEndedEvent(event.FarmReadyToHarvest, *state, 0, 0))
	}

	xp, err := s.store.LoadExperience(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := s.snapshot(state, scale, xp)
	if outcome == domain.OutcomeAbandoned {
		snapshot.Active = false
		snapshot.Outcome = domain.OutcomeAbandoned
	}

	s.publish(ctx, event.NewFarmTickEvent(snapshot))
	return &snapshot, nil
}

func (s *service) Harvest(ctx context.Context) (*domain.HarvestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrNoActiveGame
	}
	if state.Status != domain.StatusReadyToHarvest {
		return nil, domain.ErrNotReadyToHarvest
	}

	animal, ok := s.catalog.Get(state.AnimalType)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownAnimal, logger.AttrKeyAnimal, state.AnimalType)
		animal = domain.Animal{Key: state.AnimalType, Name: state.AnimalType}
	}
	earned := animal.ExperienceReward()

	total, err := s.store.AddExperience(ctx, earned)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgExperienceFailed, err)
	}
	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgClearFailed, err)
	}

	result := &domain.HarvestResult{
		Animal:           animal,
		RewardCategory:   animal.RewardCategory,
		RewardAmount:     animal.RewardAmount,
		OrdersPlaced:     state.OrdersPlaced,
		ExperienceEarned: earned,
		TotalExperience:  total,
		CouponCode:       newCouponCode(),
		Message:          fmt.Sprintf(domain.MsgHarvestFmt, earned),
	}

	logger.FromContext(ctx).Info(LogMsgHarvested,
		logger.AttrKeyAnimal, animal.Key,
		logger.AttrKeyExperience, earned,
		logger.AttrKeyTotalXP, total)
	s.publish(ctx, event.NewFarmEndedEvent(event.FarmHarvested, *state, earned, total))
	return result, nil
}

func (s *service) Experience(ctx context.Context) (int, error) {
	return s.store.LoadExperience(ctx)
}

func (s *service) load(ctx context.Context) (*domain.GameState, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	return state, nil
}

func (s *service) requireActive(ctx context.Context) (*domain.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrNoActiveGame
	}
	if state.Status == domain.StatusReadyToHarvest {
		return nil, domain.ErrHarvestPending
	}
	return state, nil
}

// evaluate decides what a tick would conclude. Hunger wins over growth.
func (s *service) evaluate(state domain.GameState, scale float64) domain.Outcome {
	if state.Status == domain.StatusReadyToHarvest {
		return domain.OutcomeReadyToHarvest
	}
	if s.hunger.HasLeft(state, scale) {
		return domain.OutcomeAbandoned
	}
	if s.growth.IsReadyToHarvest(state, scale) {
		return domain.OutcomeReadyToHarvest
	}
	return domain.OutcomeGrowing
}

func (s *service) snapshot(state *domain.GameState, scale float64, xp int) domain.FarmSnapshot {
	scale = growth.NormalizeScale(scale)
	snapshot := domain.FarmSnapshot{
		TimeScale:  scale,
		Outcome:    domain.OutcomeNone,
		Experience: xp,
	}
	if state == nil {
		return snapshot
	}

	st := *state
	snapshot.Active = true
	snapshot.State = &st
	if animal, ok := s.catalog.Get(st.AnimalType); ok {
		snapshot.Animal = &animal
	}

	snapshot.Progress = s.growth.Progress(st, scale)
	snapshot.RemainingText = s.growth.RemainingTimeText(st, scale)
	if st.Status == domain.StatusReadyToHarvest {
		snapshot.Progress = 100
		snapshot.RemainingText = domain.MsgReadyToHarvest
	}

	pct := s.hunger.Percent(st, scale)
	tier := hunger.ColorTier(pct)
	snapshot.HungerPercent = pct
	snapshot.HungerStatus = hunger.StatusText(pct)
	snapshot.HungerTier = tier
	snapshot.HungerColor = tier.Color()
	snapshot.Outcome = s.evaluate(st, scale)
	return snapshot
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, logger.AttrKeyEventType, evt.Type, "error", err)
	}
}

func newCouponCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.CouponPrefix + id[:domain.CouponCodeLength]
}
