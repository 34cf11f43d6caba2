package bootstrap

import (
	"fmt"

	"github.com/nt-jambaa/toktok-mini-game/internal/catalog"
	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/config"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/farm"
	"github.com/nt-jambaa/toktok-mini-game/internal/gamestate"
	"github.com/nt-jambaa/toktok-mini-game/internal/metrics"
	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
)

// InitializeFarm builds the farm service and the time mode switch on the real clock.
// It starts nothing, so a failure leaves no goroutines behind.
func InitializeFarm(cfg *config.Config, animals *catalog.Catalog, kv repository.KeyValueStore, publisher event.Bus) (farm.Service, *farm.ModeSwitch, error) {
	mode, err := farm.NewModeSwitch(domain.TimeMode(cfg.TimeMode), publisher)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedInitMode, err)
	}
	metrics.TimeScale.Set(mode.Scale())

	clk := clock.Real()
	return farm.NewService(animals, gamestate.NewStore(kv, clk), clk, publisher), mode, nil
}
