package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
)

func TestEventMetricsCollector_FarmEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()
	state := domain.GameState{AnimalType: "horse", OrdersPlaced: 1}

	started := testutil.ToFloat64(GamesStarted.WithLabelValues("horse"))
	fed := testutil.ToFloat64(Feeds.WithLabelValues("horse"))
	orders := testutil.ToFloat64(OrdersPlaced.WithLabelValues("horse"))
	harvests := testutil.ToFloat64(Harvests.WithLabelValues("horse"))
	xp := testutil.ToFloat64(ExperienceAwarded)

	require.NoError(t, bus.Publish(ctx, event.NewFarmStartedEvent(state)))
	require.NoError(t, bus.Publish(ctx, event.NewFarmActionEvent(event.FarmFed, state)))
	require.NoError(t, bus.Publish(ctx, event.NewFarmActionEvent(event.FarmOrderPlaced, state)))
	require.NoError(t, bus.Publish(ctx, event.NewFarmEndedEvent(event.FarmHarvested, state, 1000, 1300)))

	assert.Equal(t, started+1, testutil.ToFloat64(GamesStarted.WithLabelValues("horse")))
	assert.Equal(t, fed+1, testutil.ToFloat64(Feeds.WithLabelValues("horse")))
	assert.Equal(t, orders+1, testutil.ToFloat64(OrdersPlaced.WithLabelValues("horse")))
	assert.Equal(t, harvests+1, testutil.ToFloat64(Harvests.WithLabelValues("horse")))
	assert.Equal(t, xp+1000, testutil.ToFloat64(ExperienceAwarded))
}

func TestEventMetricsCollector_TickSetsGauges(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	snapshot := domain.FarmSnapshot{
		Active:        true,
		TimeScale:     domain.TimeScaleDemo,
		Progress:      42.5,
		HungerPercent: 77,
		Outcome:       domain.OutcomeGrowing,
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewFarmTickEvent(snapshot)))

	assert.Equal(t, 42.5, testutil.ToFloat64(GrowthProgress))
	assert.Equal(t, 77.0, testutil.ToFloat64(HungerPercent))
	assert.Equal(t, domain.TimeScaleDemo, testutil.ToFloat64(TimeScale))

	require.NoError(t, bus.Publish(context.Background(), event.NewTimeModeChangedEvent(domain.TimeModeReal)))
	assert.Equal(t, domain.TimeScaleReal, testutil.ToFloat64(TimeScale))
}

func TestEventMetricsCollector_UnexpectedPayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.FarmStarted)))

	err := collector.HandleEvent(context.Background(), event.New(event.FarmStarted, "not a payload"))

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.FarmStarted))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/animals/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/animals/{id}", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/animals/dragon", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/animals/{id}", "404")))
}

func TestMiddleware_UnmatchedRoutesShareALabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/farm", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))
	for _, path := range []string{"/wp-admin", "/random/123"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))

	okBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/farm", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/farm", "200")), "implicit 200 is recorded")
}
