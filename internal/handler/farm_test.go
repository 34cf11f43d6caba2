package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/farm"
	"github.com/nt-jambaa/toktok-mini-game/internal/handler"
	"github.com/nt-jambaa/toktok-mini-game/internal/leaderboard"
	"github.com/nt-jambaa/toktok-mini-game/mocks"
)

var chicken = domain.Animal{
	Key:             "chicken",
	Name:            "Chicken",
	DurationDays:    3,
	DurationSeconds: 3 * domain.SecondsPerDay,
	RewardCategory:  "Eggs",
	RewardAmount:    "10 pcs",
}

func activeState() *domain.GameState {
	return &domain.GameState{
		AnimalType: "chicken",
		StartTime:  1_700_000_000_000,
		LastFedAt:  1_700_000_000_000,
		Status:     domain.StatusActive,
	}
}

// newRouter mounts the farm handler the same way the server does
func newRouter(t *testing.T, svc *mocks.MockFarmService) (http.Handler, *farm.ModeSwitch) {
	t.Helper()

	mode, err := farm.NewModeSwitch(domain.TimeModeDemo, nil)
	require.NoError(t, err)

	h := handler.NewFarmHandler(svc, mode)
	r := chi.NewRouter()
	r.Get("/animals", h.HandleListAnimals)
	r.Get("/animals/{id}", h.HandleGetAnimal)
	r.Get("/farm", h.HandleGetFarm)
	r.Post("/farm/start", h.HandleStartGame)
	r.Post("/farm/feed", h.HandleFeed)
	r.Post("/farm/order", h.HandleOrder)
	r.Post("/farm/harvest", h.HandleHarvest)
	r.Post("/farm/poll", h.HandlePoll)
	r.Get("/farm/mode", h.HandleGetMode)
	r.Post("/farm/mode", h.HandleSetMode)
	r.Get("/experience", h.HandleGetExperience)
	r.Get("/leaderboard", handler.HandleGetLeaderboard(svc, leaderboard.Default()))
	return r, mode
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestFarmHandler_Animals(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Animals").Return([]domain.Animal{chicken})
	svc.On("Animal", "chicken").Return(chicken, nil)
	svc.On("Animal", "dragon").Return(domain.Animal{}, domain.ErrAnimalNotFound)
	r, _ := newRouter(t, svc)

	w := do(t, r, http.MethodGet, "/animals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var animals []domain.Animal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &animals))
	assert.Equal(t, []domain.Animal{chicken}, animals)

	w = do(t, r, http.MethodGet, "/animals/chicken", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/animals/dragon", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, handler.ErrMsgAnimalNotFoundError, errorBody(t, w))
}

func TestFarmHandler_StartGame(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(*mocks.MockFarmService)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: handler.StartGameRequest{AnimalType: "chicken"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("NewGame", mock.Anything, "chicken").Return(activeState(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Malformed JSON",
			body:       `{"animal_type":`,
			wantStatus: http.StatusBadRequest,
			wantError:  handler.ErrMsgInvalidRequest,
		},
		{
			name:       "Empty Body",
			body:       nil,
			wantStatus: http.StatusBadRequest,
			wantError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name: "Unknown Animal",
			body: handler.StartGameRequest{AnimalType: "dragon"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("NewGame", mock.Anything, "dragon").Return(nil, domain.ErrAnimalNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  handler.ErrMsgAnimalNotFoundError,
		},
		{
			name: "Game In Progress",
			body: handler.StartGameRequest{AnimalType: "cow"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("NewGame", mock.Anything, "cow").Return(nil, domain.ErrGameInProgress)
			},
			wantStatus: http.StatusConflict,
			wantError:  handler.ErrMsgGameInProgressError,
		},
		{
			name: "Harvest Pending",
			body: handler.StartGameRequest{AnimalType: "cow"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("NewGame", mock.Anything, "cow").Return(nil, domain.ErrHarvestPending)
			},
			wantStatus: http.StatusConflict,
			wantError:  handler.ErrMsgHarvestPendingError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			r, _ := newRouter(t, svc)

			w := do(t, r, http.MethodPost, "/farm/start", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, w))
				return
			}
			var state domain.GameState
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
			assert.Equal(t, "chicken", state.AnimalType)
		})
	}
}

func TestFarmHandler_Actions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		method     string
		err        error
		wantStatus int
	}{
		{"feed ok", "/farm/feed", "Feed", nil, http.StatusOK},
		{"feed no game", "/farm/feed", "Feed", domain.ErrNoActiveGame, http.StatusNotFound},
		{"feed while ready", "/farm/feed", "Feed", domain.ErrHarvestPending, http.StatusConflict},
		{"order ok", "/farm/order", "OrderSpeedUp", nil, http.StatusOK},
		{"order storage failure", "/farm/order", "OrderSpeedUp", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			if tt.err != nil {
				svc.On(tt.method, mock.Anything).Return(nil, tt.err)
			} else {
				svc.On(tt.method, mock.Anything).Return(activeState(), nil)
			}
			r, _ := newRouter(t, svc)

			w := do(t, r, http.MethodPost, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, handler.ErrMsgGenericServerError, errorBody(t, w))
			}
		})
	}
}

func TestFarmHandler_Harvest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Harvest", mock.Anything).Return(&domain.HarvestResult{
			Animal:           chicken,
			RewardCategory:   "Eggs",
			RewardAmount:     "10 pcs",
			ExperienceEarned: 300,
			TotalExperience:  300,
			CouponCode:       "TOKTOK-FARM-ABC123",
			Message:          "+300 Farm XP earned!",
		}, nil)
		r, _ := newRouter(t, svc)

		w := do(t, r, http.MethodPost, "/farm/harvest", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var result domain.HarvestResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 300, result.ExperienceEarned)
		assert.True(t, strings.HasPrefix(result.CouponCode, domain.CouponPrefix))
	})

	t.Run("Not Ready", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Harvest", mock.Anything).Return(nil, domain.ErrNotReadyToHarvest)
		r, _ := newRouter(t, svc)

		w := do(t, r, http.MethodPost, "/farm/harvest", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, handler.ErrMsgNotReadyError, errorBody(t, w))
	})
}

// Transitions are logged by the farm service; successful handlers stay quiet
func TestFarmHandler_SuccessLeavesLoggingToService(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := mocks.NewMockFarmService(t)
	svc.On("NewGame", mock.Anything, "chicken").Return(activeState(), nil)
	svc.On("Harvest", mock.Anything).Return(&domain.HarvestResult{
		Animal:           chicken,
		ExperienceEarned: 300,
		TotalExperience:  300,
	}, nil)
	r, _ := newRouter(t, svc)

	w := do(t, r, http.MethodPost, "/farm/start", handler.StartGameRequest{AnimalType: "chicken"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/farm/harvest", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, logs.String())
}

func TestFarmHandler_SnapshotScale(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantScale  float64
		wantStatus int
	}{
		{"defaults to mode", "/farm", domain.TimeScaleDemo, http.StatusOK},
		{"explicit scale", "/farm?scale=1", 1, http.StatusOK},
		{"fractional scale", "/farm?scale=2.5", 2.5, http.StatusOK},
		{"zero rejected", "/farm?scale=0", 0, http.StatusBadRequest},
		{"negative rejected", "/farm?scale=-3", 0, http.StatusBadRequest},
		{"nan rejected", "/farm?scale=NaN", 0, http.StatusBadRequest},
		{"inf rejected", "/farm?scale=Inf", 0, http.StatusBadRequest},
		{"garbage rejected", "/farm?scale=fast", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			if tt.wantStatus == http.StatusOK {
				svc.On("Snapshot", mock.Anything, tt.wantScale).
					Return(&domain.FarmSnapshot{Outcome: domain.OutcomeNone, TimeScale: tt.wantScale}, nil)
			}
			r, _ := newRouter(t, svc)

			w := do(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestFarmHandler_PollUsesCurrentMode(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Poll", mock.Anything, domain.TimeScaleReal).
		Return(&domain.FarmSnapshot{Outcome: domain.OutcomeGrowing}, nil)
	r, mode := newRouter(t, svc)

	w := do(t, r, http.MethodPost, "/farm/mode", handler.SetModeRequest{Mode: "real"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.TimeModeReal, mode.Mode())

	w = do(t, r, http.MethodPost, "/farm/poll", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap domain.FarmSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, domain.OutcomeGrowing, snap.Outcome)
}

func TestFarmHandler_Mode(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	r, _ := newRouter(t, svc)

	w := do(t, r, http.MethodGet, "/farm/mode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mode handler.ModeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mode))
	assert.Equal(t, domain.TimeModeDemo, mode.Mode)
	assert.Equal(t, domain.TimeScaleDemo, mode.Scale)

	w = do(t, r, http.MethodPost, "/farm/mode", handler.SetModeRequest{Mode: "turbo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var verr handler.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.Equal(t, handler.ErrMsgInvalidModeError, verr.Fields["mode"])
}

func TestFarmHandler_ExperienceAndLeaderboard(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Experience", mock.Anything).Return(10000, nil)
	r, _ := newRouter(t, svc)

	w := do(t, r, http.MethodGet, "/experience", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"experience":10000}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board domain.Leaderboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Equal(t, 4, board.PlayerRank)
	assert.Equal(t, "10,000 XP", board.Player.XPDisplay)
	assert.Len(t, board.Entries, 10)
}

func TestFarmHandler_LeaderboardStorageFailure(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Experience", mock.Anything).Return(0, assert.AnError)
	r, _ := newRouter(t, svc)

	w := do(t, r, http.MethodGet, "/leaderboard", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, handler.ErrMsgGenericServerError, errorBody(t, w))
}
