package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/farm"
)

// StartGameRequest selects the animal to raise
type StartGameRequest struct {
	AnimalType string `json:"animal_type" validate:"required,max=32,printascii"`
}

// SetModeRequest switches between demo and real time
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,timemode"`
}

// ModeResponse describes the active time mode
type ModeResponse struct {
	Mode  domain.TimeMode `json:"mode"`
	Scale float64         `json:"scale"`
}

// ExperienceResponse carries the cumulative farm XP
type ExperienceResponse struct {
	Experience int `json:"experience"`
}

// ModeController is the driver's time-mode switch
type ModeController interface {
	Mode() domain.TimeMode
	Scale() float64
	Set(ctx context.Context, mode domain.TimeMode) error
}

// FarmHandler serves the farm lifecycle endpoints
type FarmHandler struct {
	svc  farm.Service
	mode ModeController
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(svc farm.Service, mode ModeController) *FarmHandler {
	return &FarmHandler{svc: svc, mode: mode}
}

// HandleListAnimals lists the catalog in display order
// @Summary List animals
// @Tags animals
// @Produce json
// @Success 200 {array} domain.Animal
// @Router /api/v1/animals [get]
func (h *FarmHandler) HandleListAnimals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Animals())
}

// HandleGetAnimal returns one animal definition
// @Summary Get animal
// @Tags animals
// @Produce json
// @Param id path string true "Animal key"
// @Success 200 {object} domain.Animal
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/animals/{id} [get]
func (h *FarmHandler) HandleGetAnimal(w http.ResponseWriter, r *http.Request) {
	animal, err := h.svc.Animal(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get animal", err)
		return
	}
	respondJSON(w, http.StatusOK, animal)
}

// HandleGetFarm returns the derived view of the farm
// @Summary Farm snapshot
// @Description Read-only view; scale defaults to the active time mode
// @Tags farm
// @Produce json
// @Param scale query number false "Time scale"
// @Success 200 {object} domain.FarmSnapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm [get]
func (h *FarmHandler) HandleGetFarm(w http.ResponseWriter, r *http.Request) {
	scale, ok := GetScaleParam(r, w, h.mode.Scale())
	if !ok {
		return
	}

	snapshot, err := h.svc.Snapshot(r.Context(), scale)
	if err != nil {
		respondServiceError(w, r, "Get farm", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// HandleStartGame places a new animal on the farm
// @Summary Start a game
// @Tags farm
// @Accept json
// @Produce json
// @Param request body StartGameRequest true "Animal to raise"
// @Success 201 {object} domain.GameState
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/start [post]
func (h *FarmHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
		return
	}

	state, err := h.svc.NewGame(r.Context(), req.AnimalType)
	if err != nil {
		respondServiceError(w, r, "Start game", err)
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

// HandleFeed feeds the growing animal
// @Summary Feed
// @Tags farm
// @Produce json
// @Success 200 {object} domain.GameState
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/feed [post]
func (h *FarmHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Feed", h.svc.Feed)
}

// HandleOrder places an order that speeds up growth by one day
// @Summary Place order
// @Tags farm
// @Produce json
// @Success 200 {object} domain.GameState
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/order [post]
func (h *FarmHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Place order", h.svc.OrderSpeedUp)
}

func (h *FarmHandler) handleAction(w http.ResponseWriter, r *http.Request, opName string, action func(context.Context) (*domain.GameState, error)) {
	state, err := action(r.Context())
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleHarvest collects the grown animal
// @Summary Harvest
// @Tags farm
// @Produce json
// @Success 200 {object} domain.HarvestResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/harvest [post]
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Harvest(r.Context())
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePoll runs one driver tick on demand
// @Summary Poll
// @Description Evaluates hunger then growth and persists any transition
// @Tags farm
// @Produce json
// @Param scale query number false "Time scale"
// @Success 200 {object} domain.FarmSnapshot
// @Router /api/v1/farm/poll [post]
func (h *FarmHandler) HandlePoll(w http.ResponseWriter, r *http.Request) {
	scale, ok := GetScaleParam(r, w, h.mode.Scale())
	if !ok {
		return
	}

	snapshot, err := h.svc.Poll(r.Context(), scale)
	if err != nil {
		respondServiceError(w, r, "Poll", err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// HandleGetMode returns the active time mode
// @Summary Get time mode
// @Tags farm
// @Produce json
// @Success 200 {object} ModeResponse
// @Router /api/v1/farm/mode [get]
func (h *FarmHandler) HandleGetMode(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ModeResponse{Mode: h.mode.Mode(), Scale: h.mode.Scale()})
}

// HandleSetMode switches the time mode used by the driver
// @Summary Set time mode
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SetModeRequest true "demo or real"
// @Success 200 {object} ModeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/mode [post]
func (h *FarmHandler) HandleSetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set mode"); err != nil {
		return
	}

	if err := h.mode.Set(r.Context(), domain.TimeMode(strings.ToLower(req.Mode))); err != nil {
		respondServiceError(w, r, "Set mode", err)
		return
	}
	respondJSON(w, http.StatusOK, ModeResponse{Mode: h.mode.Mode(), Scale: h.mode.Scale()})
}

// HandleGetExperience returns the cumulative farm XP
// @Summary Farm experience
// @Tags farm
// @Produce json
// @Success 200 {object} ExperienceResponse
// @Router /api/v1/experience [get]
func (h *FarmHandler) HandleGetExperience(w http.ResponseWriter, r *http.Request) {
	xp, err := h.svc.Experience(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get experience", err)
		return
	}
	respondJSON(w, http.StatusOK, ExperienceResponse{Experience: xp})
}
