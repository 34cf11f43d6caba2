package handler

import (
	"context"
	"net/http"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// ExperienceSource reports the local player's farm XP
type ExperienceSource interface {
	Experience(ctx context.Context) (int, error)
}

// StandingsProvider ranks a player against the board
type StandingsProvider interface {
	Standings(playerXP int) domain.Leaderboard
}

// HandleGetLeaderboard returns the board with the local player's rank
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {object} domain.Leaderboard
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(xp ExperienceSource, board StandingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerXP, err := xp.Experience(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, board.Standings(playerXP))
	}
}
