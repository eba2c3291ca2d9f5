package server

import (
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type LeaderboardResponse struct {
	Leaderboard []hunt.LeaderboardEntry `json:"leaderboard"`
}

func handleLeaderboard(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := engine.Leaderboard(r.Context())
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
	}
}
