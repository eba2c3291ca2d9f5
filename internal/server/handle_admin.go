package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type TeamsResponse struct {
	Teams []hunt.Team `json:"teams"`
}

func handleAdminListTeams(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := engine.Teams(r.Context())
		if err != nil {
			apiError(w, err)
			return
		}
		if teams == nil {
			teams = []hunt.Team{}
		}
		writeJSON(w, http.StatusOK, TeamsResponse{Teams: teams})
	}
}

func handleAdminStats(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := engine.Stats(r.Context())
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleAdminDeleteTeam(logger *slog.Logger, engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if err := engine.DeleteTeam(r.Context(), teamID); err != nil {
			apiError(w, err)
			return
		}
		logger.Info("team deleted", "team_id", teamID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
	}
}

func handleAdminClearTeams(logger *slog.Logger, engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := engine.ClearTeams(r.Context()); err != nil {
			apiError(w, err)
			return
		}
		logger.Info("all teams cleared")
		writeJSON(w, http.StatusOK, map[string]string{"message": "All teams cleared"})
	}
}
