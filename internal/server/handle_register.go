package server

import (
	"log/slog"
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type RegisterResponse struct {
	Message string    `json:"message"`
	Team    hunt.Team `json:"team"`
}

func handleRegister(logger *slog.Logger, engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hunt.RegisterRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		team, err := engine.Register(r.Context(), req)
		if err != nil {
			apiError(w, err)
			return
		}

		logger.Info("team registered", "team_id", team.TeamID, "team_name", team.TeamName)
		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "Team registered successfully!",
			Team:    team,
		})
	}
}
