package server

import (
	"log/slog"
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type Phase6Request struct {
	TeamID         string `json:"teamId"`
	LocationAnswer string `json:"locationAnswer"`
}

type Phase6Response struct {
	Message    string `json:"message"`
	TeamName   string `json:"teamName"`
	TeamLeader string `json:"teamLeader"`
}

func handlePhase6Submit(logger *slog.Logger, engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Phase6Request
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := engine.SubmitPhase6(r.Context(), req.TeamID, req.LocationAnswer)
		if err != nil {
			apiError(w, err)
			return
		}

		logger.Info("hunt completed", "team_id", req.TeamID, "team_name", result.TeamName)
		writeJSON(w, http.StatusOK, Phase6Response{
			Message:    "Congratulations! You have completed the CodeHunt!",
			TeamName:   result.TeamName,
			TeamLeader: result.TeamLeader,
		})
	}
}
