package server

import (
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type Phase1Request struct {
	TeamID   string `json:"teamId"`
	AIPrompt string `json:"aiPrompt"`
}

type PhaseCompletedResponse struct {
	Message      string `json:"message"`
	CurrentPhase int    `json:"currentPhase"`
}

func handlePhase1Submit(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Phase1Request
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := engine.SubmitPhase1(r.Context(), req.TeamID, req.AIPrompt); err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PhaseCompletedResponse{
			Message:      "Phase 1 completed! Proceed to Phase 2.",
			CurrentPhase: 2,
		})
	}
}
