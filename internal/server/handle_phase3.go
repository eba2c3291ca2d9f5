package server

import (
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

func handlePhase3Questions(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, QuestionsResponse{Questions: engine.Phase3Questions()})
	}
}

func handlePhase3Submit(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizSubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := engine.SubmitPhase3(r.Context(), req.TeamID, req.Answers)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
