package server

import (
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type Phase4CodeResponse struct {
	Code string `json:"code"`
}

func handlePhase4Code(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Phase4CodeResponse{Code: engine.Phase4Code()})
	}
}

type Phase4HintsResponse struct {
	Hints []string `json:"hints"`
}

func handlePhase4Hints(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Phase4HintsResponse{Hints: engine.Phase4Hints()})
	}
}

type Phase4SubmitRequest struct {
	TeamID string `json:"teamId"`
	Answer string `json:"answer"`
}

func handlePhase4Submit(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Phase4SubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := engine.SubmitPhase4(r.Context(), req.TeamID, req.Answer)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
