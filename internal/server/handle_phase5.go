package server

import (
	"net/http"
	"strconv"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type RiddlesResponse struct {
	Riddles []hunt.RiddleView `json:"riddles"`
}

func handlePhase5Riddles(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RiddlesResponse{Riddles: engine.Phase5Riddles()})
	}
}

type RiddleAnswerRequest struct {
	TeamID   string            `json:"teamId"`
	RiddleID int               `json:"riddleId"`
	Answer   hunt.RiddleAnswer `json:"answer"`
}

type RiddleAnswerResponse struct {
	Correct bool `json:"correct"`
}

func handlePhase5Answer(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RiddleAnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		correct, err := engine.AnswerPhase5Riddle(r.Context(), req.TeamID, req.RiddleID, req.Answer)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RiddleAnswerResponse{Correct: correct})
	}
}

type Phase5CompleteRequest struct {
	TeamID string `json:"teamId"`
	// Answers is keyed by riddle id; JSON object keys are strings.
	Answers map[string]struct {
		Answer hunt.RiddleAnswer `json:"answer"`
	} `json:"answers"`
}

func handlePhase5Complete(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Phase5CompleteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		answers := make(map[int]hunt.RiddleAnswer, len(req.Answers))
		for key, a := range req.Answers {
			id, err := strconv.Atoi(key)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid riddle id: "+key)
				return
			}
			answers[id] = a.Answer
		}

		result, err := engine.CompletePhase5(r.Context(), req.TeamID, answers)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
