package server

import (
	"net/http"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

type QuestionsResponse struct {
	Questions []hunt.QuestionView `json:"questions"`
}

func handlePhase2Questions(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, QuestionsResponse{Questions: engine.Phase2Questions()})
	}
}

type CheckAnswerRequest struct {
	QuestionIndex int `json:"questionIndex"`
	Answer        int `json:"answer"`
}

type CheckAnswerResponse struct {
	Correct bool `json:"correct"`
}

func handlePhase2CheckAnswer(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckAnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		correct, err := engine.CheckPhase2Answer(req.QuestionIndex, req.Answer)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CheckAnswerResponse{Correct: correct})
	}
}

type TeamIDRequest struct {
	TeamID string `json:"teamId"`
}

func handlePhase2Complete(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TeamIDRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := engine.CompletePhase2(r.Context(), req.TeamID); err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PhaseCompletedResponse{
			Message:      "Phase 2 completed! Proceed to Phase 3.",
			CurrentPhase: 3,
		})
	}
}

type QuizSubmitRequest struct {
	TeamID  string `json:"teamId"`
	Answers []int  `json:"answers"`
}

func handlePhase2Submit(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizSubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := engine.SubmitPhase2(r.Context(), req.TeamID, req.Answers)
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
