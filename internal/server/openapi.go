package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "CodeHunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the CodeHunt scavenger hunt.")

	// GET /api/health
	getHealth, _ := r.NewOperationContext(http.MethodGet, "/api/health")
	getHealth.SetSummary("Health check")
	getHealth.SetDescription("Returns the health status of backend dependencies.")
	getHealth.AddRespStructure(map[string]HealthResult{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealth.AddRespStructure(map[string]HealthResult{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealth)

	// POST /api/register
	postRegister, _ := r.NewOperationContext(http.MethodPost, "/api/register")
	postRegister.SetSummary("Register a team")
	postRegister.SetDescription("Registers a new team. Team names are unique, case-insensitively.")
	postRegister.AddReqStructure(hunt.RegisterRequest{})
	postRegister.AddRespStructure(RegisterResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postRegister)

	// GET /api/teams/{teamName}
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{teamName}")
	getTeam.SetSummary("Look up team")
	getTeam.SetDescription("Look up a team by name (case-insensitive), for resuming a session.")
	getTeam.AddRespStructure(hunt.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTeam)

	// POST /api/phase1/submit
	postPhase1, _ := r.NewOperationContext(http.MethodPost, "/api/phase1/submit")
	postPhase1.SetSummary("Submit phase 1 prompt")
	postPhase1.SetDescription("Submit the AI image prompt. Must contain the required keyword.")
	postPhase1.AddReqStructure(Phase1Request{})
	postPhase1.AddRespStructure(PhaseCompletedResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPhase1.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postPhase1.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPhase1)

	// GET /api/phase2/questions
	getPhase2, _ := r.NewOperationContext(http.MethodGet, "/api/phase2/questions")
	getPhase2.SetSummary("Phase 2 quiz questions")
	getPhase2.SetDescription("Returns the quiz questions without correct answers.")
	getPhase2.AddRespStructure(QuestionsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPhase2)

	// POST /api/phase2/check-answer
	postCheck, _ := r.NewOperationContext(http.MethodPost, "/api/phase2/check-answer")
	postCheck.SetSummary("Check one quiz answer")
	postCheck.SetDescription("Stateless correctness check for a single question.")
	postCheck.AddReqStructure(CheckAnswerRequest{})
	postCheck.AddRespStructure(CheckAnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCheck.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postCheck)

	// POST /api/phase2/complete
	postP2Complete, _ := r.NewOperationContext(http.MethodPost, "/api/phase2/complete")
	postP2Complete.SetSummary("Complete phase 2")
	postP2Complete.SetDescription("Marks phase 2 complete after per-question checks.")
	postP2Complete.AddReqStructure(TeamIDRequest{})
	postP2Complete.AddRespStructure(PhaseCompletedResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postP2Complete.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP2Complete)

	// POST /api/phase2/submit
	postP2Submit, _ := r.NewOperationContext(http.MethodPost, "/api/phase2/submit")
	postP2Submit.SetSummary("Submit phase 2 answers")
	postP2Submit.SetDescription("Scores the full quiz. All answers must be correct to pass.")
	postP2Submit.AddReqStructure(QuizSubmitRequest{})
	postP2Submit.AddRespStructure(hunt.Phase2Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postP2Submit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP2Submit)

	// GET /api/phase3/questions
	getPhase3, _ := r.NewOperationContext(http.MethodGet, "/api/phase3/questions")
	getPhase3.SetSummary("Phase 3 code questions")
	getPhase3.SetDescription("Returns the code-reading questions without correct answers.")
	getPhase3.AddRespStructure(QuestionsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPhase3)

	// POST /api/phase3/submit
	postP3Submit, _ := r.NewOperationContext(http.MethodPost, "/api/phase3/submit")
	postP3Submit.SetSummary("Submit phase 3 answers")
	postP3Submit.SetDescription("Scores the code quiz against the minimum passing score.")
	postP3Submit.AddReqStructure(QuizSubmitRequest{})
	postP3Submit.AddRespStructure(hunt.Phase3Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postP3Submit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP3Submit)

	// GET /api/phase4/code
	getP4Code, _ := r.NewOperationContext(http.MethodGet, "/api/phase4/code")
	getP4Code.SetSummary("Phase 4 buggy code")
	getP4Code.AddRespStructure(Phase4CodeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getP4Code)

	// GET /api/phase4/hints
	getP4Hints, _ := r.NewOperationContext(http.MethodGet, "/api/phase4/hints")
	getP4Hints.SetSummary("Phase 4 hints")
	getP4Hints.AddRespStructure(Phase4HintsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getP4Hints)

	// POST /api/phase4/submit
	postP4Submit, _ := r.NewOperationContext(http.MethodPost, "/api/phase4/submit")
	postP4Submit.SetSummary("Submit phase 4 answer")
	postP4Submit.SetDescription("Checks the program output. Success reveals the next location.")
	postP4Submit.AddReqStructure(Phase4SubmitRequest{})
	postP4Submit.AddRespStructure(hunt.Phase4Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postP4Submit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP4Submit)

	// GET /api/phase5/riddles
	getRiddles, _ := r.NewOperationContext(http.MethodGet, "/api/phase5/riddles")
	getRiddles.SetSummary("Phase 5 riddles")
	getRiddles.SetDescription("Returns the riddles without answers.")
	getRiddles.AddRespStructure(RiddlesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRiddles)

	// POST /api/phase5/answer
	postRiddle, _ := r.NewOperationContext(http.MethodPost, "/api/phase5/answer")
	postRiddle.SetSummary("Answer one riddle")
	postRiddle.SetDescription("Scores a single riddle for live feedback. Does not change state.")
	postRiddle.AddReqStructure(RiddleAnswerRequest{})
	postRiddle.AddRespStructure(RiddleAnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postRiddle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postRiddle)

	// POST /api/phase5/complete
	postP5Complete, _ := r.NewOperationContext(http.MethodPost, "/api/phase5/complete")
	postP5Complete.SetSummary("Complete phase 5")
	postP5Complete.SetDescription("Rescoring of all riddles server-side. Every riddle must be correct.")
	postP5Complete.AddReqStructure(Phase5CompleteRequest{})
	postP5Complete.AddRespStructure(hunt.Phase5Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postP5Complete.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP5Complete)

	// POST /api/phase6/submit
	postP6Submit, _ := r.NewOperationContext(http.MethodPost, "/api/phase6/submit")
	postP6Submit.SetSummary("Submit final location")
	postP6Submit.SetDescription("Stores the final location answer and completes the hunt.")
	postP6Submit.AddReqStructure(Phase6Request{})
	postP6Submit.AddRespStructure(Phase6Response{}, openapi.WithHTTPStatus(http.StatusOK))
	postP6Submit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postP6Submit)

	// GET /api/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("Teams that finished the hunt, earliest first, capped at ten.")
	getBoard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// GET /api/admin/teams
	listTeams, _ := r.NewOperationContext(http.MethodGet, "/api/admin/teams")
	listTeams.SetSummary("List teams")
	listTeams.SetDescription("Returns all team records. Requires the admin Bearer password.")
	listTeams.AddRespStructure(TeamsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	listTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listTeams)

	// GET /api/admin/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	getStats.SetSummary("Aggregate statistics")
	getStats.SetDescription("Completion counts per phase. Requires the admin Bearer password.")
	getStats.AddRespStructure(hunt.Stats{}, openapi.WithHTTPStatus(http.StatusOK))
	getStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getStats)

	// DELETE /api/admin/teams/{teamID}
	deleteTeam, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/teams/{teamID}")
	deleteTeam.SetSummary("Delete team")
	deleteTeam.SetDescription("Deletes one team. Requires the admin Bearer password.")
	deleteTeam.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	deleteTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteTeam)

	// DELETE /api/admin/teams
	clearTeams, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/teams")
	clearTeams.SetSummary("Clear all teams")
	clearTeams.SetDescription("Deletes every team record. Requires the admin Bearer password.")
	clearTeams.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	clearTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(clearTeams)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
