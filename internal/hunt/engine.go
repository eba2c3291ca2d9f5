package hunt

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"sync"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minMembers = 3
	maxMembers = 4
)

// Engine validates submissions against the catalog and the team's current
// phase, and applies the resulting partial updates. All per-team
// operations run under a per-team lock, so read-validate-write is atomic
// regardless of backend: two near-simultaneous submissions can never both
// advance the same phase.
type Engine struct {
	store   Store
	catalog *Catalog
	locks   [64]sync.Mutex
}

func NewEngine(store Store, catalog *Catalog) *Engine {
	return &Engine{store: store, catalog: catalog}
}

// lockTeam serializes operations for one team id. Striped rather than
// per-id so the lock table never grows.
func (e *Engine) lockTeam(id string) func() {
	h := fnv.New32a()
	h.Write([]byte(id))
	mu := &e.locks[h.Sum32()%uint32(len(e.locks))]
	mu.Lock()
	return mu.Unlock
}

// RegisterRequest carries the registration form. TeamMembers is the raw
// comma-joined text.
type RegisterRequest struct {
	TeamName    string `json:"teamName"`
	TeamLeader  string `json:"teamLeader"`
	TeamMembers string `json:"teamMembers"`
	Email       string `json:"email"`
	Theme       string `json:"theme"`
}

// Register validates the form, rejects duplicate names
// (case-insensitively), and creates the team on phase 1 with all six
// sub-records incomplete.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (Team, error) {
	if req.TeamName == "" || req.TeamLeader == "" || req.TeamMembers == "" || req.Email == "" || req.Theme == "" {
		return Team{}, validationf("all fields are required")
	}
	if !emailRe.MatchString(req.Email) {
		return Team{}, validationf("invalid email format")
	}
	if !e.catalog.validTheme(req.Theme) {
		return Team{}, validationf("please select a valid theme")
	}

	var members []string
	for _, m := range strings.Split(req.TeamMembers, ",") {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	if len(members) < minMembers || len(members) > maxMembers {
		return Team{}, validationf("team must have %d-%d members", minMembers, maxMembers)
	}

	name := strings.ToLower(strings.TrimSpace(req.TeamName))
	if _, err := e.store.TeamByName(ctx, name); err == nil {
		return Team{}, conflictf("team name already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return Team{}, fmt.Errorf("checking team name: %w", err)
	}

	team := Team{
		TeamID:       newTeamID(),
		TeamName:     name,
		TeamLeader:   req.TeamLeader,
		TeamMembers:  members,
		Email:        req.Email,
		Theme:        req.Theme,
		CurrentPhase: 1,
	}
	if err := e.store.CreateTeam(ctx, team); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return Team{}, conflictf("team name already exists")
		}
		return Team{}, fmt.Errorf("creating team: %w", err)
	}
	return team, nil
}

// TeamByName looks a team up by its case-insensitive name, for resuming a
// session.
func (e *Engine) TeamByName(ctx context.Context, name string) (Team, error) {
	return e.store.TeamByName(ctx, strings.ToLower(strings.TrimSpace(name)))
}

// SubmitPhase1 checks the image prompt for the required keyword, stores
// it, and advances the team to phase 2.
func (e *Engine) SubmitPhase1(ctx context.Context, teamID, aiPrompt string) error {
	if teamID == "" || aiPrompt == "" {
		return validationf("team id and ai prompt are required")
	}

	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return err
	}
	if team.Phase1.Completed {
		return conflictf("phase 1 already completed")
	}
	if team.CurrentPhase != 1 {
		return conflictf("not on phase 1")
	}
	if !strings.Contains(strings.ToUpper(aiPrompt), e.catalog.PromptKeyword) {
		return validationf("ai prompt must contain keyword %q", e.catalog.PromptKeyword)
	}

	u := phasePassed(1)
	u.Phase1.AIPrompt = ptr(aiPrompt)
	return e.store.UpdateTeam(ctx, teamID, u)
}

// Phase2Questions returns the phase 2 quiz without correct answers.
func (e *Engine) Phase2Questions() []QuestionView {
	return questionViews(e.catalog.Phase2Questions)
}

// CheckPhase2Answer reveals whether one submitted index is correct,
// without revealing the correct index and without touching any state.
func (e *Engine) CheckPhase2Answer(questionIndex, answer int) (bool, error) {
	if questionIndex < 0 || questionIndex >= len(e.catalog.Phase2Questions) {
		return false, validationf("invalid question index")
	}
	return answer == e.catalog.Phase2Questions[questionIndex].CorrectAnswer, nil
}

// CompletePhase2 performs the phase transition for the check-then-complete
// path, once every single-question check has succeeded client-side.
func (e *Engine) CompletePhase2(ctx context.Context, teamID string) error {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return err
	}
	if team.Phase2.Completed {
		return conflictf("phase 2 already completed")
	}
	return e.store.UpdateTeam(ctx, teamID, phasePassed(2))
}

// Phase2ItemResult reports correctness of one question without exposing
// the correct index.
type Phase2ItemResult struct {
	QuestionIndex int  `json:"questionIndex"`
	IsCorrect     bool `json:"isCorrect"`
}

type Phase2Result struct {
	Score   int                `json:"score"`
	Total   int                `json:"total"`
	Passed  bool               `json:"passed"`
	Results []Phase2ItemResult `json:"results"`
}

// SubmitPhase2 scores a batch answer set. The phase passes only when every
// question is correct; a failed attempt is recorded (completed stays
// false) without advancing the phase. Missing answers score as wrong.
func (e *Engine) SubmitPhase2(ctx context.Context, teamID string, answers []int) (Phase2Result, error) {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return Phase2Result{}, err
	}
	if team.Phase2.Completed {
		return Phase2Result{}, conflictf("phase 2 already completed")
	}

	questions := e.catalog.Phase2Questions
	result := Phase2Result{Total: len(questions)}
	for i, q := range questions {
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Results = append(result.Results, Phase2ItemResult{QuestionIndex: i, IsCorrect: correct})
	}
	result.Passed = result.Score == result.Total

	u := TeamUpdate{Phase2: &PhaseUpdate{Completed: ptr(result.Passed)}}
	if result.Passed {
		u.CurrentPhase = ptr(3)
		u.Phase2.CompletedAt = ptr(nowUTC())
	}
	if err := e.store.UpdateTeam(ctx, teamID, u); err != nil {
		return Phase2Result{}, err
	}
	return result, nil
}

// Phase3Questions returns the code-reading quiz without correct answers.
func (e *Engine) Phase3Questions() []QuestionView {
	return questionViews(e.catalog.Phase3Questions)
}

// Phase3ItemResult includes the correct answer: the phase 3 bank is small
// and non-reusable, so answers are shown after an attempt.
type Phase3ItemResult struct {
	QuestionID    int  `json:"questionId"`
	UserAnswer    int  `json:"userAnswer"`
	CorrectAnswer int  `json:"correctAnswer"`
	IsCorrect     bool `json:"isCorrect"`
}

type Phase3Result struct {
	Score     int                `json:"score"`
	Passed    bool               `json:"passed"`
	Results   []Phase3ItemResult `json:"results"`
	Questions []QuizQuestion     `json:"questions"`
}

// SubmitPhase3 scores the code-reading quiz against the minimum-score
// threshold. Below threshold nothing is persisted; the team retries.
func (e *Engine) SubmitPhase3(ctx context.Context, teamID string, answers []int) (Phase3Result, error) {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return Phase3Result{}, err
	}
	if team.CurrentPhase != 3 {
		return Phase3Result{}, conflictf("not on phase 3")
	}
	if team.Phase3.Completed {
		return Phase3Result{}, conflictf("phase 3 already completed")
	}

	questions := e.catalog.Phase3Questions
	result := Phase3Result{Questions: questions}
	for i, q := range questions {
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Results = append(result.Results, Phase3ItemResult{
			QuestionID:    q.ID,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	if result.Score < e.catalog.Phase3MinScore {
		return result, nil
	}

	result.Passed = true
	if err := e.store.UpdateTeam(ctx, teamID, phasePassed(3)); err != nil {
		return Phase3Result{}, err
	}
	return result, nil
}

// Phase4Code returns the buggy listing for the debugging challenge.
func (e *Engine) Phase4Code() string { return e.catalog.Phase4.Code }

// Phase4Hints returns the static hint list. Hints are independent of
// attempt count.
func (e *Engine) Phase4Hints() []string { return e.catalog.Phase4.Hints }

type Phase4Result struct {
	Correct      bool   `json:"correct"`
	Message      string `json:"message"`
	NextLocation string `json:"room,omitempty"`
}

// SubmitPhase4 matches the answer against the canonical phrase or its
// bare numeric equivalent, case-insensitively and whitespace-trimmed.
// Success reveals the next-location token.
func (e *Engine) SubmitPhase4(ctx context.Context, teamID, answer string) (Phase4Result, error) {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return Phase4Result{}, err
	}
	if team.CurrentPhase != 4 {
		return Phase4Result{}, conflictf("not on phase 4")
	}
	if team.Phase4.Completed {
		return Phase4Result{}, conflictf("phase 4 already completed")
	}

	got := strings.ToLower(strings.TrimSpace(answer))
	challenge := e.catalog.Phase4
	if got != challenge.Answer && got != challenge.NumericAnswer {
		return Phase4Result{Message: "Incorrect output. Try again!"}, nil
	}

	if err := e.store.UpdateTeam(ctx, teamID, phasePassed(4)); err != nil {
		return Phase4Result{}, err
	}
	return Phase4Result{
		Correct:      true,
		Message:      fmt.Sprintf("Correct! The next treasure is at Room %s!", challenge.NextLocation),
		NextLocation: challenge.NextLocation,
	}, nil
}

// Phase5Riddles returns the riddle set without answers.
func (e *Engine) Phase5Riddles() []RiddleView {
	return riddleViews(e.catalog.Phase5Riddles)
}

// AnswerPhase5Riddle scores a single riddle for live feedback. It never
// mutates persisted state; only CompletePhase5 transitions the phase.
func (e *Engine) AnswerPhase5Riddle(ctx context.Context, teamID string, riddleID int, answer RiddleAnswer) (bool, error) {
	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return false, err
	}
	if team.CurrentPhase != 5 {
		return false, conflictf("not on phase 5")
	}

	riddle := e.catalog.RiddleByID(riddleID)
	if riddle == nil {
		return false, fmt.Errorf("riddle %d: %w", riddleID, ErrNotFound)
	}
	return riddle.check(answer), nil
}

type Phase5Result struct {
	Passed  bool   `json:"passed"`
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// CompletePhase5 recomputes every riddle from the submitted answer map —
// client-supplied scores are never trusted — and requires all riddles
// correct. A failed attempt mutates nothing, so the team can resubmit.
func (e *Engine) CompletePhase5(ctx context.Context, teamID string, answers map[int]RiddleAnswer) (Phase5Result, error) {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return Phase5Result{}, err
	}
	if team.CurrentPhase != 5 {
		return Phase5Result{}, conflictf("not on phase 5")
	}

	result := Phase5Result{Total: len(e.catalog.Phase5Riddles)}
	for id, answer := range answers {
		if riddle := e.catalog.RiddleByID(id); riddle != nil && riddle.check(answer) {
			result.Score++
		}
	}

	if result.Score < result.Total {
		result.Message = fmt.Sprintf(
			"You scored %d/%d. All challenges must be correct to pass. Try again!",
			result.Score, result.Total)
		return result, nil
	}

	if err := e.store.UpdateTeam(ctx, teamID, phasePassed(5)); err != nil {
		return Phase5Result{}, err
	}
	result.Passed = true
	result.Message = "Phase 5 completed! Proceed to the final phase."
	return result, nil
}

type Phase6Result struct {
	TeamName   string `json:"teamName"`
	TeamLeader string `json:"teamLeader"`
}

// SubmitPhase6 stores the final location text as submitted — there is no
// grading — and marks the hunt complete (currentPhase 7).
func (e *Engine) SubmitPhase6(ctx context.Context, teamID, locationAnswer string) (Phase6Result, error) {
	defer e.lockTeam(teamID)()

	team, err := e.store.Team(ctx, teamID)
	if err != nil {
		return Phase6Result{}, err
	}
	if team.CurrentPhase != 6 {
		return Phase6Result{}, conflictf("not on phase 6")
	}
	if team.Phase6.Completed {
		return Phase6Result{}, conflictf("already completed")
	}

	u := phasePassed(6)
	u.Phase6.LocationAnswer = ptr(locationAnswer)
	if err := e.store.UpdateTeam(ctx, teamID, u); err != nil {
		return Phase6Result{}, err
	}
	return Phase6Result{TeamName: team.TeamName, TeamLeader: team.TeamLeader}, nil
}

// Team returns one team by id.
func (e *Engine) Team(ctx context.Context, teamID string) (Team, error) {
	return e.store.Team(ctx, teamID)
}

// Teams returns all records, for the admin view.
func (e *Engine) Teams(ctx context.Context) ([]Team, error) {
	return e.store.Teams(ctx)
}

// DeleteTeam removes one team. Administrative; callers gate access.
func (e *Engine) DeleteTeam(ctx context.Context, teamID string) error {
	return e.store.DeleteTeam(ctx, teamID)
}

// ClearTeams removes every team. Administrative; callers gate access.
func (e *Engine) ClearTeams(ctx context.Context) error {
	return e.store.DeleteAllTeams(ctx)
}
