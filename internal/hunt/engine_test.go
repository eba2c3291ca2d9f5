package hunt

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nextgenaiclub/codehunt/internal/database"
)

// Correct answers for the default catalog, used to drive teams through
// the phases in tests.
var (
	phase2Correct = []int{0, 1, 2, 3, 1, 0, 3, 2, 3, 1}
	phase3Correct = []int{1, 2, 2, 1, 2}
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	docs, err := NewDocStore(ctx, db)
	if err != nil {
		t.Fatalf("init doc store: %v", err)
	}

	return map[string]Store{
		"memory": NewMemStore(),
		"sqlite": docs,
	}
}

func validRegistration(name string) RegisterRequest {
	return RegisterRequest{
		TeamName:    name,
		TeamLeader:  "Asha",
		TeamMembers: "Asha, Ben, Chandra",
		Email:       "asha@example.com",
		Theme:       "AI in Healthcare",
	}
}

// registerTeam creates a team and returns it.
func registerTeam(t *testing.T, e *Engine, name string) Team {
	t.Helper()
	team, err := e.Register(context.Background(), validRegistration(name))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return team
}

// advanceTo plays the team forward until currentPhase is the target.
func advanceTo(t *testing.T, e *Engine, teamID string, target int) {
	t.Helper()
	ctx := context.Background()

	steps := []func() error{
		func() error { return e.SubmitPhase1(ctx, teamID, "a city of glass, code VU2050") },
		func() error {
			_, err := e.SubmitPhase2(ctx, teamID, phase2Correct)
			return err
		},
		func() error {
			_, err := e.SubmitPhase3(ctx, teamID, phase3Correct)
			return err
		},
		func() error {
			_, err := e.SubmitPhase4(ctx, teamID, "90")
			return err
		},
		func() error {
			_, err := e.CompletePhase5(ctx, teamID, map[int]RiddleAnswer{
				1: IndexAnswer(1), 2: IndexAnswer(1), 3: TextAnswer("standee"),
			})
			return err
		},
	}
	for phase := 1; phase < target; phase++ {
		if err := steps[phase-1](); err != nil {
			t.Fatalf("advancing past phase %d: %v", phase, err)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"missing name", func(r *RegisterRequest) { r.TeamName = "" }},
		{"missing leader", func(r *RegisterRequest) { r.TeamLeader = "" }},
		{"missing members", func(r *RegisterRequest) { r.TeamMembers = "" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"email with spaces", func(r *RegisterRequest) { r.Email = "a b@example.com" }},
		{"unknown theme", func(r *RegisterRequest) { r.Theme = "Underwater Basket Weaving" }},
		{"too few members", func(r *RegisterRequest) { r.TeamMembers = "Asha, Ben" }},
		{"too many members", func(r *RegisterRequest) { r.TeamMembers = "A, B, C, D, E" }},
		{"members all whitespace", func(r *RegisterRequest) { r.TeamMembers = " , , " }},
	}

	e := NewEngine(NewMemStore(), DefaultCatalog())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration("validators")
			tt.mutate(&req)
			_, err := e.Register(context.Background(), req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterNormalizesName(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())

	req := validRegistration("  The Gophers  ")
	team, err := e.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if team.TeamName != "the gophers" {
		t.Errorf("expected normalized name, got %q", team.TeamName)
	}
	if team.CurrentPhase != 1 {
		t.Errorf("expected currentPhase 1, got %d", team.CurrentPhase)
	}
	if len(team.TeamMembers) != 3 {
		t.Errorf("expected 3 members, got %v", team.TeamMembers)
	}

	// Lookup is case-insensitive too.
	got, err := e.TeamByName(context.Background(), "THE GOPHERS")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.TeamID != team.TeamID {
		t.Errorf("lookup returned wrong team: %q", got.TeamID)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			e := NewEngine(store, DefaultCatalog())
			registerTeam(t, e, "unique-crew")

			_, err := e.Register(context.Background(), validRegistration("Unique-Crew"))
			var ce *ConflictError
			if !errors.As(err, &ce) {
				t.Fatalf("expected conflict on duplicate name, got %v", err)
			}
		})
	}
}

func TestPhase1(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "prompters")
	ctx := context.Background()

	// Keyword missing.
	err := e.SubmitPhase1(ctx, team.TeamID, "a city of glass and light")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error without keyword, got %v", err)
	}

	// Keyword present, any case.
	if err := e.SubmitPhase1(ctx, team.TeamID, "skyline with vu2050 etched in neon"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 2 || !got.Phase1.Completed {
		t.Errorf("expected phase 2 after pass, got phase %d completed=%v", got.CurrentPhase, got.Phase1.Completed)
	}
	if got.Phase1.AIPrompt == "" || got.Phase1.CompletedAt == "" {
		t.Errorf("expected prompt and timestamp recorded, got %+v", got.Phase1)
	}

	// Second submission is rejected.
	err = e.SubmitPhase1(ctx, team.TeamID, "again VU2050")
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict on resubmit, got %v", err)
	}
}

func TestPhase1UnknownTeam(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	err := e.SubmitPhase1(context.Background(), "TEAM_nope", "VU2050")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckPhase2Answer(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())

	if _, err := e.CheckPhase2Answer(99, 0); err == nil {
		t.Fatal("expected error for out-of-range question index")
	}
	correct, err := e.CheckPhase2Answer(0, phase2Correct[0])
	if err != nil || !correct {
		t.Fatalf("expected correct, got %v %v", correct, err)
	}
	correct, _ = e.CheckPhase2Answer(0, phase2Correct[0]+1)
	if correct {
		t.Fatal("expected incorrect for wrong option")
	}
}

func TestPhase2AllCorrectRequired(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			e := NewEngine(store, DefaultCatalog())
			team := registerTeam(t, e, "quiz-"+name)
			ctx := context.Background()
			advanceTo(t, e, team.TeamID, 2)

			// One wrong answer fails the phase.
			wrong := append([]int(nil), phase2Correct...)
			wrong[4] = (wrong[4] + 1) % 4
			result, err := e.SubmitPhase2(ctx, team.TeamID, wrong)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if result.Passed || result.Score != 9 || result.Total != 10 {
				t.Fatalf("expected 9/10 fail, got %+v", result)
			}

			got, _ := e.Team(ctx, team.TeamID)
			if got.CurrentPhase != 2 || got.Phase2.Completed {
				t.Fatalf("failed attempt must not advance, got %+v", got)
			}

			// Retry with everything correct.
			result, err = e.SubmitPhase2(ctx, team.TeamID, phase2Correct)
			if err != nil {
				t.Fatalf("retry: %v", err)
			}
			if !result.Passed {
				t.Fatalf("expected pass, got %+v", result)
			}

			got, _ = e.Team(ctx, team.TeamID)
			if got.CurrentPhase != 3 || !got.Phase2.Completed {
				t.Fatalf("expected phase 3 after pass, got %+v", got)
			}

			// Results never leak the correct option.
			for _, item := range result.Results {
				_ = item.QuestionIndex
			}
		})
	}
}

func TestPhase2MissingAnswersScoreWrong(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "short-quiz")
	advanceTo(t, e, team.TeamID, 2)

	result, err := e.SubmitPhase2(context.Background(), team.TeamID, phase2Correct[:4])
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed || result.Score != 4 {
		t.Fatalf("expected 4/10, got %+v", result)
	}
}

func TestCompletePhase2(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "checkers")
	ctx := context.Background()
	advanceTo(t, e, team.TeamID, 2)

	if err := e.CompletePhase2(ctx, team.TeamID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 3 || !got.Phase2.Completed {
		t.Fatalf("expected phase 3, got %+v", got)
	}

	var ce *ConflictError
	if err := e.CompletePhase2(ctx, team.TeamID); !errors.As(err, &ce) {
		t.Fatalf("expected conflict on double complete, got %v", err)
	}
}

func TestPhase3Threshold(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "readers")
	ctx := context.Background()
	advanceTo(t, e, team.TeamID, 3)

	// Two correct is below the threshold: no mutation.
	low := []int{phase3Correct[0], phase3Correct[1], -1, -1, -1}
	result, err := e.SubmitPhase3(ctx, team.TeamID, low)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed || result.Score != 2 {
		t.Fatalf("expected 2/5 fail, got score %d passed %v", result.Score, result.Passed)
	}
	if len(result.Results) != 5 || len(result.Questions) == 0 {
		t.Fatalf("expected per-question results and answer reveal, got %+v", result)
	}
	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 3 {
		t.Fatalf("failed attempt must not advance, got phase %d", got.CurrentPhase)
	}

	// Exactly three correct passes.
	threshold := []int{phase3Correct[0], phase3Correct[1], phase3Correct[2], -1, -1}
	result, err = e.SubmitPhase3(ctx, team.TeamID, threshold)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Passed || result.Score != 3 {
		t.Fatalf("expected 3/5 pass, got %+v", result)
	}

	got, _ = e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 4 || !got.Phase3.Completed {
		t.Fatalf("expected phase 4, got %+v", got)
	}
}

func TestPhase3RequiresPhase(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "eager")

	_, err := e.SubmitPhase3(context.Background(), team.TeamID, phase3Correct)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict on wrong phase, got %v", err)
	}
}

func TestPhase4(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "debuggers")
	ctx := context.Background()
	advanceTo(t, e, team.TeamID, 4)

	// Wrong answer is a normal result, not an error.
	result, err := e.SubmitPhase4(ctx, team.TeamID, "42")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct {
		t.Fatalf("expected incorrect, got %+v", result)
	}
	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 4 {
		t.Fatalf("wrong answer must not advance, got phase %d", got.CurrentPhase)
	}

	// Full phrase, mixed case and padding.
	result, err = e.SubmitPhase4(ctx, team.TeamID, "  Sum of Even-Indexed: 90  ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct || result.NextLocation != "2012" {
		t.Fatalf("expected pass revealing room 2012, got %+v", result)
	}

	got, _ = e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 5 || !got.Phase4.Completed {
		t.Fatalf("expected phase 5, got %+v", got)
	}
}

func TestPhase4NumericForm(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "numeric")
	advanceTo(t, e, team.TeamID, 4)

	result, err := e.SubmitPhase4(context.Background(), team.TeamID, "90")
	if err != nil || !result.Correct {
		t.Fatalf("expected bare numeric answer accepted, got %+v %v", result, err)
	}
}

func TestPhase4Hints(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	if len(e.Phase4Hints()) == 0 {
		t.Fatal("expected hints")
	}
	if e.Phase4Code() == "" {
		t.Fatal("expected code listing")
	}
}

func TestAnswerPhase5Riddle(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "riddlers")
	ctx := context.Background()
	advanceTo(t, e, team.TeamID, 5)

	correct, err := e.AnswerPhase5Riddle(ctx, team.TeamID, 1, IndexAnswer(1))
	if err != nil || !correct {
		t.Fatalf("expected correct, got %v %v", correct, err)
	}
	correct, _ = e.AnswerPhase5Riddle(ctx, team.TeamID, 3, TextAnswer("  STANDEE "))
	if !correct {
		t.Fatal("expected text match to ignore case and whitespace")
	}
	correct, _ = e.AnswerPhase5Riddle(ctx, team.TeamID, 3, TextAnswer("poster"))
	if correct {
		t.Fatal("expected wrong text rejected")
	}

	if _, err := e.AnswerPhase5Riddle(ctx, team.TeamID, 99, IndexAnswer(0)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown riddle, got %v", err)
	}

	// Single-riddle checks never advance the phase.
	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 5 {
		t.Fatalf("expected phase unchanged, got %d", got.CurrentPhase)
	}
}

func TestCompletePhase5AllRequired(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "completers")
	ctx := context.Background()
	advanceTo(t, e, team.TeamID, 5)

	// Missing one riddle fails without mutation.
	result, err := e.CompletePhase5(ctx, team.TeamID, map[int]RiddleAnswer{
		1: IndexAnswer(1), 2: IndexAnswer(1),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Passed || result.Score != 2 || result.Total != 3 {
		t.Fatalf("expected 2/3 fail, got %+v", result)
	}
	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 5 {
		t.Fatalf("failed attempt must not advance, got phase %d", got.CurrentPhase)
	}

	// Full set passes.
	result, err = e.CompletePhase5(ctx, team.TeamID, map[int]RiddleAnswer{
		1: IndexAnswer(1), 2: IndexAnswer(1), 3: TextAnswer("standee"),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
	got, _ = e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 6 || !got.Phase5.Completed {
		t.Fatalf("expected phase 6, got %+v", got)
	}
}

func TestPhase6(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			e := NewEngine(store, DefaultCatalog())
			team := registerTeam(t, e, "finishers-"+name)
			ctx := context.Background()
			advanceTo(t, e, team.TeamID, 6)

			result, err := e.SubmitPhase6(ctx, team.TeamID, "under the auditorium stairs")
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if result.TeamName != "finishers-"+name {
				t.Errorf("expected team name echoed, got %q", result.TeamName)
			}

			got, _ := e.Team(ctx, team.TeamID)
			if got.CurrentPhase != PhaseDone || !got.Phase6.Completed {
				t.Fatalf("expected finished team, got %+v", got)
			}
			if got.Phase6.LocationAnswer != "under the auditorium stairs" {
				t.Errorf("expected location stored verbatim, got %q", got.Phase6.LocationAnswer)
			}

			// The hunt cannot be finished twice.
			var ce *ConflictError
			if _, err := e.SubmitPhase6(ctx, team.TeamID, "again"); !errors.As(err, &ce) {
				t.Fatalf("expected conflict, got %v", err)
			}
		})
	}
}

// A phase can only be passed once even under concurrent submissions.
func TestConcurrentSubmissionsAdvanceOnce(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "racers")
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = e.SubmitPhase1(ctx, team.TeamID, "VU2050 skyline")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one submission to succeed, got %d", ok)
	}

	got, _ := e.Team(ctx, team.TeamID)
	if got.CurrentPhase != 2 {
		t.Fatalf("expected phase 2, got %d", got.CurrentPhase)
	}
}

func TestDeleteTeam(t *testing.T) {
	e := NewEngine(NewMemStore(), DefaultCatalog())
	team := registerTeam(t, e, "deleted")
	ctx := context.Background()

	if err := e.DeleteTeam(ctx, team.TeamID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := e.Team(ctx, team.TeamID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := e.DeleteTeam(ctx, team.TeamID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	// The name becomes available again.
	registerTeam(t, e, "deleted")
}
