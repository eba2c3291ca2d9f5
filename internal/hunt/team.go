// Package hunt implements the phase-progression engine for the CodeHunt
// event: team registration, per-phase gating and scoring, and aggregate
// statistics. Storage is behind the Store interface so the engine never
// knows which backend is active.
package hunt

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhaseCount is the number of playable phases.
const PhaseCount = 6

// PhaseDone is the currentPhase value of a team that finished phase 6.
const PhaseDone = PhaseCount + 1

// PhaseProgress is the per-phase sub-record of a team. Fields other than
// Completed are only populated for the phases that use them.
type PhaseProgress struct {
	Completed      bool   `json:"completed"`
	AIPrompt       string `json:"aiPrompt,omitempty"`
	LocationAnswer string `json:"locationAnswer,omitempty"`
	CompletedAt    string `json:"completedAt,omitempty"`
}

// Team is one registered team. TeamName is stored lowercased; it and the
// registration fields are immutable after creation. CurrentPhase is the
// single source of truth for progression and only ever moves forward.
type Team struct {
	TeamID       string        `json:"teamId"`
	TeamName     string        `json:"teamName"`
	TeamLeader   string        `json:"teamLeader"`
	TeamMembers  []string      `json:"teamMembers"`
	Email        string        `json:"email"`
	Theme        string        `json:"theme"`
	CurrentPhase int           `json:"currentPhase"`
	Phase1       PhaseProgress `json:"phase1"`
	Phase2       PhaseProgress `json:"phase2"`
	Phase3       PhaseProgress `json:"phase3"`
	Phase4       PhaseProgress `json:"phase4"`
	Phase5       PhaseProgress `json:"phase5"`
	Phase6       PhaseProgress `json:"phase6"`
}

// Phase returns the sub-record for phase n (1-based). Panics on an
// out-of-range n; callers only pass literal phase numbers.
func (t *Team) Phase(n int) *PhaseProgress {
	switch n {
	case 1:
		return &t.Phase1
	case 2:
		return &t.Phase2
	case 3:
		return &t.Phase3
	case 4:
		return &t.Phase4
	case 5:
		return &t.Phase5
	case 6:
		return &t.Phase6
	}
	panic(fmt.Sprintf("hunt: invalid phase %d", n))
}

func (t *Team) clone() Team {
	c := *t
	c.TeamMembers = append([]string(nil), t.TeamMembers...)
	return c
}

// newTeamID builds a time-prefixed id with a random suffix. Uniqueness is
// probabilistic, matching the registration contract.
func newTeamID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("TEAM_%d_%s", time.Now().UnixMilli(), suffix)
}

func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
