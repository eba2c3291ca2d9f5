package hunt

// PhaseUpdate is a sparse update of one phase sub-record. Nil fields are
// left untouched by the merge.
type PhaseUpdate struct {
	Completed      *bool
	AIPrompt       *string
	LocationAnswer *string
	CompletedAt    *string
}

// TeamUpdate is a sparse, nested update of a team record. It is the typed
// equivalent of a dotted-path document update: each non-nil leaf replaces
// the stored value, every other field keeps its current value.
type TeamUpdate struct {
	CurrentPhase *int
	Phase1       *PhaseUpdate
	Phase2       *PhaseUpdate
	Phase3       *PhaseUpdate
	Phase4       *PhaseUpdate
	Phase5       *PhaseUpdate
	Phase6       *PhaseUpdate
}

// apply merges u into t. Store implementations call this while holding
// whatever makes the read-merge-write atomic for their backend.
func (u TeamUpdate) apply(t *Team) {
	if u.CurrentPhase != nil {
		t.CurrentPhase = *u.CurrentPhase
	}
	for n, pu := range map[int]*PhaseUpdate{
		1: u.Phase1, 2: u.Phase2, 3: u.Phase3,
		4: u.Phase4, 5: u.Phase5, 6: u.Phase6,
	} {
		if pu != nil {
			pu.apply(t.Phase(n))
		}
	}
}

func (u *PhaseUpdate) apply(p *PhaseProgress) {
	if u.Completed != nil {
		p.Completed = *u.Completed
	}
	if u.AIPrompt != nil {
		p.AIPrompt = *u.AIPrompt
	}
	if u.LocationAnswer != nil {
		p.LocationAnswer = *u.LocationAnswer
	}
	if u.CompletedAt != nil {
		p.CompletedAt = *u.CompletedAt
	}
}

func ptr[T any](v T) *T { return &v }

// phasePassed builds the update applied when phase n is passed: mark the
// sub-record completed, stamp the completion time, and advance
// currentPhase to n+1.
func phasePassed(n int) TeamUpdate {
	pu := &PhaseUpdate{Completed: ptr(true), CompletedAt: ptr(nowUTC())}
	u := TeamUpdate{CurrentPhase: ptr(n + 1)}
	switch n {
	case 1:
		u.Phase1 = pu
	case 2:
		u.Phase2 = pu
	case 3:
		u.Phase3 = pu
	case 4:
		u.Phase4 = pu
	case 5:
		u.Phase5 = pu
	case 6:
		u.Phase6 = pu
	}
	return u
}
