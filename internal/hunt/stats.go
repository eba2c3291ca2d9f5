package hunt

import (
	"context"
	"sort"
)

// PhaseStats counts how many teams have completed each phase.
type PhaseStats struct {
	Phase1 int `json:"phase1"`
	Phase2 int `json:"phase2"`
	Phase3 int `json:"phase3"`
	Phase4 int `json:"phase4"`
	Phase5 int `json:"phase5"`
	Phase6 int `json:"phase6"`
}

type Stats struct {
	TotalTeams int        `json:"totalTeams"`
	Phases     PhaseStats `json:"phaseStats"`
}

// Stats aggregates completion counts across all teams. A phase counts as
// completed only when its completed flag is set; records written before a
// phase existed simply don't count for it.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	teams, err := e.store.Teams(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalTeams: len(teams)}
	counts := [...]*int{
		&stats.Phases.Phase1, &stats.Phases.Phase2, &stats.Phases.Phase3,
		&stats.Phases.Phase4, &stats.Phases.Phase5, &stats.Phases.Phase6,
	}
	for _, t := range teams {
		for n := 1; n <= PhaseCount; n++ {
			if t.Phase(n).Completed {
				*counts[n-1]++
			}
		}
	}
	return stats, nil
}

type LeaderboardEntry struct {
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	TeamLeader string `json:"teamLeader"`
	FinishedAt string `json:"finishedAt"`
}

const leaderboardSize = 10

// Leaderboard lists teams that finished the hunt, earliest finisher
// first, capped at ten entries.
func (e *Engine) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	teams, err := e.store.Teams(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, leaderboardSize)
	for _, t := range teams {
		if !t.Phase6.Completed {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			TeamID:     t.TeamID,
			TeamName:   t.TeamName,
			TeamLeader: t.TeamLeader,
			FinishedAt: t.Phase6.CompletedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FinishedAt != entries[j].FinishedAt {
			return entries[i].FinishedAt < entries[j].FinishedAt
		}
		return entries[i].TeamID < entries[j].TeamID
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries, nil
}
