package hunt

import "context"

// Store is the team record collaborator. Implementations must honor the
// partial-update contract of TeamUpdate: only the leaf fields set in the
// update change, everything else persists untouched, and the merge is
// applied atomically per team.
//
// Name lookups take the normalized (lowercase) name; normalization is the
// engine's job.
type Store interface {
	// CreateTeam inserts a new record. Returns ErrDuplicateName if a team
	// with the same normalized name already exists.
	CreateTeam(ctx context.Context, team Team) error

	// Team returns the record for id, or ErrNotFound.
	Team(ctx context.Context, id string) (Team, error)

	// TeamByName returns the record with the given normalized name, or
	// ErrNotFound.
	TeamByName(ctx context.Context, name string) (Team, error)

	// UpdateTeam merges u into the stored record, or ErrNotFound.
	UpdateTeam(ctx context.Context, id string, u TeamUpdate) error

	// Teams returns all records. Order is implementation-defined.
	Teams(ctx context.Context) ([]Team, error)

	// DeleteTeam removes one record, or ErrNotFound.
	DeleteTeam(ctx context.Context, id string) error

	// DeleteAllTeams removes every record.
	DeleteAllTeams(ctx context.Context) error
}
