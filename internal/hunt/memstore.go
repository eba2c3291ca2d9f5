package hunt

import (
	"context"
	"sync"
)

// MemStore is the volatile in-process backend: a map guarded by a mutex.
// Data is lost on restart; intended for development and tests.
type MemStore struct {
	mu     sync.RWMutex
	teams  map[string]Team
	byName map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		teams:  make(map[string]Team),
		byName: make(map[string]string),
	}
}

func (s *MemStore) CreateTeam(_ context.Context, team Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[team.TeamName]; ok {
		return ErrDuplicateName
	}
	s.teams[team.TeamID] = team.clone()
	s.byName[team.TeamName] = team.TeamID
	return nil
}

func (s *MemStore) Team(_ context.Context, id string) (Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return Team{}, ErrNotFound
	}
	return t.clone(), nil
}

func (s *MemStore) TeamByName(ctx context.Context, name string) (Team, error) {
	s.mu.RLock()
	id, ok := s.byName[name]
	s.mu.RUnlock()
	if !ok {
		return Team{}, ErrNotFound
	}
	return s.Team(ctx, id)
}

func (s *MemStore) UpdateTeam(_ context.Context, id string, u TeamUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return ErrNotFound
	}
	u.apply(&t)
	s.teams[id] = t
	return nil
}

func (s *MemStore) Teams(_ context.Context) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t.clone())
	}
	return teams, nil
}

func (s *MemStore) DeleteTeam(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byName, t.TeamName)
	delete(s.teams, id)
	return nil
}

func (s *MemStore) DeleteAllTeams(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]Team)
	s.byName = make(map[string]string)
	return nil
}

var _ Store = (*MemStore)(nil)
