package hunt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	teamKeyPrefix = "codehunt:team:"
	nameKeyPrefix = "codehunt:name:"
	teamIDsKey    = "codehunt:teams"
)

// RedisStore keeps one JSON document per team under codehunt:team:<id>,
// a name→id index under codehunt:name:<name>, and the id set under
// codehunt:teams. Merges use WATCH so concurrent updates retry instead of
// clobbering each other.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func teamKey(id string) string   { return teamKeyPrefix + id }
func nameKey(name string) string { return nameKeyPrefix + name }

func (s *RedisStore) CreateTeam(ctx context.Context, team Team) error {
	ok, err := s.rdb.SetNX(ctx, nameKey(team.TeamName), team.TeamID, 0).Result()
	if err != nil {
		return fmt.Errorf("reserving team name: %w", err)
	}
	if !ok {
		return ErrDuplicateName
	}

	data, err := json.Marshal(team)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, teamKey(team.TeamID), data, 0)
		pipe.SAdd(ctx, teamIDsKey, team.TeamID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing team: %w", err)
	}
	return nil
}

func (s *RedisStore) Team(ctx context.Context, id string) (Team, error) {
	data, err := s.rdb.Get(ctx, teamKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Team{}, ErrNotFound
	}
	if err != nil {
		return Team{}, fmt.Errorf("reading team: %w", err)
	}
	var t Team
	if err := json.Unmarshal(data, &t); err != nil {
		return Team{}, err
	}
	return t, nil
}

func (s *RedisStore) TeamByName(ctx context.Context, name string) (Team, error) {
	id, err := s.rdb.Get(ctx, nameKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return Team{}, ErrNotFound
	}
	if err != nil {
		return Team{}, fmt.Errorf("resolving team name: %w", err)
	}
	return s.Team(ctx, id)
}

// UpdateTeam applies the merge under WATCH: if another writer touches the
// document between read and write, the transaction fails and is retried.
func (s *RedisStore) UpdateTeam(ctx context.Context, id string, u TeamUpdate) error {
	key := teamKey(id)
	const maxRetries = 5

	for i := 0; i < maxRetries; i++ {
		err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}

			var t Team
			if err := json.Unmarshal(data, &t); err != nil {
				return err
			}
			u.apply(&t)

			merged, err := json.Marshal(t)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, merged, 0)
				return nil
			})
			return err
		}, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("updating team %s: too many conflicting writes", id)
}

func (s *RedisStore) Teams(ctx context.Context) ([]Team, error) {
	ids, err := s.rdb.SMembers(ctx, teamIDsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("listing team ids: %w", err)
	}

	var teams []Team
	for _, id := range ids {
		t, err := s.Team(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *RedisStore) DeleteTeam(ctx context.Context, id string) error {
	t, err := s.Team(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, teamKey(id), nameKey(t.TeamName))
		pipe.SRem(ctx, teamIDsKey, id)
		return nil
	})
	return err
}

func (s *RedisStore) DeleteAllTeams(ctx context.Context) error {
	ids, err := s.rdb.SMembers(ctx, teamIDsKey).Result()
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			t, err := s.Team(ctx, id)
			if err == nil {
				pipe.Del(ctx, nameKey(t.TeamName))
			}
			pipe.Del(ctx, teamKey(id))
		}
		pipe.Del(ctx, teamIDsKey)
		return nil
	})
	return err
}

var _ Store = (*RedisStore)(nil)
