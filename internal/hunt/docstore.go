package hunt

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DocStore is the durable backend: one JSON document per team in a SQLite
// table, with the normalized name in its own UNIQUE column for lookups.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(ctx context.Context, db *sql.DB) (*DocStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS teams (
			id   TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			data JSONB NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("creating teams table: %w", err)
	}
	return &DocStore{db: db}, nil
}

func (s *DocStore) CreateTeam(ctx context.Context, team Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, data) VALUES (?, ?, jsonb(?))`,
		team.TeamID, team.TeamName, string(data),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return ErrDuplicateName
	}
	return err
}

func (s *DocStore) Team(ctx context.Context, id string) (Team, error) {
	return s.getTeam(ctx, `SELECT json(data) FROM teams WHERE id = ?`, id)
}

func (s *DocStore) TeamByName(ctx context.Context, name string) (Team, error) {
	return s.getTeam(ctx, `SELECT json(data) FROM teams WHERE name = ?`, name)
}

func (s *DocStore) getTeam(ctx context.Context, query, arg string) (Team, error) {
	var data string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Team{}, ErrNotFound
	}
	if err != nil {
		return Team{}, err
	}
	var t Team
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return Team{}, err
	}
	return t, nil
}

// UpdateTeam loads the document, merges the update, and writes it back
// inside one transaction, so concurrent merges never clobber each other.
func (s *DocStore) UpdateTeam(ctx context.Context, id string, u TeamUpdate) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx,
		`SELECT json(data) FROM teams WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var t Team
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return err
	}
	u.apply(&t)

	merged, err := json.Marshal(t)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE teams SET data = jsonb(?) WHERE id = ?`,
		string(merged), id,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *DocStore) Teams(ctx context.Context) ([]Team, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT json(data) FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var t Team
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *DocStore) DeleteTeam(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DocStore) DeleteAllTeams(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM teams`)
	return err
}

var _ Store = (*DocStore)(nil)
