package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/pitchside/pitchside/internal/errors"
)

type TeamInsights struct {
	Team          string   `json:"team"`
	League        string   `json:"league"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	GoalsScored   int      `json:"goals_scored"`
	GoalsConceded int      `json:"goals_conceded"`
	Wins          int      `json:"wins"`
	Draws         int      `json:"draws"`
	Losses        int      `json:"losses"`
}

// TeamInsights returns the analytics record for a team, or nil when the team
// has no record. A missing team is a normal outcome, not an error.
func (db *DB) TeamInsights(ctx context.Context, team string) (*TeamInsights, error) {
	row := db.QueryRowContext(ctx, `
		SELECT name, league, strengths, weaknesses, goals_scored, goals_conceded, wins, draws, losses
		FROM teams WHERE name = ?`, team)

	var ins TeamInsights
	var strengthsJSON, weaknessesJSON string
	err := row.Scan(&ins.Team, &ins.League, &strengthsJSON, &weaknessesJSON,
		&ins.GoalsScored, &ins.GoalsConceded, &ins.Wins, &ins.Draws, &ins.Losses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	if err := json.Unmarshal([]byte(strengthsJSON), &ins.Strengths); err != nil {
		return nil, apperrors.DataAccess(fmt.Sprintf("malformed strengths record for team %q", team), err)
	}
	if err := json.Unmarshal([]byte(weaknessesJSON), &ins.Weaknesses); err != nil {
		return nil, apperrors.DataAccess(fmt.Sprintf("malformed weaknesses record for team %q", team), err)
	}

	return &ins, nil
}

// UpsertTeam writes a team record. Used by seeding and fixtures.
func (db *DB) UpsertTeam(ctx context.Context, ins TeamInsights) error {
	strengthsJSON, err := json.Marshal(ins.Strengths)
	if err != nil {
		return apperrors.DataAccess("encode strengths", err)
	}
	weaknessesJSON, err := json.Marshal(ins.Weaknesses)
	if err != nil {
		return apperrors.DataAccess("encode weaknesses", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO teams (name, league, strengths, weaknesses, goals_scored, goals_conceded, wins, draws, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			league=excluded.league, strengths=excluded.strengths, weaknesses=excluded.weaknesses,
			goals_scored=excluded.goals_scored, goals_conceded=excluded.goals_conceded,
			wins=excluded.wins, draws=excluded.draws, losses=excluded.losses`,
		ins.Team, ins.League, string(strengthsJSON), string(weaknessesJSON),
		ins.GoalsScored, ins.GoalsConceded, ins.Wins, ins.Draws, ins.Losses)
	if err != nil {
		return apperrors.MapStoreError(err)
	}
	return nil
}
