package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/pitchside/pitchside/internal/errors"
)

type SWOT struct {
	Team          string   `json:"team"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// TeamSWOT returns the SWOT analysis for a team, or nil when none is recorded.
func (db *DB) TeamSWOT(ctx context.Context, team string) (*SWOT, error) {
	row := db.QueryRowContext(ctx, `
		SELECT team, strengths, weaknesses, opportunities, threats
		FROM swot WHERE team = ?`, team)

	var s SWOT
	var cols [4]string
	err := row.Scan(&s.Team, &cols[0], &cols[1], &cols[2], &cols[3])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	targets := []*[]string{&s.Strengths, &s.Weaknesses, &s.Opportunities, &s.Threats}
	labels := []string{"strengths", "weaknesses", "opportunities", "threats"}
	for i, raw := range cols {
		if err := json.Unmarshal([]byte(raw), targets[i]); err != nil {
			return nil, apperrors.DataAccess(fmt.Sprintf("malformed %s record for team %q", labels[i], team), err)
		}
	}

	return &s, nil
}

// UpsertSWOT writes a SWOT record. Used by seeding and fixtures.
func (db *DB) UpsertSWOT(ctx context.Context, s SWOT) error {
	encoded := make([]string, 4)
	for i, list := range [][]string{s.Strengths, s.Weaknesses, s.Opportunities, s.Threats} {
		b, err := json.Marshal(list)
		if err != nil {
			return apperrors.DataAccess("encode swot record", err)
		}
		encoded[i] = string(b)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO swot (team, strengths, weaknesses, opportunities, threats)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(team) DO UPDATE SET
			strengths=excluded.strengths, weaknesses=excluded.weaknesses,
			opportunities=excluded.opportunities, threats=excluded.threats`,
		s.Team, encoded[0], encoded[1], encoded[2], encoded[3])
	if err != nil {
		return apperrors.MapStoreError(err)
	}
	return nil
}
