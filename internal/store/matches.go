package store

import (
	"context"

	apperrors "github.com/pitchside/pitchside/internal/errors"
)

type Match struct {
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	PlayedOn    string `json:"played_on"`
	Competition string `json:"competition,omitempty"`
}

const defaultMatchLimit = 10

// MatchHistory returns a team's most recent matches, newest first.
// An empty slice means no matches are recorded for the team.
func (db *DB) MatchHistory(ctx context.Context, team string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	rows, err := db.QueryContext(ctx, `
		SELECT home_team, away_team, home_score, away_score, played_on, COALESCE(competition, '')
		FROM matches WHERE home_team = ? OR away_team = ?
		ORDER BY played_on DESC LIMIT ?`, team, team, limit)
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}
	defer rows.Close()

	var history []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore, &m.PlayedOn, &m.Competition); err != nil {
			return nil, apperrors.MapStoreError(err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	return history, nil
}

// InsertMatch records one result. Used by seeding and fixtures.
func (db *DB) InsertMatch(ctx context.Context, m Match) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO matches (home_team, away_team, home_score, away_score, played_on, competition)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore, m.PlayedOn, m.Competition)
	if err != nil {
		return apperrors.MapStoreError(err)
	}
	return nil
}
