package store

import (
	"context"

	apperrors "github.com/pitchside/pitchside/internal/errors"
)

type StandingRow struct {
	Position     int    `json:"position"`
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

// LeagueStandings returns the table for a league in position order.
// An empty slice means the league has no records.
func (db *DB) LeagueStandings(ctx context.Context, league string) ([]StandingRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT position, team, played, won, drawn, lost, goals_for, goals_against, points
		FROM standings WHERE league = ? ORDER BY position`, league)
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}
	defer rows.Close()

	var table []StandingRow
	for rows.Next() {
		var r StandingRow
		if err := rows.Scan(&r.Position, &r.Team, &r.Played, &r.Won, &r.Drawn, &r.Lost,
			&r.GoalsFor, &r.GoalsAgainst, &r.Points); err != nil {
			return nil, apperrors.MapStoreError(err)
		}
		table = append(table, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	return table, nil
}

// UpsertStanding writes one standings row. Used by seeding and fixtures.
func (db *DB) UpsertStanding(ctx context.Context, league string, row StandingRow) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO standings (league, position, team, played, won, drawn, lost, goals_for, goals_against, points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(league, position) DO UPDATE SET
			team=excluded.team, played=excluded.played, won=excluded.won, drawn=excluded.drawn,
			lost=excluded.lost, goals_for=excluded.goals_for, goals_against=excluded.goals_against,
			points=excluded.points`,
		league, row.Position, row.Team, row.Played, row.Won, row.Drawn, row.Lost,
		row.GoalsFor, row.GoalsAgainst, row.Points)
	if err != nil {
		return apperrors.MapStoreError(err)
	}
	return nil
}
