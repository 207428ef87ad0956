package builtin

import (
	"context"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"
)

func leagueStandingsHandler(db *store.DB) function.Handler {
	return func(ctx context.Context, req *function.CallRequest) (*function.Result, error) {
		league := stringArg(req, "league_name")

		table, err := db.LeagueStandings(ctx, league)
		if err != nil {
			return nil, err
		}
		if len(table) == 0 {
			return function.NotFound("no standings recorded for league %q", league), nil
		}

		rows := make([]map[string]any, 0, len(table))
		for _, r := range table {
			rows = append(rows, map[string]any{
				"position":      r.Position,
				"team":          r.Team,
				"played":        r.Played,
				"won":           r.Won,
				"drawn":         r.Drawn,
				"lost":          r.Lost,
				"goals_for":     r.GoalsFor,
				"goals_against": r.GoalsAgainst,
				"points":        r.Points,
			})
		}

		return &function.Result{
			Found: true,
			Fields: map[string]any{
				"league": league,
				"table":  rows,
			},
		}, nil
	}
}
