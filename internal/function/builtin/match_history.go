package builtin

import (
	"context"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"
)

func matchHistoryHandler(db *store.DB) function.Handler {
	return func(ctx context.Context, req *function.CallRequest) (*function.Result, error) {
		team := stringArg(req, "team_name")
		limit := intArg(req, "limit")

		history, err := db.MatchHistory(ctx, team, limit)
		if err != nil {
			return nil, err
		}
		if len(history) == 0 {
			return function.NotFound("no matches recorded for team %q", team), nil
		}

		matches := make([]map[string]any, 0, len(history))
		for _, m := range history {
			matches = append(matches, map[string]any{
				"home_team":   m.HomeTeam,
				"away_team":   m.AwayTeam,
				"home_score":  m.HomeScore,
				"away_score":  m.AwayScore,
				"played_on":   m.PlayedOn,
				"competition": m.Competition,
			})
		}

		return &function.Result{
			Found: true,
			Fields: map[string]any{
				"team":    team,
				"matches": matches,
			},
		}, nil
	}
}
