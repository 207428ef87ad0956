package builtin

import (
	"context"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"
)

func teamInsightsHandler(db *store.DB) function.Handler {
	return func(ctx context.Context, req *function.CallRequest) (*function.Result, error) {
		team := stringArg(req, "team_name")

		insights, err := db.TeamInsights(ctx, team)
		if err != nil {
			return nil, err
		}
		if insights == nil {
			return function.NotFound("no data for team %q", team), nil
		}

		return &function.Result{
			Found: true,
			Fields: map[string]any{
				"team":       insights.Team,
				"league":     insights.League,
				"strengths":  insights.Strengths,
				"weaknesses": insights.Weaknesses,
				"goal_stats": map[string]any{
					"scored":   insights.GoalsScored,
					"conceded": insights.GoalsConceded,
				},
				"record": map[string]any{
					"wins":   insights.Wins,
					"draws":  insights.Draws,
					"losses": insights.Losses,
				},
			},
		}, nil
	}
}
