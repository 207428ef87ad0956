package builtin

import (
	"context"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"
)

func teamSWOTHandler(db *store.DB) function.Handler {
	return func(ctx context.Context, req *function.CallRequest) (*function.Result, error) {
		team := stringArg(req, "team_name")

		analysis, err := db.TeamSWOT(ctx, team)
		if err != nil {
			return nil, err
		}
		if analysis == nil {
			return function.NotFound("no SWOT analysis for team %q", team), nil
		}

		return &function.Result{
			Found: true,
			Fields: map[string]any{
				"team":          analysis.Team,
				"strengths":     analysis.Strengths,
				"weaknesses":    analysis.Weaknesses,
				"opportunities": analysis.Opportunities,
				"threats":       analysis.Threats,
			},
		}, nil
	}
}
