// Package builtin binds catalog entries to data-store lookups, one handler
// per query category.
package builtin

import (
	"fmt"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"
)

// Bind registers a handler for every catalog entry. Unknown categories were
// already rejected by catalog validation, so hitting one here is a bug.
func Bind(reg *function.Registry, cat *function.Catalog, db *store.DB) error {
	for _, spec := range cat.Functions {
		var handler function.Handler
		switch spec.Category {
		case function.CategoryTeamInsights:
			handler = teamInsightsHandler(db)
		case function.CategoryLeagueStandings:
			handler = leagueStandingsHandler(db)
		case function.CategoryMatchHistory:
			handler = matchHistoryHandler(db)
		case function.CategoryTeamSWOT:
			handler = teamSWOTHandler(db)
		default:
			return fmt.Errorf("no handler for category %q", spec.Category)
		}

		if err := reg.Register(spec, handler); err != nil {
			return err
		}
	}
	return nil
}

func stringArg(req *function.CallRequest, name string) string {
	value, _ := req.Args[name].(string)
	return value
}

func intArg(req *function.CallRequest, name string) int {
	// validated numbers arrive as float64
	value, _ := req.Args[name].(float64)
	return int(value)
}
