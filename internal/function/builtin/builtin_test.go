package builtin

import (
	"context"
	"testing"

	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundRegistry(t *testing.T) *function.Registry {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Seed(ctx))

	reg := function.NewRegistry()
	require.NoError(t, Bind(reg, function.DefaultCatalog(), db))
	return reg
}

func TestBind_RegistersWholeCatalog(t *testing.T) {
	reg := boundRegistry(t)
	assert.Equal(t, []string{
		"get_team_insights",
		"get_league_standings",
		"get_match_history",
		"get_team_swot",
	}, reg.Names())
}

func TestTeamInsightsHandler(t *testing.T) {
	reg := boundRegistry(t)

	result, err := reg.Dispatch(context.Background(), &function.CallRequest{
		Name: "get_team_insights",
		Args: map[string]any{"team_name": "Lansdowne"},
	})
	require.NoError(t, err)
	require.True(t, result.Found)

	goalStats, ok := result.Fields["goal_stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 65, goalStats["scored"])
	assert.Equal(t, 26, goalStats["conceded"])
	assert.Contains(t, result.Fields["weaknesses"], "Weak on set pieces")
}

func TestTeamInsightsHandler_NotFoundSentinel(t *testing.T) {
	reg := boundRegistry(t)

	result, err := reg.Dispatch(context.Background(), &function.CallRequest{
		Name: "get_team_insights",
		Args: map[string]any{"team_name": "Nonexistent FC"},
	})
	require.NoError(t, err, "a missing team is a normal outcome")
	assert.False(t, result.Found)
	assert.Contains(t, result.Message, "Nonexistent FC")
}

func TestLeagueStandingsHandler(t *testing.T) {
	reg := boundRegistry(t)

	result, err := reg.Dispatch(context.Background(), &function.CallRequest{
		Name: "get_league_standings",
		Args: map[string]any{"league_name": "Metro Premier League"},
	})
	require.NoError(t, err)
	require.True(t, result.Found)

	table, ok := result.Fields["table"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, table, 4)
	assert.Equal(t, "Lansdowne", table[0]["team"])
}

func TestMatchHistoryHandler_Limit(t *testing.T) {
	reg := boundRegistry(t)

	result, err := reg.Dispatch(context.Background(), &function.CallRequest{
		Name: "get_match_history",
		Args: map[string]any{"team_name": "Lansdowne", "limit": float64(2)},
	})
	require.NoError(t, err)
	require.True(t, result.Found)

	matches, ok := result.Fields["matches"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, matches, 2)
}

func TestTeamSWOTHandler(t *testing.T) {
	reg := boundRegistry(t)

	result, err := reg.Dispatch(context.Background(), &function.CallRequest{
		Name: "get_team_swot",
		Args: map[string]any{"team_name": "Harbour City"},
	})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.NotEmpty(t, result.Fields["opportunities"])
}
