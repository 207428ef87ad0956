package store

import (
	"context"
	"testing"

	apperrors "github.com/pitchside/pitchside/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSeeded(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Seed(context.Background()))
	return db
}

func TestTeamInsights(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	ins, err := db.TeamInsights(ctx, "Lansdowne")
	require.NoError(t, err)
	require.NotNil(t, ins)
	assert.Equal(t, 65, ins.GoalsScored)
	assert.Equal(t, 26, ins.GoalsConceded)
	assert.Contains(t, ins.Strengths, "Strong early-game offense")
	assert.Contains(t, ins.Weaknesses, "Weak on set pieces")
}

func TestTeamInsights_CaseInsensitive(t *testing.T) {
	db := openSeeded(t)

	ins, err := db.TeamInsights(context.Background(), "lansdowne")
	require.NoError(t, err)
	require.NotNil(t, ins)
	assert.Equal(t, "Lansdowne", ins.Team)
}

func TestTeamInsights_NotFoundIsNotAnError(t *testing.T) {
	db := openSeeded(t)

	ins, err := db.TeamInsights(context.Background(), "Nonexistent FC")
	require.NoError(t, err)
	assert.Nil(t, ins)
}

func TestTeamInsights_MalformedRecord(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `UPDATE teams SET strengths = 'not json' WHERE name = 'Lansdowne'`)
	require.NoError(t, err)

	_, err = db.TeamInsights(ctx, "Lansdowne")
	assert.ErrorIs(t, err, apperrors.ErrDataAccess)
}

func TestLeagueStandings_Ordered(t *testing.T) {
	db := openSeeded(t)

	table, err := db.LeagueStandings(context.Background(), "Metro Premier League")
	require.NoError(t, err)
	require.Len(t, table, 4)
	assert.Equal(t, "Lansdowne", table[0].Team)
	assert.Equal(t, 63, table[0].Points)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].Position, table[i-1].Position)
	}
}

func TestLeagueStandings_UnknownLeague(t *testing.T) {
	db := openSeeded(t)

	table, err := db.LeagueStandings(context.Background(), "Ghost League")
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestMatchHistory(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	history, err := db.MatchHistory(ctx, "Lansdowne", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// Newest first
	assert.Equal(t, "2026-08-22", history[0].PlayedOn)

	limited, err := db.MatchHistory(ctx, "Lansdowne", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestTeamSWOT(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	s, err := db.TeamSWOT(ctx, "Lansdowne")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotEmpty(t, s.Opportunities)
	assert.NotEmpty(t, s.Threats)

	missing, err := db.TeamSWOT(ctx, "Oakfield United")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeed_Idempotent(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx))

	history, err := db.MatchHistory(ctx, "Lansdowne", 0)
	require.NoError(t, err)
	assert.Len(t, history, 3, "re-seeding must not duplicate matches")
}
