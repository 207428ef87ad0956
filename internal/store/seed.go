package store

import (
	"context"
)

// Seed loads the bundled Metro Premier League fixture so the service answers
// something useful out of the box. Idempotent: re-seeding overwrites in place.
func (db *DB) Seed(ctx context.Context) error {
	teams := []TeamInsights{
		{
			Team: "Lansdowne", League: "Metro Premier League",
			Strengths:  []string{"Strong early-game offense"},
			Weaknesses: []string{"Weak on set pieces"},
			GoalsScored: 65, GoalsConceded: 26,
			Wins: 19, Draws: 6, Losses: 3,
		},
		{
			Team: "Harbour City", League: "Metro Premier League",
			Strengths:  []string{"Disciplined back line", "Fast counter-attacks"},
			Weaknesses: []string{"Thin bench depth"},
			GoalsScored: 54, GoalsConceded: 31,
			Wins: 16, Draws: 7, Losses: 5,
		},
		{
			Team: "Riverton Rovers", League: "Metro Premier League",
			Strengths:  []string{"Dominant in aerial duels"},
			Weaknesses: []string{"Slow build-up play", "Poor away form"},
			GoalsScored: 47, GoalsConceded: 38,
			Wins: 13, Draws: 9, Losses: 6,
		},
		{
			Team: "Oakfield United", League: "Metro Premier League",
			Strengths:  []string{"Strong midfield press"},
			Weaknesses: []string{"Concedes late goals"},
			GoalsScored: 41, GoalsConceded: 44,
			Wins: 11, Draws: 8, Losses: 9,
		},
	}
	for _, t := range teams {
		if err := db.UpsertTeam(ctx, t); err != nil {
			return err
		}
	}

	standings := []StandingRow{
		{Position: 1, Team: "Lansdowne", Played: 28, Won: 19, Drawn: 6, Lost: 3, GoalsFor: 65, GoalsAgainst: 26, Points: 63},
		{Position: 2, Team: "Harbour City", Played: 28, Won: 16, Drawn: 7, Lost: 5, GoalsFor: 54, GoalsAgainst: 31, Points: 55},
		{Position: 3, Team: "Riverton Rovers", Played: 28, Won: 13, Drawn: 9, Lost: 6, GoalsFor: 47, GoalsAgainst: 38, Points: 48},
		{Position: 4, Team: "Oakfield United", Played: 28, Won: 11, Drawn: 8, Lost: 9, GoalsFor: 41, GoalsAgainst: 44, Points: 41},
	}
	for _, row := range standings {
		if err := db.UpsertStanding(ctx, "Metro Premier League", row); err != nil {
			return err
		}
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM matches WHERE competition = 'Metro Premier League'`); err != nil {
		return err
	}
	matches := []Match{
		{HomeTeam: "Lansdowne", AwayTeam: "Harbour City", HomeScore: 3, AwayScore: 1, PlayedOn: "2026-08-22", Competition: "Metro Premier League"},
		{HomeTeam: "Riverton Rovers", AwayTeam: "Lansdowne", HomeScore: 0, AwayScore: 2, PlayedOn: "2026-08-15", Competition: "Metro Premier League"},
		{HomeTeam: "Lansdowne", AwayTeam: "Oakfield United", HomeScore: 2, AwayScore: 2, PlayedOn: "2026-08-08", Competition: "Metro Premier League"},
		{HomeTeam: "Harbour City", AwayTeam: "Riverton Rovers", HomeScore: 1, AwayScore: 1, PlayedOn: "2026-08-08", Competition: "Metro Premier League"},
		{HomeTeam: "Oakfield United", AwayTeam: "Harbour City", HomeScore: 0, AwayScore: 3, PlayedOn: "2026-08-01", Competition: "Metro Premier League"},
	}
	for _, m := range matches {
		if err := db.InsertMatch(ctx, m); err != nil {
			return err
		}
	}

	swots := []SWOT{
		{
			Team:          "Lansdowne",
			Strengths:     []string{"Strong early-game offense", "Best goal difference in the league"},
			Weaknesses:    []string{"Weak on set pieces"},
			Opportunities: []string{"Favourable run-in against bottom-half sides"},
			Threats:       []string{"Harbour City's counter-attacking pace"},
		},
		{
			Team:          "Harbour City",
			Strengths:     []string{"Disciplined back line"},
			Weaknesses:    []string{"Thin bench depth"},
			Opportunities: []string{"Cup elimination frees the midweek schedule"},
			Threats:       []string{"Injury list growing in defense"},
		},
	}
	for _, s := range swots {
		if err := db.UpsertSWOT(ctx, s); err != nil {
			return err
		}
	}

	return nil
}
