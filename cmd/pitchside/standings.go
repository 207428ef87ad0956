package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pitchside/pitchside/internal/store"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var standingsCmd = &cobra.Command{
	Use:   "standings [league]",
	Short: "Print a league table straight from the store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		league := strings.Join(args, " ")

		db, err := store.Open(ctx, cfg.Store.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := db.LeagueStandings(ctx, league)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Printf("No standings recorded for %q\n", league)
			return nil
		}

		fmt.Println(renderStandings(league, rows))
		return nil
	},
}

func renderStandings(league string, rows []store.StandingRow) string {
	teal := lipgloss.Color("36")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	headerStyle := lipgloss.NewStyle().
		Foreground(teal).
		Bold(true).
		Align(lipgloss.Center).
		Padding(0, 1)
	oddRowStyle := lipgloss.NewStyle().
		Foreground(gray).
		Padding(0, 1)
	evenRowStyle := lipgloss.NewStyle().
		Foreground(lightGray).
		Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(teal)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("Pos", "Team", "P", "W", "D", "L", "GF", "GA", "Pts")

	for _, row := range rows {
		t.Row(
			strconv.Itoa(row.Position),
			row.Team,
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Won),
			strconv.Itoa(row.Drawn),
			strconv.Itoa(row.Lost),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.Points),
		)
	}

	return questionStyle.Render(league) + "\n" + t.String()
}

func init() {
	rootCmd.AddCommand(standingsCmd)
}
