package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer one question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := buildRuntime(ctx, cfg)
		if err != nil {
			return err
		}
		defer rt.Close()

		query := strings.Join(args, " ")
		outcome, err := rt.orch.Answer(ctx, query)
		if err != nil {
			if outcome != nil {
				fmt.Println(renderFailure(outcome.Answer, outcome.ErrKind))
			}
			return err
		}

		fmt.Println(renderAnswer(query, outcome.Answer, outcome.Function))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
