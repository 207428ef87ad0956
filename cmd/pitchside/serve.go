package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/ingress"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP answer service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := buildRuntime(ctx, cfg)
		if err != nil {
			return err
		}
		defer rt.Close()

		server, err := ingress.NewHTTPServer(cfg.Server, rt.orch, rt.db.Ping)
		if err != nil {
			return err
		}

		server.Start()
		<-ctx.Done()
		slog.Info("Shutting down")

		shutdownTimeout, err := config.DurationOrDefault(cfg.Server.ShutdownTimeout, config.DefaultServerShutdownTimeout)
		if err != nil {
			return err
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
