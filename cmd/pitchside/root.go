package main

import (
	"fmt"
	"os"

	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pitchside",
	Short: "Pitchside sports analytics service",
	Long:  `Pitchside answers natural-language sports analytics questions by letting a language model call structured data-retrieval functions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Server.LogLevel)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pitchside/config.yaml)")
	rootCmd.PersistentFlags().String("server.log_level", config.DefaultServerLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("server.port", config.DefaultServerPort, "server port")
	rootCmd.PersistentFlags().String("models.default", config.DefaultModelDefault, "default model name")
	rootCmd.PersistentFlags().String("store.path", "", "sqlite store path")
	rootCmd.PersistentFlags().Bool("store.seed", config.DefaultStoreSeed, "seed the bundled league fixture on startup")
	rootCmd.PersistentFlags().String("catalog.path", "", "function catalog YAML (default is the built-in catalog)")
}
