package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"scroom/internal/config"
)

type contextKey string

const cfgKey contextKey = "cfg"

var rootCmd = &cobra.Command{
	Use:   "scroom",
	Short: "Scrum board service: issues, columns and teams",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		cmd.SetContext(context.WithValue(cmd.Context(), cfgKey, cfg))
		return nil
	},
}

func init() {
	rootCmd.SilenceUsage = true
}

func getCfg(cmd *cobra.Command) config.Config {
	cfg, _ := cmd.Context().Value(cfgKey).(config.Config)
	return cfg
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// Execute запускает корневую команду и возвращает код выхода.
func Execute() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}
