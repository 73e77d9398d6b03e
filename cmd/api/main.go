// @title TaskFlow API
// @description API for the TaskFlow productivity app: tasks, habits, time tracking and gamified stats
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/config"
)

func init() {
	service.InitValidator()
}

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(config.New())
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetString("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func dbConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		Params:   cfg.GetString("POSTGRES_PARAMS"),
	}
}
