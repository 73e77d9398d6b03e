package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/taskflow/internal/api"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/cleanup"
	"github.com/limbo/taskflow/pkg/config"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides API_ADDRESS")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	defer cleanup.CleanUp()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, err := repository.Connect(ctx, dbConfig(cfg))
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}

	tasksRepo := repository.NewTasksRepo(pool)
	statsService := service.NewStatsService(repository.NewStatsRepo(pool), cfg.Location())
	serv := api.New(&api.ServicesList{
		TasksService: service.NewTasksService(tasksRepo, repository.NewSubtasksRepo(pool),
			repository.NewNotesRepo(pool), statsService),
		HabitsService: service.NewHabitsService(repository.NewHabitsRepo(pool),
			repository.NewHabitEntriesRepo(pool), statsService),
		TimeTrackingService: service.NewTimeTrackingService(tasksRepo, repository.NewTimeSessionsRepo(pool)),
		StatsService:        statsService,
		QuoteService:        service.NewQuoteService(cfg.GetString("QUOTE_API_URL"), cfg.GetDuration("QUOTE_TIMEOUT")),
		DB:                  pool,
		AllowedOrigins:      cfg.GetList("CORS_ALLOWED_ORIGINS"),
	})

	addr := serveAddr
	if addr == "" {
		addr = cfg.GetString("API_ADDRESS")
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(addr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		slog.Info("shutting down", slog.String("signal", s.String()))
		return nil
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
