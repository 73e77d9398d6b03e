package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/cleanup"
)

// Pinger reports whether the storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mx                  *chi.Mux
	tasksService        service.TasksServiceI
	habitsService       service.HabitsServiceI
	timeTrackingService service.TimeTrackingServiceI
	statsService        service.StatsServiceI
	quoteService        service.QuoteServiceI
	db                  Pinger
	allowedOrigins      []string
}

type ServicesList struct {
	TasksService        service.TasksServiceI
	HabitsService       service.HabitsServiceI
	TimeTrackingService service.TimeTrackingServiceI
	StatsService        service.StatsServiceI
	QuoteService        service.QuoteServiceI
	DB                  Pinger
	// Defaults to every origin
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	origins := servicesOptions.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s := &Server{
		mx:                  chi.NewMux(),
		tasksService:        servicesOptions.TasksService,
		habitsService:       servicesOptions.HabitsService,
		timeTrackingService: servicesOptions.TimeTrackingService,
		statsService:        servicesOptions.StatsService,
		quoteService:        servicesOptions.QuoteService,
		db:                  servicesOptions.DB,
		allowedOrigins:      origins,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)

	s.mx.Get("/healthz", s.Health)

	s.mx.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.GetTasks)
			r.Post("/", s.CreateTask)
			r.Post("/reorder", s.ReorderTasks)
			r.Get("/{id}", s.GetTask)
			r.Patch("/{id}", s.UpdateTask)
			r.Delete("/{id}", s.DeleteTask)

			r.Get("/{id}/subtasks", s.GetSubtasks)
			r.Post("/{id}/subtasks", s.CreateSubtask)
			r.Get("/{id}/notes", s.GetNotes)
			r.Post("/{id}/notes", s.CreateNote)
			r.Get("/{id}/time-sessions", s.GetTimeSessions)
			r.Post("/{id}/time-tracking/start", s.StartTimeTracking)
		})
		r.Patch("/subtasks/{id}", s.UpdateSubtask)
		r.Delete("/subtasks/{id}", s.DeleteSubtask)
		r.Delete("/notes/{id}", s.DeleteNote)
		r.Patch("/time-sessions/{id}/stop", s.StopTimeTracking)

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.GetHabits)
			r.Post("/", s.CreateHabit)
			r.Post("/entries", s.RecordHabitEntry)
			r.Patch("/entries/{id}", s.UpdateHabitEntry)
			r.Get("/{id}", s.GetHabit)
			r.Patch("/{id}", s.UpdateHabit)
			r.Delete("/{id}", s.DeleteHabit)
			r.Get("/{id}/entries", s.GetHabitEntries)
		})

		r.Get("/stats", s.GetStats)
		r.Patch("/stats", s.PatchStats)
		r.Post("/stats/points", s.AddPoints)

		r.Get("/quote", s.GetQuote)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until the listener fails or the server is shut down by the
// cleanup job it registers.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("http server started", slog.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
