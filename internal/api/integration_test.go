package api_test

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/limbo/taskflow/internal/api"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/entity"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("taskflow"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		t.Fatal(err)
	}
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, []byte) {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, reader))
	resp, err := io.ReadAll(rr.Result().Body)
	require.NoError(t, err)
	return rr.Result().StatusCode, resp
}

func TestHandlersIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tasksRepo := repository.NewTasksRepo(pool)
	stats := service.NewStatsService(repository.NewStatsRepo(pool), time.UTC)
	quotes := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"q":"Act.","a":"Someone"}]`)
	}))
	t.Cleanup(quotes.Close)

	server := api.New(&api.ServicesList{
		TasksService: service.NewTasksService(tasksRepo, repository.NewSubtasksRepo(pool),
			repository.NewNotesRepo(pool), stats),
		HabitsService: service.NewHabitsService(repository.NewHabitsRepo(pool),
			repository.NewHabitEntriesRepo(pool), stats),
		TimeTrackingService: service.NewTimeTrackingService(tasksRepo, repository.NewTimeSessionsRepo(pool)),
		StatsService:        stats,
		QuoteService:        service.NewQuoteService(quotes.URL, time.Second),
		DB:                  pool,
	})
	today := time.Now().UTC().Format(time.DateOnly)

	var task entity.Task
	t.Run("task lifecycle", func(t *testing.T) {
		code, body := do(t, server, http.MethodPost, "/api/tasks", `{"title":"Write report"}`)
		require.Equal(t, http.StatusCreated, code, string(body))
		require.NoError(t, sonic.Unmarshal(body, &task))
		assert.Equal(t, entity.CategoryPersonal, task.Category)
		assert.Equal(t, entity.PriorityMedium, task.Priority)

		code, body = do(t, server, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", task.ID), `{"completed":true}`)
		require.Equal(t, http.StatusOK, code, string(body))
		var done entity.Task
		require.NoError(t, sonic.Unmarshal(body, &done))
		assert.True(t, done.Completed)
		assert.NotNil(t, done.CompletedAt)

		code, body = do(t, server, http.MethodGet, "/api/tasks?status=completed", "")
		require.Equal(t, http.StatusOK, code)
		var listed []entity.Task
		require.NoError(t, sonic.Unmarshal(body, &listed))
		assert.Len(t, listed, 1)
	})

	t.Run("subtasks and notes", func(t *testing.T) {
		code, body := do(t, server, http.MethodPost, fmt.Sprintf("/api/tasks/%d/subtasks", task.ID), `{"title":"Outline","order":0}`)
		require.Equal(t, http.StatusCreated, code, string(body))
		code, _ = do(t, server, http.MethodPost, fmt.Sprintf("/api/tasks/%d/notes", task.ID), `{"content":"ask Bob"}`)
		require.Equal(t, http.StatusCreated, code)
		code, _ = do(t, server, http.MethodGet, "/api/tasks/999999/notes", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("time tracking", func(t *testing.T) {
		code, body := do(t, server, http.MethodPost, fmt.Sprintf("/api/tasks/%d/time-tracking/start", task.ID), "")
		require.Equal(t, http.StatusCreated, code, string(body))
		var session entity.TimeSession
		require.NoError(t, sonic.Unmarshal(body, &session))

		code, _ = do(t, server, http.MethodPatch, fmt.Sprintf("/api/time-sessions/%d/stop", session.ID), "")
		require.Equal(t, http.StatusOK, code)
		code, _ = do(t, server, http.MethodPatch, fmt.Sprintf("/api/time-sessions/%d/stop", session.ID), "")
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("habit entries feed the streak", func(t *testing.T) {
		code, body := do(t, server, http.MethodPost, "/api/habits", `{"title":"Drink water","habitType":"water"}`)
		require.Equal(t, http.StatusCreated, code, string(body))
		var habit entity.Habit
		require.NoError(t, sonic.Unmarshal(body, &habit))
		assert.Equal(t, 1, habit.TargetValue)
		assert.Equal(t, "times", habit.Unit)

		entry := fmt.Sprintf(`{"habitId":%d,"date":"%s","value":1,"completed":true}`, habit.ID, today)
		code, _ = do(t, server, http.MethodPost, "/api/habits/entries", entry)
		require.Equal(t, http.StatusCreated, code)
		code, _ = do(t, server, http.MethodPost, "/api/habits/entries", entry)
		require.Equal(t, http.StatusOK, code)

		code, body = do(t, server, http.MethodGet, "/api/stats", "")
		require.Equal(t, http.StatusOK, code)
		var got entity.UserStats
		require.NoError(t, sonic.Unmarshal(body, &got))
		// One task and two habit completions on the same day
		assert.Equal(t, 20, got.TotalPoints)
		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, 1, got.TasksCompleted)
		assert.Equal(t, 2, got.HabitsCompleted)
		require.NotNil(t, got.LastActivityDate)
		assert.Equal(t, today, *got.LastActivityDate)
	})

	t.Run("points and level", func(t *testing.T) {
		code, body := do(t, server, http.MethodPost, "/api/stats/points", `{"points":180}`)
		require.Equal(t, http.StatusOK, code, string(body))
		var got entity.UserStats
		require.NoError(t, sonic.Unmarshal(body, &got))
		assert.Equal(t, 200, got.TotalPoints)
		assert.Equal(t, 3, got.Level)
	})

	t.Run("quote and health", func(t *testing.T) {
		code, body := do(t, server, http.MethodGet, "/api/quote", "")
		require.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"text":"Act.","author":"Someone"}`, string(body))
		code, _ = do(t, server, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("deleting a task removes its children", func(t *testing.T) {
		code, _ := do(t, server, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), "")
		require.Equal(t, http.StatusNoContent, code)
		code, _ = do(t, server, http.MethodGet, fmt.Sprintf("/api/tasks/%d/subtasks", task.ID), "")
		assert.Equal(t, http.StatusNotFound, code)
	})
}
