package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/taskflow/pkg/entity"
)

type TasksRepositoryI interface {
	// Lists tasks ordered by position, optionally filtered by status and category
	GetAll(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	// Applies only the non-nil fields of patch
	Update(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error)
	// Marks a pending task completed at completedAt. completed is false when the
	// task was already completed, then the stored task is returned unchanged
	Complete(ctx context.Context, id int64, completedAt time.Time) (task *entity.Task, completed bool, err error)
	// Deletes task with its subtasks, notes and time sessions
	Delete(ctx context.Context, id int64) error
	// Sets position i for taskIDs[i] in one transaction. Unknown ids are skipped
	Reorder(ctx context.Context, taskIDs []int64) error
}

type SubtasksRepositoryI interface {
	GetByTaskID(ctx context.Context, taskID int64) ([]*entity.Subtask, error)
	Create(ctx context.Context, subtask *entity.Subtask) (*entity.Subtask, error)
	Update(ctx context.Context, id int64, patch entity.SubtaskPatch) (*entity.Subtask, error)
	Delete(ctx context.Context, id int64) error
}

type NotesRepositoryI interface {
	// Newest first
	GetByTaskID(ctx context.Context, taskID int64) ([]*entity.TaskNote, error)
	Create(ctx context.Context, taskID int64, content string) (*entity.TaskNote, error)
	Delete(ctx context.Context, id int64) error
}

type HabitsRepositoryI interface {
	// Lists only active habits
	GetActive(ctx context.Context) ([]*entity.Habit, error)
	GetByID(ctx context.Context, id int64) (*entity.Habit, error)
	Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	Update(ctx context.Context, id int64, patch entity.HabitPatch) (*entity.Habit, error)
	// Deletes habit with its entries
	Delete(ctx context.Context, id int64) error
}

type HabitEntriesRepositoryI interface {
	// Newest date first. Empty date means every entry of the habit
	GetByHabitID(ctx context.Context, habitID int64, date string) ([]*entity.HabitEntry, error)
	// Returns ErrEntryNotFound when the habit has no entry on date
	GetByHabitAndDate(ctx context.Context, habitID int64, date string) (*entity.HabitEntry, error)
	Create(ctx context.Context, entry *entity.HabitEntry) (*entity.HabitEntry, error)
	Update(ctx context.Context, id int64, patch entity.HabitEntryPatch) (*entity.HabitEntry, error)
}

type TimeSessionsRepositoryI interface {
	// Newest first
	GetByTaskID(ctx context.Context, taskID int64) ([]*entity.TimeSession, error)
	Start(ctx context.Context, taskID int64, description *string, startTime time.Time) (*entity.TimeSession, error)
	// Closes the session at endTime and adds its duration to the task's time spent
	Stop(ctx context.Context, id int64, endTime time.Time) (*entity.TimeSession, error)
}

// StatsUpdateFunc computes the next stats snapshot from the current one.
type StatsUpdateFunc func(current entity.UserStats) entity.UserStats

type StatsRepositoryI interface {
	// Returns the stats row, creating it with defaults if absent
	Get(ctx context.Context) (*entity.UserStats, error)
	// Locks the stats row, applies fn to it and stores the result in one transaction
	Update(ctx context.Context, fn StatsUpdateFunc) (*entity.UserStats, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Extra query parameters, e.g. "sslmode=disable"
	Params string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.Params != "" {
		connStr += "?" + pgcfg.Params
	}
	return connStr
}
