package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"

	"github.com/limbo/taskflow/pkg/entity"
)

type CreateTaskRequest struct {
	Title              string  `json:"title" validate:"required,notblank"`
	Description        *string `json:"description"`
	Category           string  `json:"category" validate:"omitempty,oneof=Personal Work Fitness Home"`
	Priority           string  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate            *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Completed          bool    `json:"completed"`
	Order              int     `json:"order" validate:"gte=0"`
	ParentTaskID       *int64  `json:"parentTaskId" validate:"omitempty,gt=0"`
	RecurrenceType     string  `json:"recurrenceType" validate:"omitempty,oneof=none daily weekly monthly custom"`
	RecurrenceInterval *int    `json:"recurrenceInterval" validate:"omitempty,gte=1"`
	RecurrenceEndDate  *string `json:"recurrenceEndDate" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring        bool    `json:"isRecurring"`
	DependsOnTaskID    *int64  `json:"dependsOnTaskId" validate:"omitempty,gt=0"`
}

// UpdateTaskRequest is a partial update. Absent or null fields stay as they
// are; an empty string clears a nullable text field and 0 clears a task
// reference.
type UpdateTaskRequest struct {
	Title              *string `json:"title" validate:"omitempty,notblank"`
	Description        *string `json:"description"`
	Category           *string `json:"category" validate:"omitempty,oneof=Personal Work Fitness Home"`
	Priority           *string `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate            *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Completed          *bool   `json:"completed"`
	Order              *int    `json:"order" validate:"omitempty,gte=0"`
	ParentTaskID       *int64  `json:"parentTaskId" validate:"omitempty,gte=0"`
	RecurrenceType     *string `json:"recurrenceType" validate:"omitempty,oneof=none daily weekly monthly custom"`
	RecurrenceInterval *int    `json:"recurrenceInterval" validate:"omitempty,gte=1"`
	RecurrenceEndDate  *string `json:"recurrenceEndDate" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring        *bool   `json:"isRecurring"`
	DependsOnTaskID    *int64  `json:"dependsOnTaskId" validate:"omitempty,gte=0"`
	CompletedAt        *string `json:"completedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type ReorderTasksRequest struct {
	TaskIDs []int64 `json:"taskIds" validate:"required,dive,gt=0"`
}

type CreateSubtaskRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Completed bool   `json:"completed"`
	Order     *int   `json:"order" validate:"required,gte=0"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title" validate:"omitempty,notblank"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order" validate:"omitempty,gte=0"`
}

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

type CreateHabitRequest struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Description *string `json:"description"`
	HabitType   string  `json:"habitType" validate:"required,oneof=workout water reading meditation custom"`
	TargetValue *int    `json:"targetValue" validate:"omitempty,gte=1"`
	Unit        *string `json:"unit"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateHabitRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank"`
	Description *string `json:"description"`
	HabitType   *string `json:"habitType" validate:"omitempty,oneof=workout water reading meditation custom"`
	TargetValue *int    `json:"targetValue" validate:"omitempty,gte=1"`
	Unit        *string `json:"unit"`
	IsActive    *bool   `json:"isActive"`
}

type RecordEntryRequest struct {
	HabitID   int64  `json:"habitId" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Value     *int   `json:"value" validate:"omitempty,gte=0"`
	Completed *bool  `json:"completed"`
}

type UpdateEntryRequest struct {
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Value     *int    `json:"value" validate:"omitempty,gte=0"`
	Completed *bool   `json:"completed"`
}

type StartSessionRequest struct {
	Description *string `json:"description"`
}

// PatchStatsRequest edits stats by hand. A level in the body is accepted and
// ignored, it is always derived from totalPoints.
type PatchStatsRequest struct {
	TotalPoints      *int           `json:"totalPoints" validate:"omitempty,gte=0"`
	Level            *int           `json:"level"`
	CurrentStreak    *int           `json:"currentStreak" validate:"omitempty,gte=0"`
	LongestStreak    *int           `json:"longestStreak" validate:"omitempty,gte=0"`
	LastActivityDate *string        `json:"lastActivityDate" validate:"omitempty,datetime=2006-01-02"`
	TasksCompleted   *int           `json:"tasksCompleted" validate:"omitempty,gte=0"`
	HabitsCompleted  *int           `json:"habitsCompleted" validate:"omitempty,gte=0"`
	Badges           []entity.Badge `json:"badges"`
}

type AddPointsRequest struct {
	Points *int `json:"points" validate:"required,gt=0"`
}

type TasksServiceI interface {
	GetTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
	GetTask(ctx context.Context, id int64) (*entity.Task, error)
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error)
	// Completing a pending task stamps completedAt and awards task points
	UpdateTask(ctx context.Context, id int64, req *UpdateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, req *ReorderTasksRequest) error

	GetSubtasks(ctx context.Context, taskID int64) ([]*entity.Subtask, error)
	CreateSubtask(ctx context.Context, taskID int64, req *CreateSubtaskRequest) (*entity.Subtask, error)
	UpdateSubtask(ctx context.Context, id int64, req *UpdateSubtaskRequest) (*entity.Subtask, error)
	DeleteSubtask(ctx context.Context, id int64) error

	GetNotes(ctx context.Context, taskID int64) ([]*entity.TaskNote, error)
	CreateNote(ctx context.Context, taskID int64, req *CreateNoteRequest) (*entity.TaskNote, error)
	DeleteNote(ctx context.Context, id int64) error
}

type HabitsServiceI interface {
	GetHabits(ctx context.Context) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, id int64) (*entity.Habit, error)
	CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, id int64, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error

	GetEntries(ctx context.Context, habitID int64, date string) ([]*entity.HabitEntry, error)
	// Creates the entry for (habitId, date) or updates the existing one. created
	// reports which of the two happened
	RecordEntry(ctx context.Context, req *RecordEntryRequest) (entry *entity.HabitEntry, created bool, err error)
	UpdateEntry(ctx context.Context, id int64, req *UpdateEntryRequest) (*entity.HabitEntry, error)
}

type TimeTrackingServiceI interface {
	GetSessions(ctx context.Context, taskID int64) ([]*entity.TimeSession, error)
	StartSession(ctx context.Context, taskID int64, req *StartSessionRequest) (*entity.TimeSession, error)
	StopSession(ctx context.Context, id int64) (*entity.TimeSession, error)
}

type StatsServiceI interface {
	GetStats(ctx context.Context) (*entity.UserStats, error)
	PatchStats(ctx context.Context, req *PatchStatsRequest) (*entity.UserStats, error)
	AddPoints(ctx context.Context, req *AddPointsRequest) (*entity.UserStats, error)
	// Awards habit points and advances the streak for today
	OnHabitCompleted(ctx context.Context, habitID int64, date string) (*entity.UserStats, error)
	OnTaskCompleted(ctx context.Context, taskID int64) (*entity.UserStats, error)
}

type QuoteServiceI interface {
	// Never fails, upstream problems yield a fallback quote
	GetQuote(ctx context.Context) entity.Quote
}
