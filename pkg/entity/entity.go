package entity

import (
	"time"
)

const (
	CategoryPersonal = "Personal"
	CategoryWork     = "Work"
	CategoryFitness  = "Fitness"
	CategoryHome     = "Home"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	RecurrenceNone = "none"
)

type Task struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description"`
	Category           string    `json:"category"`
	Priority           string    `json:"priority"`
	DueDate            *string   `json:"dueDate"`
	Completed          bool      `json:"completed"`
	Order              int       `json:"order"`
	CreatedAt          time.Time `json:"createdAt"`
	ParentTaskID       *int64    `json:"parentTaskId"`
	RecurrenceType     string    `json:"recurrenceType"`
	RecurrenceInterval int       `json:"recurrenceInterval"`
	RecurrenceEndDate  *string   `json:"recurrenceEndDate"`
	// Minutes, accumulated from stopped time sessions
	TimeSpent       int        `json:"timeSpent"`
	IsRecurring     bool       `json:"isRecurring"`
	DependsOnTaskID *int64     `json:"dependsOnTaskId"`
	CompletedAt     *time.Time `json:"completedAt"`
}

// TaskPatch carries only the fields a PATCH request provided. A non-nil
// pointer to an empty string clears a nullable text column, a pointer to a
// zero id clears a task reference.
type TaskPatch struct {
	Title              *string
	Description        *string
	Category           *string
	Priority           *string
	DueDate            *string
	Completed          *bool
	Order              *int
	ParentTaskID       *int64
	RecurrenceType     *string
	RecurrenceInterval *int
	RecurrenceEndDate  *string
	IsRecurring        *bool
	DependsOnTaskID    *int64
	CompletedAt        *time.Time
	ClearCompletedAt   bool
}

type TaskFilter struct {
	// "all", "pending" or "completed"
	Status   string
	Category string
}

type Subtask struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"taskId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubtaskPatch struct {
	Title     *string
	Completed *bool
	Order     *int
}

type TaskNote struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"taskId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Habit struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	HabitType   string    `json:"habitType"`
	TargetValue int       `json:"targetValue"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	IsActive    bool      `json:"isActive"`
}

type HabitPatch struct {
	Title       *string
	Description *string
	HabitType   *string
	TargetValue *int
	Unit        *string
	IsActive    *bool
}

// HabitEntry is the value recorded for one habit on one calendar day.
type HabitEntry struct {
	ID        int64     `json:"id"`
	HabitID   int64     `json:"habitId"`
	Date      string    `json:"date"`
	Value     int       `json:"value"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type HabitEntryPatch struct {
	Date      *string
	Value     *int
	Completed *bool
}

type TimeSession struct {
	ID        int64      `json:"id"`
	TaskID    int64      `json:"taskId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	// Minutes
	Duration    int       `json:"duration"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Badge struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserStats is the single gamification row of the deployment.
type UserStats struct {
	ID               int64     `json:"id"`
	TotalPoints      int       `json:"totalPoints"`
	Level            int       `json:"level"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	LastActivityDate *string   `json:"lastActivityDate"`
	TasksCompleted   int       `json:"tasksCompleted"`
	HabitsCompleted  int       `json:"habitsCompleted"`
	Badges           []Badge   `json:"badges"`
	CreatedAt        time.Time `json:"createdAt"`
}

type UserStatsPatch struct {
	TotalPoints      *int
	CurrentStreak    *int
	LongestStreak    *int
	LastActivityDate *string
	TasksCompleted   *int
	HabitsCompleted  *int
	Badges           []Badge
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
