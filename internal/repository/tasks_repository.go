package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const taskColumns = `id, title, description, category, priority, due_date, completed, position, created_at, ` +
	`parent_task_id, recurrence_type, recurrence_interval, recurrence_end_date, time_spent, is_recurring, ` +
	`depends_on_task_id, completed_at`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.DueDate, &t.Completed, &t.Order, &t.CreatedAt,
		&t.ParentTaskID, &t.RecurrenceType, &t.RecurrenceInterval, &t.RecurrenceEndDate, &t.TimeSpent, &t.IsRecurring,
		&t.DependsOnTaskID, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mapTaskRefError turns a foreign key violation on a task reference into a
// validation error naming the offending field.
func mapTaskRefError(op string, err error) error {
	code, constraint := pgErrorCode(err)
	if code == pgFKViolation {
		switch {
		case strings.Contains(constraint, "parent_task_id"):
			return errorvalues.NewValidationError("parentTaskId", "exists")
		case strings.Contains(constraint, "depends_on_task_id"):
			return errorvalues.NewValidationError("dependsOnTaskId", "exists")
		}
	}
	return errorvalues.Storage(op, err)
}

func (tr *TasksRepository) GetAll(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	var (
		conds []string
		args  []any
	)
	switch filter.Status {
	case "pending":
		conds = append(conds, "completed = FALSE")
	case "completed":
		conds = append(conds, "completed = TRUE")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY position, id;`

	rows, err := tr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errorvalues.Storage("listing tasks", err)
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, errorvalues.Storage("scanning task", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating tasks", err)
	}
	return tasks, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1;`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errorvalues.Storage("getting task by id", err)
	}
	return t, nil
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (title, description, category, priority, due_date, completed, position, created_at, `+
			`parent_task_id, recurrence_type, recurrence_interval, recurrence_end_date, is_recurring, `+
			`depends_on_task_id, completed_at) `+
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING `+taskColumns+`;`,
		task.Title, task.Description, task.Category, task.Priority, task.DueDate, task.Completed, task.Order,
		task.CreatedAt, task.ParentTaskID, task.RecurrenceType, task.RecurrenceInterval, task.RecurrenceEndDate,
		task.IsRecurring, task.DependsOnTaskID, task.CompletedAt,
	)
	created, err := scanTask(row)
	if err != nil {
		return nil, mapTaskRefError("creating task", err)
	}
	return created, nil
}

func (tr *TasksRepository) Update(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	b := newUpdate("tasks")
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	b.setText("description", patch.Description)
	if patch.Category != nil {
		b.set("category", *patch.Category)
	}
	if patch.Priority != nil {
		b.set("priority", *patch.Priority)
	}
	b.setText("due_date", patch.DueDate)
	if patch.Completed != nil {
		b.set("completed", *patch.Completed)
	}
	if patch.Order != nil {
		b.set("position", *patch.Order)
	}
	b.setRef("parent_task_id", patch.ParentTaskID)
	if patch.RecurrenceType != nil {
		b.set("recurrence_type", *patch.RecurrenceType)
	}
	if patch.RecurrenceInterval != nil {
		b.set("recurrence_interval", *patch.RecurrenceInterval)
	}
	b.setText("recurrence_end_date", patch.RecurrenceEndDate)
	if patch.IsRecurring != nil {
		b.set("is_recurring", *patch.IsRecurring)
	}
	b.setRef("depends_on_task_id", patch.DependsOnTaskID)
	switch {
	case patch.CompletedAt != nil:
		b.set("completed_at", *patch.CompletedAt)
	case patch.ClearCompletedAt:
		b.setExpr("completed_at", "NULL")
	}
	if b.empty() {
		return tr.GetByID(ctx, id)
	}

	query, args := b.build(id, taskColumns)
	t, err := scanTask(tr.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, mapTaskRefError("updating task", err)
	}
	return t, nil
}

func (tr *TasksRepository) Complete(ctx context.Context, id int64, completedAt time.Time) (*entity.Task, bool, error) {
	row := tr.conn.QueryRow(ctx,
		`UPDATE tasks SET completed = TRUE, completed_at = $1 WHERE id = $2 AND completed = FALSE RETURNING `+taskColumns+`;`,
		completedAt, id,
	)
	t, err := scanTask(row)
	if err == nil {
		return t, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errorvalues.Storage("completing task", err)
	}
	// Either unknown or completed by someone else
	t, err = tr.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id int64) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting task", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Reorder(ctx context.Context, taskIDs []int64) error {
	return withTx(ctx, tr.conn, func(tx pgx.Tx) error {
		for i, id := range taskIDs {
			if _, err := tx.Exec(ctx, `UPDATE tasks SET position = $1 WHERE id = $2;`, i, id); err != nil {
				return errorvalues.Storage("reordering tasks", err)
			}
		}
		return nil
	})
}
