package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const subtaskColumns = `id, task_id, title, completed, position, created_at`

type SubtasksRepository struct {
	conn PgConnection
}

func NewSubtasksRepo(conn PgConnection) *SubtasksRepository {
	return &SubtasksRepository{
		conn: conn,
	}
}

func scanSubtask(row pgx.Row) (*entity.Subtask, error) {
	var st entity.Subtask
	if err := row.Scan(&st.ID, &st.TaskID, &st.Title, &st.Completed, &st.Order, &st.CreatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}

func (sr *SubtasksRepository) GetByTaskID(ctx context.Context, taskID int64) ([]*entity.Subtask, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE task_id = $1 ORDER BY position, id;`, taskID)
	if err != nil {
		return nil, errorvalues.Storage("listing subtasks", err)
	}
	defer rows.Close()
	subtasks := make([]*entity.Subtask, 0)
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			return nil, errorvalues.Storage("scanning subtask", err)
		}
		subtasks = append(subtasks, st)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating subtasks", err)
	}
	return subtasks, nil
}

func (sr *SubtasksRepository) Create(ctx context.Context, subtask *entity.Subtask) (*entity.Subtask, error) {
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO subtasks (task_id, title, completed, position) VALUES ($1, $2, $3, $4) RETURNING `+subtaskColumns+`;`,
		subtask.TaskID, subtask.Title, subtask.Completed, subtask.Order,
	)
	st, err := scanSubtask(row)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgFKViolation {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errorvalues.Storage("creating subtask", err)
	}
	return st, nil
}

func (sr *SubtasksRepository) Update(ctx context.Context, id int64, patch entity.SubtaskPatch) (*entity.Subtask, error) {
	b := newUpdate("subtasks")
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Completed != nil {
		b.set("completed", *patch.Completed)
	}
	if patch.Order != nil {
		b.set("position", *patch.Order)
	}
	var row pgx.Row
	if b.empty() {
		row = sr.conn.QueryRow(ctx, `SELECT `+subtaskColumns+` FROM subtasks WHERE id = $1;`, id)
	} else {
		query, args := b.build(id, subtaskColumns)
		row = sr.conn.QueryRow(ctx, query, args...)
	}
	st, err := scanSubtask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSubtaskNotFound
		}
		return nil, errorvalues.Storage("updating subtask", err)
	}
	return st, nil
}

func (sr *SubtasksRepository) Delete(ctx context.Context, id int64) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM subtasks WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting subtask", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSubtaskNotFound
	}
	return nil
}
