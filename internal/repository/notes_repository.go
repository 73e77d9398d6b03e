package repository

import (
	"context"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

type NotesRepository struct {
	conn PgConnection
}

func NewNotesRepo(conn PgConnection) *NotesRepository {
	return &NotesRepository{
		conn: conn,
	}
}

func (nr *NotesRepository) GetByTaskID(ctx context.Context, taskID int64) ([]*entity.TaskNote, error) {
	rows, err := nr.conn.Query(ctx,
		`SELECT id, task_id, content, created_at FROM task_notes WHERE task_id = $1 ORDER BY created_at DESC, id DESC;`,
		taskID,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing notes", err)
	}
	defer rows.Close()
	notes := make([]*entity.TaskNote, 0)
	for rows.Next() {
		var n entity.TaskNote
		if err = rows.Scan(&n.ID, &n.TaskID, &n.Content, &n.CreatedAt); err != nil {
			return nil, errorvalues.Storage("scanning note", err)
		}
		notes = append(notes, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating notes", err)
	}
	return notes, nil
}

func (nr *NotesRepository) Create(ctx context.Context, taskID int64, content string) (*entity.TaskNote, error) {
	var n entity.TaskNote
	row := nr.conn.QueryRow(ctx,
		`INSERT INTO task_notes (task_id, content) VALUES ($1, $2) RETURNING id, task_id, content, created_at;`,
		taskID, content,
	)
	if err := row.Scan(&n.ID, &n.TaskID, &n.Content, &n.CreatedAt); err != nil {
		if code, _ := pgErrorCode(err); code == pgFKViolation {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errorvalues.Storage("creating note", err)
	}
	return &n, nil
}

func (nr *NotesRepository) Delete(ctx context.Context, id int64) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM task_notes WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting note", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}
