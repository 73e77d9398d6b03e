package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const sessionColumns = `id, task_id, start_time, end_time, duration, description, created_at`

type TimeSessionsRepository struct {
	conn PgConnection
}

func NewTimeSessionsRepo(conn PgConnection) *TimeSessionsRepository {
	return &TimeSessionsRepository{
		conn: conn,
	}
}

func scanSession(row pgx.Row) (*entity.TimeSession, error) {
	var s entity.TimeSession
	err := row.Scan(&s.ID, &s.TaskID, &s.StartTime, &s.EndTime, &s.Duration, &s.Description, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SessionMinutes rounds the elapsed time between start and end to whole
// minutes. A negative interval counts as zero.
func SessionMinutes(start, end time.Time) int {
	minutes := int(math.Round(end.Sub(start).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

func (sr *TimeSessionsRepository) GetByTaskID(ctx context.Context, taskID int64) ([]*entity.TimeSession, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+sessionColumns+` FROM time_tracking_sessions WHERE task_id = $1 ORDER BY start_time DESC, id DESC;`,
		taskID)
	if err != nil {
		return nil, errorvalues.Storage("listing time sessions", err)
	}
	defer rows.Close()
	sessions := make([]*entity.TimeSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errorvalues.Storage("scanning time session", err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("iterating time sessions", err)
	}
	return sessions, nil
}

func (sr *TimeSessionsRepository) Start(ctx context.Context, taskID int64, description *string, startTime time.Time) (*entity.TimeSession, error) {
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO time_tracking_sessions (task_id, start_time, description) VALUES ($1, $2, $3) RETURNING `+
			sessionColumns+`;`,
		taskID, startTime, description,
	)
	s, err := scanSession(row)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgFKViolation {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errorvalues.Storage("starting time session", err)
	}
	return s, nil
}

func (sr *TimeSessionsRepository) Stop(ctx context.Context, id int64, endTime time.Time) (*entity.TimeSession, error) {
	var stopped *entity.TimeSession
	err := withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		current, err := scanSession(tx.QueryRow(ctx,
			`SELECT `+sessionColumns+` FROM time_tracking_sessions WHERE id = $1 FOR UPDATE;`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrSessionNotFound
			}
			return errorvalues.Storage("locking time session", err)
		}
		if current.EndTime != nil {
			return errorvalues.ErrSessionStopped
		}

		duration := SessionMinutes(current.StartTime, endTime)
		stopped, err = scanSession(tx.QueryRow(ctx,
			`UPDATE time_tracking_sessions SET end_time = $1, duration = $2 WHERE id = $3 RETURNING `+
				sessionColumns+`;`,
			endTime, duration, id,
		))
		if err != nil {
			return errorvalues.Storage("stopping time session", err)
		}
		_, err = tx.Exec(ctx, `UPDATE tasks SET time_spent = time_spent + $1 WHERE id = $2;`, duration, current.TaskID)
		if err != nil {
			return errorvalues.Storage("adding time spent", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stopped, nil
}
