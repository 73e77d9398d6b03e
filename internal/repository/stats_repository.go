package repository

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/entity"
)

const (
	statsColumns = `id, total_points, level, current_streak, longest_streak, last_activity_date, ` +
		`tasks_completed, habits_completed, badges, created_at`

	// The deployment keeps exactly one stats row.
	statsRowID int64 = 1
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(conn PgConnection) *StatsRepository {
	return &StatsRepository{
		conn: conn,
	}
}

func scanStats(row pgx.Row) (*entity.UserStats, error) {
	var (
		s      entity.UserStats
		badges []byte
	)
	err := row.Scan(&s.ID, &s.TotalPoints, &s.Level, &s.CurrentStreak, &s.LongestStreak, &s.LastActivityDate,
		&s.TasksCompleted, &s.HabitsCompleted, &badges, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Badges = make([]entity.Badge, 0)
	if len(badges) > 0 {
		if err = sonic.Unmarshal(badges, &s.Badges); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func ensureStats(ctx context.Context, q querier) error {
	_, err := q.Exec(ctx, `INSERT INTO user_stats (id) VALUES ($1) ON CONFLICT (id) DO NOTHING;`, statsRowID)
	if err != nil {
		return errorvalues.Storage("creating stats row", err)
	}
	return nil
}

func (sr *StatsRepository) Get(ctx context.Context) (*entity.UserStats, error) {
	if err := ensureStats(ctx, sr.conn); err != nil {
		return nil, err
	}
	s, err := scanStats(sr.conn.QueryRow(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE id = $1;`, statsRowID))
	if err != nil {
		return nil, errorvalues.Storage("getting stats", err)
	}
	return s, nil
}

func (sr *StatsRepository) Update(ctx context.Context, fn StatsUpdateFunc) (*entity.UserStats, error) {
	var updated *entity.UserStats
	err := withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		if err := ensureStats(ctx, tx); err != nil {
			return err
		}
		current, err := scanStats(tx.QueryRow(ctx,
			`SELECT `+statsColumns+` FROM user_stats WHERE id = $1 FOR UPDATE;`, statsRowID))
		if err != nil {
			return errorvalues.Storage("locking stats", err)
		}

		next := fn(*current)
		if next.Badges == nil {
			next.Badges = make([]entity.Badge, 0)
		}
		badges, err := sonic.MarshalString(next.Badges)
		if err != nil {
			return errorvalues.Storage("encoding badges", err)
		}
		updated, err = scanStats(tx.QueryRow(ctx,
			`UPDATE user_stats SET total_points = $1, level = $2, current_streak = $3, longest_streak = $4, `+
				`last_activity_date = $5, tasks_completed = $6, habits_completed = $7, badges = $8 `+
				`WHERE id = $9 RETURNING `+statsColumns+`;`,
			next.TotalPoints, next.Level, next.CurrentStreak, next.LongestStreak, next.LastActivityDate,
			next.TasksCompleted, next.HabitsCompleted, badges, statsRowID,
		))
		if err != nil {
			return errorvalues.Storage("storing stats", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
