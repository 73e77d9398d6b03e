package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/entity"
)

var statsCols = []string{
	"id", "total_points", "level", "current_streak", "longest_streak", "last_activity_date",
	"tasks_completed", "habits_completed", "badges", "created_at",
}

const selectStatsColumns = `id, total_points, level, current_streak, longest_streak, last_activity_date, ` +
	`tasks_completed, habits_completed, badges, created_at`

func TestGetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatsRepo(mock)
	ensure := regexp.QuoteMeta(`INSERT INTO user_stats (id) VALUES ($1) ON CONFLICT (id) DO NOTHING;`)
	query := regexp.QuoteMeta(`SELECT ` + selectStatsColumns + ` FROM user_stats WHERE id = $1;`)
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("fresh row", func(t *testing.T) {
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(query).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 0, 1, 0, 0, (*string)(nil), 0, 0, []byte("[]"), createdAt))
		s, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, &entity.UserStats{ID: 1, Level: 1, Badges: []entity.Badge{}, CreatedAt: createdAt}, s)
	})
	t.Run("with badges", func(t *testing.T) {
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(query).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 150, 2, 3, 5, strPtr("2024-03-15"), 10, 4,
				[]byte(`[{"type":"streak","name":"On Fire","description":"3 day streak"}]`), createdAt))
		s, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, s.Level)
		assert.Equal(t, "2024-03-15", *s.LastActivityDate)
		assert.Equal(t, []entity.Badge{{Type: "streak", Name: "On Fire", Description: "3 day streak"}}, s.Badges)
	})
	t.Run("ensure fails", func(t *testing.T) {
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx)
		assert.EqualError(t, err, "creating stats row db error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatsRepo(mock)
	ensure := regexp.QuoteMeta(`INSERT INTO user_stats (id) VALUES ($1) ON CONFLICT (id) DO NOTHING;`)
	lock := regexp.QuoteMeta(`SELECT ` + selectStatsColumns + ` FROM user_stats WHERE id = $1 FOR UPDATE;`)
	update := regexp.QuoteMeta(`UPDATE user_stats SET total_points = $1, level = $2, current_streak = $3, ` +
		`longest_streak = $4, last_activity_date = $5, tasks_completed = $6, habits_completed = $7, badges = $8 ` +
		`WHERE id = $9 RETURNING ` + selectStatsColumns + `;`)
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	today := "2024-03-15"
	ctx := context.Background()

	t.Run("applies fn to the locked row", func(t *testing.T) {
		var seen entity.UserStats
		mock.ExpectBegin()
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(lock).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 95, 1, 0, 0, (*string)(nil), 0, 0, []byte("[]"), createdAt))
		mock.ExpectQuery(update).
			WithArgs(100, 2, 1, 1, &today, 0, 1, "[]", int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 100, 2, 1, 1, &today, 0, 1, []byte("[]"), createdAt))
		mock.ExpectCommit()
		s, err := repo.Update(ctx, func(current entity.UserStats) entity.UserStats {
			seen = current
			current.TotalPoints = 100
			current.Level = 2
			current.CurrentStreak = 1
			current.LongestStreak = 1
			current.LastActivityDate = &today
			current.HabitsCompleted = 1
			return current
		})
		assert.NoError(t, err)
		assert.Equal(t, 95, seen.TotalPoints)
		assert.Equal(t, 100, s.TotalPoints)
		assert.Equal(t, 2, s.Level)
	})
	t.Run("nil badges stored as empty list", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(lock).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 0, 1, 0, 0, (*string)(nil), 0, 0, []byte("[]"), createdAt))
		mock.ExpectQuery(update).
			WithArgs(0, 1, 0, 0, (*string)(nil), 0, 0, "[]", int64(1)).
			WillReturnRows(pgxmock.NewRows(statsCols).AddRow(int64(1), 0, 1, 0, 0, (*string)(nil), 0, 0, []byte("[]"), createdAt))
		mock.ExpectCommit()
		s, err := repo.Update(ctx, func(current entity.UserStats) entity.UserStats {
			current.Badges = nil
			return current
		})
		assert.NoError(t, err)
		assert.Equal(t, []entity.Badge{}, s.Badges)
	})
	t.Run("rollback when lock fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(ensure).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(lock).WithArgs(int64(1)).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Update(ctx, func(current entity.UserStats) entity.UserStats {
			t.Fatal("fn must not run without a row")
			return current
		})
		assert.EqualError(t, err, "locking stats db error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
