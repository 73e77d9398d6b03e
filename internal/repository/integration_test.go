package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/internal/gamification"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/calendar"
	"github.com/limbo/taskflow/pkg/entity"
)

func TestRepositoriesIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tasks := repository.NewTasksRepo(pool)
	subtasks := repository.NewSubtasksRepo(pool)
	notes := repository.NewNotesRepo(pool)
	habits := repository.NewHabitsRepo(pool)
	entries := repository.NewHabitEntriesRepo(pool)
	sessions := repository.NewTimeSessionsRepo(pool)
	stats := repository.NewStatsRepo(pool)

	var first, second *entity.Task
	t.Run("tasks", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		first, err = tasks.Create(ctx, &entity.Task{
			Title: "first", Category: entity.CategoryHome, Priority: entity.PriorityLow,
			RecurrenceType: entity.RecurrenceNone, RecurrenceInterval: 1, CreatedAt: now,
		})
		require.NoError(t, err)
		second, err = tasks.Create(ctx, &entity.Task{
			Title: "second", Category: entity.CategoryWork, Priority: entity.PriorityHigh, Order: 1,
			RecurrenceType: entity.RecurrenceNone, RecurrenceInterval: 1, CreatedAt: now, ParentTaskID: &first.ID,
		})
		require.NoError(t, err)

		_, err = tasks.Create(ctx, &entity.Task{
			Title: "orphan", Category: entity.CategoryHome, Priority: entity.PriorityLow,
			RecurrenceType: entity.RecurrenceNone, CreatedAt: now, DependsOnTaskID: int64Ptr(9999),
		})
		_, ok := errorvalues.IsValidation(err)
		assert.True(t, ok)

		require.NoError(t, tasks.Reorder(ctx, []int64{second.ID, first.ID, 9999}))
		all, err := tasks.GetAll(ctx, entity.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)

		completedAt := now.Add(time.Minute)
		updated, err := tasks.Update(ctx, first.ID, entity.TaskPatch{Completed: boolPtr(true), CompletedAt: &completedAt})
		require.NoError(t, err)
		assert.True(t, updated.Completed)
		require.NotNil(t, updated.CompletedAt)

		pending, err := tasks.GetAll(ctx, entity.TaskFilter{Status: "pending"})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("subtasks and notes", func(t *testing.T) {
		st, err := subtasks.Create(ctx, &entity.Subtask{TaskID: first.ID, Title: "step"})
		require.NoError(t, err)
		_, err = subtasks.Update(ctx, st.ID, entity.SubtaskPatch{Completed: boolPtr(true)})
		require.NoError(t, err)
		_, err = notes.Create(ctx, first.ID, "note")
		require.NoError(t, err)
		_, err = notes.Create(ctx, 9999, "note")
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})

	t.Run("time sessions", func(t *testing.T) {
		start := time.Now().UTC().Truncate(time.Second)
		s, err := sessions.Start(ctx, second.ID, nil, start)
		require.NoError(t, err)
		stopped, err := sessions.Stop(ctx, s.ID, start.Add(25*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 25, stopped.Duration)
		_, err = sessions.Stop(ctx, s.ID, start.Add(30*time.Minute))
		assert.ErrorIs(t, err, errorvalues.ErrSessionStopped)

		task, err := tasks.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, task.TimeSpent)
	})

	t.Run("habits and entries", func(t *testing.T) {
		h, err := habits.Create(ctx, &entity.Habit{Title: "read", HabitType: "reading", TargetValue: 1, IsActive: true})
		require.NoError(t, err)
		_, err = entries.Create(ctx, &entity.HabitEntry{HabitID: h.ID, Date: "2024-03-15", Value: 1, Completed: true})
		require.NoError(t, err)
		_, err = entries.Create(ctx, &entity.HabitEntry{HabitID: h.ID, Date: "2024-03-15", Value: 1})
		assert.ErrorIs(t, err, errorvalues.ErrEntryExists)

		_, err = habits.Update(ctx, h.ID, entity.HabitPatch{IsActive: boolPtr(false)})
		require.NoError(t, err)
		active, err := habits.GetActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)

		require.NoError(t, habits.Delete(ctx, h.ID))
		list, err := entries.GetByHabitID(ctx, h.ID, "")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("stats", func(t *testing.T) {
		s, err := stats.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Level)
		assert.Empty(t, s.Badges)

		today, err := calendar.Parse("2024-03-15")
		require.NoError(t, err)
		s, err = stats.Update(ctx, func(current entity.UserStats) entity.UserStats {
			return gamification.CompleteHabit(current, today)
		})
		require.NoError(t, err)
		assert.Equal(t, 5, s.TotalPoints)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, "2024-03-15", *s.LastActivityDate)
	})

	t.Run("negative total rejected", func(t *testing.T) {
		before, err := stats.Get(ctx)
		require.NoError(t, err)
		_, err = stats.Update(ctx, func(current entity.UserStats) entity.UserStats {
			current.TotalPoints = -1
			return current
		})
		assert.Error(t, err)
		after, err := stats.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.TotalPoints, after.TotalPoints)
	})

	t.Run("concurrent habit completions", func(t *testing.T) {
		const workers = 20
		today, err := calendar.Parse("2024-03-16")
		require.NoError(t, err)
		before, err := stats.Get(ctx)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := stats.Update(ctx, func(current entity.UserStats) entity.UserStats {
					return gamification.CompleteHabit(current, today)
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		after, err := stats.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.TotalPoints+workers*gamification.HabitCompletionPoints, after.TotalPoints)
		assert.Equal(t, before.HabitsCompleted+workers, after.HabitsCompleted)
		assert.Equal(t, before.CurrentStreak+1, after.CurrentStreak)
	})

	t.Run("concurrent task completion transitions once", func(t *testing.T) {
		const workers = 10
		at := time.Now().UTC().Truncate(time.Microsecond)
		var (
			wg          sync.WaitGroup
			mu          sync.Mutex
			transitions int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, completed, err := tasks.Complete(ctx, second.ID, at)
				assert.NoError(t, err)
				if completed {
					mu.Lock()
					transitions++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, transitions)

		task, err := tasks.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.True(t, task.Completed)
		_, _, err = tasks.Complete(ctx, 9999, at)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})

	t.Run("cascade on task delete", func(t *testing.T) {
		require.NoError(t, tasks.Delete(ctx, first.ID))
		st, err := subtasks.GetByTaskID(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, st)
		child, err := tasks.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Nil(t, child.ParentTaskID)
		assert.ErrorIs(t, tasks.Delete(ctx, first.ID), errorvalues.ErrTaskNotFound)
	})
}
