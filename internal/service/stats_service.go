package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/taskflow/internal/gamification"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/calendar"
	"github.com/limbo/taskflow/pkg/entity"
)

type StatsService struct {
	repo repository.StatsRepositoryI
	loc  *time.Location
	now  func() time.Time
}

// NewStatsService computes "today" in loc. A nil loc means UTC.
func NewStatsService(statsRepo repository.StatsRepositoryI, loc *time.Location) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{
		repo: statsRepo,
		loc:  loc,
		now:  time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) today() calendar.Date {
	return calendar.Today(ss.now(), ss.loc)
}

func (ss *StatsService) update(ctx context.Context, fn repository.StatsUpdateFunc) (*entity.UserStats, error) {
	stats, err := ss.repo.Update(ctx, fn)
	if err != nil {
		return nil, fmt.Errorf("stats repository error: %w", err)
	}
	return stats, nil
}

func (ss *StatsService) GetStats(ctx context.Context) (*entity.UserStats, error) {
	stats, err := ss.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats repository error: %w", err)
	}
	return stats, nil
}

func (ss *StatsService) PatchStats(ctx context.Context, req *PatchStatsRequest) (*entity.UserStats, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	patch := entity.UserStatsPatch{
		TotalPoints:      req.TotalPoints,
		CurrentStreak:    req.CurrentStreak,
		LongestStreak:    req.LongestStreak,
		LastActivityDate: req.LastActivityDate,
		TasksCompleted:   req.TasksCompleted,
		HabitsCompleted:  req.HabitsCompleted,
		Badges:           req.Badges,
	}
	return ss.update(ctx, func(current entity.UserStats) entity.UserStats {
		return gamification.ApplyPatch(current, patch)
	})
}

func (ss *StatsService) AddPoints(ctx context.Context, req *AddPointsRequest) (*entity.UserStats, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	points := *req.Points
	return ss.update(ctx, func(current entity.UserStats) entity.UserStats {
		return gamification.AwardPoints(current, points)
	})
}

func (ss *StatsService) OnHabitCompleted(ctx context.Context, habitID int64, date string) (*entity.UserStats, error) {
	today := ss.today()
	stats, err := ss.update(ctx, func(current entity.UserStats) entity.UserStats {
		return gamification.CompleteHabit(current, today)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("habit completion applied",
		slog.Int64("habit_id", habitID),
		slog.String("entry_date", date),
		slog.String("today", today.String()),
		slog.Int("streak", stats.CurrentStreak),
	)
	return stats, nil
}

func (ss *StatsService) OnTaskCompleted(ctx context.Context, taskID int64) (*entity.UserStats, error) {
	stats, err := ss.update(ctx, func(current entity.UserStats) entity.UserStats {
		return gamification.CompleteTask(current)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("task completion applied", slog.Int64("task_id", taskID), slog.Int("points", stats.TotalPoints))
	return stats, nil
}
