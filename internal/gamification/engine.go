// Package gamification derives points, level and streak state from
// completion events. Every function here is pure: it takes a stats snapshot
// by value and returns the next one.
package gamification

import (
	"github.com/limbo/taskflow/pkg/calendar"
	"github.com/limbo/taskflow/pkg/entity"
)

const (
	PointsPerLevel        = 100
	HabitCompletionPoints = 5
	TaskCompletionPoints  = 10
)

// LevelFor is the only place a level is computed: floor(points/100) + 1.
func LevelFor(totalPoints int) int {
	q := totalPoints / PointsPerLevel
	if totalPoints%PointsPerLevel != 0 && totalPoints < 0 {
		q--
	}
	return q + 1
}

// AwardPoints adds delta to the total and recomputes the level. The total is
// never clamped.
func AwardPoints(stats entity.UserStats, delta int) entity.UserStats {
	stats.TotalPoints += delta
	stats.Level = LevelFor(stats.TotalPoints)
	return stats
}

// ApplyStreakEvent records a qualifying completion on today. A second event on
// the same day leaves the streak alone, an event on the day after the last
// activity extends it, anything else starts a new streak of one.
func ApplyStreakEvent(stats entity.UserStats, today calendar.Date) entity.UserStats {
	todayStr := today.String()
	last := ""
	if stats.LastActivityDate != nil {
		last = *stats.LastActivityDate
	}
	switch last {
	case todayStr:
		return stats
	case today.Yesterday().String():
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}
	stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)
	stats.LastActivityDate = &todayStr
	return stats
}

// CompleteHabit is the habit completion flow: points first, then the streak,
// both on the same snapshot.
func CompleteHabit(stats entity.UserStats, today calendar.Date) entity.UserStats {
	stats = AwardPoints(stats, HabitCompletionPoints)
	stats = ApplyStreakEvent(stats, today)
	stats.HabitsCompleted++
	return stats
}

// CompleteTask only accumulates points and the task counter. Tasks never
// feed the streak.
func CompleteTask(stats entity.UserStats) entity.UserStats {
	stats = AwardPoints(stats, TaskCompletionPoints)
	stats.TasksCompleted++
	return stats
}

// ApplyPatch applies a manual stats edit. Level follows the new total and the
// longest streak is lifted so it never falls below the current one.
func ApplyPatch(stats entity.UserStats, patch entity.UserStatsPatch) entity.UserStats {
	if patch.TotalPoints != nil {
		stats.TotalPoints = *patch.TotalPoints
	}
	if patch.CurrentStreak != nil {
		stats.CurrentStreak = *patch.CurrentStreak
	}
	if patch.LongestStreak != nil {
		stats.LongestStreak = *patch.LongestStreak
	}
	if patch.LastActivityDate != nil {
		if *patch.LastActivityDate == "" {
			stats.LastActivityDate = nil
		} else {
			d := *patch.LastActivityDate
			stats.LastActivityDate = &d
		}
	}
	if patch.TasksCompleted != nil {
		stats.TasksCompleted = *patch.TasksCompleted
	}
	if patch.HabitsCompleted != nil {
		stats.HabitsCompleted = *patch.HabitsCompleted
	}
	if patch.Badges != nil {
		stats.Badges = patch.Badges
	}
	stats.Level = LevelFor(stats.TotalPoints)
	stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)
	return stats
}

// NewStats is the snapshot of a freshly created stats row.
func NewStats() entity.UserStats {
	return entity.UserStats{
		Level:  LevelFor(0),
		Badges: []entity.Badge{},
	}
}
