package service

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/entity"
)

const (
	defaultHabitTarget = 1
	defaultHabitUnit   = "times"
)

type HabitsService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.HabitEntriesRepositoryI
	stats       StatsServiceI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.HabitEntriesRepositoryI,
	stats StatsServiceI) *HabitsService {
	if habitsRepo == nil || entriesRepo == nil || stats == nil {
		log.Fatal("on habits service provided nil dependencies")
	}
	return &HabitsService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
		stats:       stats,
	}
}

func (hs *HabitsService) GetHabits(ctx context.Context) ([]*entity.Habit, error) {
	habits, err := hs.habitsRepo.GetActive(ctx)
	if err != nil {
		return nil, wrapRepoError("habits", err)
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, id int64) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("habits", err)
	}
	return habit, nil
}

func (hs *HabitsService) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit := entity.Habit{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		HabitType:   req.HabitType,
		TargetValue: defaultHabitTarget,
		Unit:        defaultHabitUnit,
		IsActive:    true,
	}
	if req.TargetValue != nil {
		habit.TargetValue = *req.TargetValue
	}
	if req.Unit != nil && *req.Unit != "" {
		habit.Unit = *req.Unit
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}
	created, err := hs.habitsRepo.Create(ctx, &habit)
	if err != nil {
		return nil, wrapRepoError("habits", err)
	}
	return created, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, id int64, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	patch := entity.HabitPatch{
		Title:       req.Title,
		Description: req.Description,
		HabitType:   req.HabitType,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		IsActive:    req.IsActive,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	habit, err := hs.habitsRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, wrapRepoError("habits", err)
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, id int64) error {
	if err := hs.habitsRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("habits", err)
	}
	return nil
}

func (hs *HabitsService) GetEntries(ctx context.Context, habitID int64, date string) ([]*entity.HabitEntry, error) {
	if date != "" {
		if err := validateDate("date", date); err != nil {
			return nil, err
		}
	}
	if _, err := hs.habitsRepo.GetByID(ctx, habitID); err != nil {
		return nil, wrapRepoError("habits", err)
	}
	entries, err := hs.entriesRepo.GetByHabitID(ctx, habitID, date)
	if err != nil {
		return nil, wrapRepoError("habit entries", err)
	}
	return entries, nil
}

func (hs *HabitsService) RecordEntry(ctx context.Context, req *RecordEntryRequest) (*entity.HabitEntry, bool, error) {
	if err := validateStruct(req); err != nil {
		return nil, false, err
	}
	existing, err := hs.entriesRepo.GetByHabitAndDate(ctx, req.HabitID, req.Date)
	switch {
	case errors.Is(err, errorvalues.ErrEntryNotFound):
		entry := entity.HabitEntry{
			HabitID: req.HabitID,
			Date:    req.Date,
		}
		if req.Value != nil {
			entry.Value = *req.Value
		}
		if req.Completed != nil {
			entry.Completed = *req.Completed
		}
		created, err := hs.entriesRepo.Create(ctx, &entry)
		if errors.Is(err, errorvalues.ErrEntryExists) {
			// Another request recorded the same day in between
			existing, err = hs.entriesRepo.GetByHabitAndDate(ctx, req.HabitID, req.Date)
			if err != nil {
				return nil, false, wrapRepoError("habit entries", err)
			}
			break
		}
		if err != nil {
			return nil, false, wrapRepoError("habit entries", err)
		}
		if err = hs.afterEntryWrite(ctx, created, req.Completed); err != nil {
			return nil, false, err
		}
		return created, true, nil
	case err != nil:
		return nil, false, wrapRepoError("habit entries", err)
	}

	updated, err := hs.entriesRepo.Update(ctx, existing.ID, entity.HabitEntryPatch{
		Value:     req.Value,
		Completed: req.Completed,
	})
	if err != nil {
		return nil, false, wrapRepoError("habit entries", err)
	}
	if err = hs.afterEntryWrite(ctx, updated, req.Completed); err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

func (hs *HabitsService) UpdateEntry(ctx context.Context, id int64, req *UpdateEntryRequest) (*entity.HabitEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	updated, err := hs.entriesRepo.Update(ctx, id, entity.HabitEntryPatch{
		Date:      req.Date,
		Value:     req.Value,
		Completed: req.Completed,
	})
	if err != nil {
		return nil, wrapRepoError("habit entries", err)
	}
	if err = hs.afterEntryWrite(ctx, updated, req.Completed); err != nil {
		return nil, err
	}
	return updated, nil
}

// afterEntryWrite feeds the stats when the write set completed=true. A write
// that leaves the entry not completed has no stats effect; a broken streak is
// detected on the next completion.
func (hs *HabitsService) afterEntryWrite(ctx context.Context, entry *entity.HabitEntry, setCompleted *bool) error {
	if setCompleted == nil || !*setCompleted || !entry.Completed {
		return nil
	}
	if _, err := hs.stats.OnHabitCompleted(ctx, entry.HabitID, entry.Date); err != nil {
		return err
	}
	return nil
}
