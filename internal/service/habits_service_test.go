package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/internal/repository/mocks"
	"github.com/limbo/taskflow/internal/service"
	servicemocks "github.com/limbo/taskflow/internal/service/mocks"
	"github.com/limbo/taskflow/pkg/entity"
)

type habitsFixture struct {
	habitsRepo  *mocks.MockHabitsRepositoryI
	entriesRepo *mocks.MockHabitEntriesRepositoryI
	stats       *servicemocks.MockStatsServiceI
	serv        *service.HabitsService
}

func newHabitsFixture(t *testing.T) *habitsFixture {
	ctrl := gomock.NewController(t)
	f := &habitsFixture{
		habitsRepo:  mocks.NewMockHabitsRepositoryI(ctrl),
		entriesRepo: mocks.NewMockHabitEntriesRepositoryI(ctrl),
		stats:       servicemocks.NewMockStatsServiceI(ctrl),
	}
	f.serv = service.NewHabitsService(f.habitsRepo, f.entriesRepo, f.stats)
	return f
}

func TestCreateHabit(t *testing.T) {
	t.Parallel()
	f := newHabitsFixture(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		f.habitsRepo.EXPECT().Create(gomock.Any(), &entity.Habit{
			Title:       "Drink water",
			HabitType:   "water",
			TargetValue: 1,
			Unit:        "times",
			IsActive:    true,
		}).Return(&entity.Habit{ID: 1}, nil)
		habit, err := f.serv.CreateHabit(ctx, &service.CreateHabitRequest{Title: " Drink water", HabitType: "water"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), habit.ID)
	})
	t.Run("explicit values", func(t *testing.T) {
		f.habitsRepo.EXPECT().Create(gomock.Any(), &entity.Habit{
			Title:       "Read",
			HabitType:   "reading",
			TargetValue: 30,
			Unit:        "pages",
			IsActive:    false,
		}).Return(&entity.Habit{ID: 2}, nil)
		_, err := f.serv.CreateHabit(ctx, &service.CreateHabitRequest{
			Title: "Read", HabitType: "reading", TargetValue: intPtr(30), Unit: strPtr("pages"), IsActive: boolPtr(false),
		})
		require.NoError(t, err)
	})
	t.Run("unknown habit type", func(t *testing.T) {
		_, err := f.serv.CreateHabit(ctx, &service.CreateHabitRequest{Title: "Run", HabitType: "running"})
		verr, ok := errorvalues.IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "habitType", verr.Fields[0].Field)
		assert.Equal(t, "oneof", verr.Fields[0].Rule)
	})
	t.Run("zero target rejected", func(t *testing.T) {
		_, err := f.serv.CreateHabit(ctx, &service.CreateHabitRequest{Title: "Run", HabitType: "workout", TargetValue: intPtr(0)})
		_, ok := errorvalues.IsValidation(err)
		assert.True(t, ok)
	})
}

func TestRecordEntry(t *testing.T) {
	t.Parallel()
	f := newHabitsFixture(t)
	existing := &entity.HabitEntry{ID: 7, HabitID: 3, Date: "2024-03-11", Value: 1}
	testCases := []struct {
		Desc         string
		Req          service.RecordEntryRequest
		Created      bool
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:    "first entry of the day completes the habit",
			Req:     service.RecordEntryRequest{HabitID: 3, Date: "2024-03-11", Value: intPtr(2), Completed: boolPtr(true)},
			Created: true,
			MockPrepFunc: func() {
				f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(3), "2024-03-11").
					Return(nil, errorvalues.ErrEntryNotFound)
				f.entriesRepo.EXPECT().Create(gomock.Any(), &entity.HabitEntry{HabitID: 3, Date: "2024-03-11", Value: 2, Completed: true}).
					Return(&entity.HabitEntry{ID: 7, HabitID: 3, Date: "2024-03-11", Value: 2, Completed: true}, nil)
				f.stats.EXPECT().OnHabitCompleted(gomock.Any(), int64(3), "2024-03-11").Return(&entity.UserStats{}, nil)
			},
		},
		{
			Desc:    "progress without completion leaves stats alone",
			Req:     service.RecordEntryRequest{HabitID: 3, Date: "2024-03-11", Value: intPtr(1)},
			Created: true,
			MockPrepFunc: func() {
				f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(3), "2024-03-11").
					Return(nil, errorvalues.ErrEntryNotFound)
				f.entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
		},
		{
			Desc: "second write of the day updates the entry",
			Req:  service.RecordEntryRequest{HabitID: 3, Date: "2024-03-11", Value: intPtr(3), Completed: boolPtr(true)},
			MockPrepFunc: func() {
				f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(3), "2024-03-11").Return(existing, nil)
				f.entriesRepo.EXPECT().Update(gomock.Any(), int64(7), entity.HabitEntryPatch{Value: intPtr(3), Completed: boolPtr(true)}).
					Return(&entity.HabitEntry{ID: 7, HabitID: 3, Date: "2024-03-11", Value: 3, Completed: true}, nil)
				f.stats.EXPECT().OnHabitCompleted(gomock.Any(), int64(3), "2024-03-11").Return(&entity.UserStats{}, nil)
			},
		},
		{
			Desc: "concurrent create falls back to update",
			Req:  service.RecordEntryRequest{HabitID: 3, Date: "2024-03-11", Completed: boolPtr(false)},
			MockPrepFunc: func() {
				gomock.InOrder(
					f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(3), "2024-03-11").
						Return(nil, errorvalues.ErrEntryNotFound),
					f.entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrEntryExists),
					f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(3), "2024-03-11").Return(existing, nil),
					f.entriesRepo.EXPECT().Update(gomock.Any(), int64(7), entity.HabitEntryPatch{Completed: boolPtr(false)}).
						Return(existing, nil),
				)
			},
		},
		{
			Desc:  "unknown habit",
			Req:   service.RecordEntryRequest{HabitID: 99, Date: "2024-03-11"},
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				f.entriesRepo.EXPECT().GetByHabitAndDate(gomock.Any(), int64(99), "2024-03-11").
					Return(nil, errorvalues.ErrEntryNotFound)
				f.entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "malformed date",
			Req:          service.RecordEntryRequest{HabitID: 3, Date: "11.03.2024"},
			Error:        errorvalues.NewValidationError("date", "datetime"),
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			entry, created, err := f.serv.RecordEntry(ctx, &tc.Req)
			if tc.Error != nil {
				if verr, ok := tc.Error.(*errorvalues.ValidationError); ok {
					got, isValidation := errorvalues.IsValidation(err)
					require.True(t, isValidation)
					assert.Equal(t, verr.Fields[0].Field, got.Fields[0].Field)
					return
				}
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, entry)
			assert.Equal(t, tc.Created, created)
		})
	}
}

func TestUpdateEntry(t *testing.T) {
	f := newHabitsFixture(t)
	ctx := context.Background()

	t.Run("completion feeds stats with entry date", func(t *testing.T) {
		f.entriesRepo.EXPECT().Update(gomock.Any(), int64(7), entity.HabitEntryPatch{Completed: boolPtr(true)}).
			Return(&entity.HabitEntry{ID: 7, HabitID: 3, Date: "2024-03-09", Completed: true}, nil)
		f.stats.EXPECT().OnHabitCompleted(gomock.Any(), int64(3), "2024-03-09").Return(&entity.UserStats{}, nil)
		_, err := f.serv.UpdateEntry(ctx, 7, &service.UpdateEntryRequest{Completed: boolPtr(true)})
		require.NoError(t, err)
	})
	t.Run("stats failure surfaces", func(t *testing.T) {
		storageErr := errorvalues.Storage("updating stats", errors.New("db error"))
		f.entriesRepo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			Return(&entity.HabitEntry{ID: 7, HabitID: 3, Date: "2024-03-09", Completed: true}, nil)
		f.stats.EXPECT().OnHabitCompleted(gomock.Any(), int64(3), "2024-03-09").Return(nil, storageErr)
		_, err := f.serv.UpdateEntry(ctx, 7, &service.UpdateEntryRequest{Completed: boolPtr(true)})
		assert.ErrorIs(t, err, storageErr)
	})
	t.Run("missing entry", func(t *testing.T) {
		f.entriesRepo.EXPECT().Update(gomock.Any(), int64(8), gomock.Any()).Return(nil, errorvalues.ErrEntryNotFound)
		_, err := f.serv.UpdateEntry(ctx, 8, &service.UpdateEntryRequest{Value: intPtr(4)})
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
}

func TestGetEntries(t *testing.T) {
	f := newHabitsFixture(t)
	ctx := context.Background()

	t.Run("date filter", func(t *testing.T) {
		f.habitsRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&entity.Habit{ID: 3}, nil)
		f.entriesRepo.EXPECT().GetByHabitID(gomock.Any(), int64(3), "2024-03-11").
			Return([]*entity.HabitEntry{{ID: 7}}, nil)
		entries, err := f.serv.GetEntries(ctx, 3, "2024-03-11")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
	t.Run("bad date", func(t *testing.T) {
		_, err := f.serv.GetEntries(ctx, 3, "yesterday")
		_, ok := errorvalues.IsValidation(err)
		assert.True(t, ok)
	})
	t.Run("unknown habit", func(t *testing.T) {
		f.habitsRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, errorvalues.ErrHabitNotFound)
		_, err := f.serv.GetEntries(ctx, 4, "")
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}
