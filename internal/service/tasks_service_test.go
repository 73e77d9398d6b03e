package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/internal/repository/mocks"
	"github.com/limbo/taskflow/internal/service"
	servicemocks "github.com/limbo/taskflow/internal/service/mocks"
	"github.com/limbo/taskflow/pkg/entity"
)

type tasksFixture struct {
	tasksRepo    *mocks.MockTasksRepositoryI
	subtasksRepo *mocks.MockSubtasksRepositoryI
	notesRepo    *mocks.MockNotesRepositoryI
	stats        *servicemocks.MockStatsServiceI
	serv         *service.TasksService
}

var taskClock = time.Date(2024, 3, 11, 18, 30, 0, 0, time.UTC)

func newTasksFixture(t *testing.T) *tasksFixture {
	ctrl := gomock.NewController(t)
	f := &tasksFixture{
		tasksRepo:    mocks.NewMockTasksRepositoryI(ctrl),
		subtasksRepo: mocks.NewMockSubtasksRepositoryI(ctrl),
		notesRepo:    mocks.NewMockNotesRepositoryI(ctrl),
		stats:        servicemocks.NewMockStatsServiceI(ctrl),
	}
	f.serv = service.NewTasksService(f.tasksRepo, f.subtasksRepo, f.notesRepo, f.stats).WithClock(fixedClock(taskClock))
	return f
}

func TestCreateTask(t *testing.T) {
	t.Parallel()
	f := newTasksFixture(t)
	testCases := []struct {
		Desc         string
		Req          service.CreateTaskRequest
		ErrorFields  []string
		MockPrepFunc func()
	}{
		{
			Desc: "defaults applied",
			Req:  service.CreateTaskRequest{Title: "  water plants "},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().Create(gomock.Any(), &entity.Task{
					Title:              "water plants",
					Category:           entity.CategoryPersonal,
					Priority:           entity.PriorityMedium,
					CreatedAt:          taskClock,
					RecurrenceType:     entity.RecurrenceNone,
					RecurrenceInterval: 1,
				}).Return(&entity.Task{ID: 1}, nil)
			},
		},
		{
			Desc: "created completed gets completedAt",
			Req: service.CreateTaskRequest{
				Title: "done already", Category: entity.CategoryWork, Priority: entity.PriorityHigh,
				Completed: true, RecurrenceInterval: intPtr(3), RecurrenceType: "weekly",
			},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().Create(gomock.Any(), &entity.Task{
					Title:              "done already",
					Category:           entity.CategoryWork,
					Priority:           entity.PriorityHigh,
					Completed:          true,
					CreatedAt:          taskClock,
					RecurrenceType:     "weekly",
					RecurrenceInterval: 3,
					CompletedAt:        &taskClock,
				}).Return(&entity.Task{ID: 2, Completed: true}, nil)
			},
		},
		{
			Desc:         "every invalid field is reported",
			Req:          service.CreateTaskRequest{Priority: "Urgent", Category: "Errands", DueDate: strPtr("tomorrow")},
			ErrorFields:  []string{"title", "category", "priority", "dueDate"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "blank title",
			Req:          service.CreateTaskRequest{Title: "   "},
			ErrorFields:  []string{"title"},
			MockPrepFunc: func() {},
		},
		{
			Desc:        "unknown parent",
			Req:         service.CreateTaskRequest{Title: "child", ParentTaskID: int64Ptr(40)},
			ErrorFields: []string{"parentTaskId"},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.NewValidationError("parentTaskId", "exists"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			task, err := f.serv.CreateTask(ctx, &tc.Req)
			if tc.ErrorFields != nil {
				verr, ok := errorvalues.IsValidation(err)
				require.True(t, ok, "expected validation error, got %v", err)
				fields := make([]string, 0, len(verr.Fields))
				for _, fe := range verr.Fields {
					fields = append(fields, fe.Field)
				}
				assert.Equal(t, tc.ErrorFields, fields)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, task)
		})
	}
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	f := newTasksFixture(t)
	pending := &entity.Task{ID: 5, Title: "report"}
	done := &entity.Task{ID: 5, Title: "report", Completed: true, CompletedAt: &taskClock}
	explicit := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Req          service.UpdateTaskRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "completing a pending task stamps completedAt and awards points",
			Req:  service.UpdateTaskRequest{Completed: boolPtr(true)},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
				f.tasksRepo.EXPECT().Complete(gomock.Any(), int64(5), taskClock).Return(done, true, nil)
				f.stats.EXPECT().OnTaskCompleted(gomock.Any(), int64(5)).Return(&entity.UserStats{}, nil)
			},
		},
		{
			Desc: "explicit completedAt is kept",
			Req:  service.UpdateTaskRequest{Completed: boolPtr(true), CompletedAt: strPtr("2024-03-09T08:00:00Z")},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
				f.tasksRepo.EXPECT().Complete(gomock.Any(), int64(5), explicit).Return(done, true, nil)
				f.stats.EXPECT().OnTaskCompleted(gomock.Any(), int64(5)).Return(&entity.UserStats{}, nil)
			},
		},
		{
			Desc: "completing twice awards once",
			Req:  service.UpdateTaskRequest{Completed: boolPtr(true)},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(done, nil)
				f.tasksRepo.EXPECT().Update(gomock.Any(), int64(5), entity.TaskPatch{Completed: boolPtr(true)}).Return(done, nil)
			},
		},
		{
			Desc: "completion lost to a concurrent request awards nothing",
			Req:  service.UpdateTaskRequest{Completed: boolPtr(true)},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
				f.tasksRepo.EXPECT().Complete(gomock.Any(), int64(5), taskClock).Return(done, false, nil)
			},
		},
		{
			Desc: "other fields are patched before completing",
			Req:  service.UpdateTaskRequest{Title: strPtr(" final report "), Completed: boolPtr(true)},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
				gomock.InOrder(
					f.tasksRepo.EXPECT().Update(gomock.Any(), int64(5), entity.TaskPatch{Title: strPtr("final report")}).
						Return(&entity.Task{ID: 5, Title: "final report"}, nil),
					f.tasksRepo.EXPECT().Complete(gomock.Any(), int64(5), taskClock).Return(done, true, nil),
				)
				f.stats.EXPECT().OnTaskCompleted(gomock.Any(), int64(5)).Return(&entity.UserStats{}, nil)
			},
		},
		{
			Desc: "reopening clears completedAt",
			Req:  service.UpdateTaskRequest{Completed: boolPtr(false)},
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(done, nil)
				f.tasksRepo.EXPECT().Update(gomock.Any(), int64(5), entity.TaskPatch{
					Completed:        boolPtr(false),
					ClearCompletedAt: true,
				}).Return(pending, nil)
			},
		},
		{
			Desc:  "self reference rejected",
			Req:   service.UpdateTaskRequest{DependsOnTaskID: int64Ptr(5)},
			Error: errorvalues.NewValidationError("dependsOnTaskId", "nefield"),
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
			},
		},
		{
			Desc:  "unknown task",
			Req:   service.UpdateTaskRequest{Title: strPtr("x")},
			Error: errorvalues.ErrTaskNotFound,
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, errorvalues.ErrTaskNotFound)
			},
		},
		{
			Desc:  "stats failure surfaces",
			Req:   service.UpdateTaskRequest{Completed: boolPtr(true)},
			Error: errorvalues.Storage("storing stats", errors.New("db error")),
			MockPrepFunc: func() {
				f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(pending, nil)
				f.tasksRepo.EXPECT().Complete(gomock.Any(), int64(5), gomock.Any()).Return(done, true, nil)
				f.stats.EXPECT().OnTaskCompleted(gomock.Any(), int64(5)).
					Return(nil, errorvalues.Storage("storing stats", errors.New("db error")))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			task, err := f.serv.UpdateTask(ctx, 5, &tc.Req)
			if tc.Error != nil {
				assert.ErrorContains(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, task)
		})
	}
}

func TestGetTasksFilter(t *testing.T) {
	f := newTasksFixture(t)
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		filter := entity.TaskFilter{Status: "completed", Category: entity.CategoryFitness}
		f.tasksRepo.EXPECT().GetAll(gomock.Any(), filter).Return([]*entity.Task{}, nil)
		tasks, err := f.serv.GetTasks(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := f.serv.GetTasks(ctx, entity.TaskFilter{Status: "archived"})
		_, ok := errorvalues.IsValidation(err)
		assert.True(t, ok)
	})
	t.Run("unknown category", func(t *testing.T) {
		_, err := f.serv.GetTasks(ctx, entity.TaskFilter{Category: "Garden"})
		_, ok := errorvalues.IsValidation(err)
		assert.True(t, ok)
	})
	t.Run("storage error keeps its type", func(t *testing.T) {
		f.tasksRepo.EXPECT().GetAll(gomock.Any(), entity.TaskFilter{}).
			Return(nil, errorvalues.Storage("listing tasks", errors.New("db error")))
		_, err := f.serv.GetTasks(ctx, entity.TaskFilter{})
		var storageErr *errorvalues.StorageError
		assert.ErrorAs(t, err, &storageErr)
	})
}

func TestReorderTasks(t *testing.T) {
	f := newTasksFixture(t)
	ctx := context.Background()
	f.tasksRepo.EXPECT().Reorder(gomock.Any(), []int64{3, 1, 2}).Return(nil)
	assert.NoError(t, f.serv.ReorderTasks(ctx, &service.ReorderTasksRequest{TaskIDs: []int64{3, 1, 2}}))

	err := f.serv.ReorderTasks(ctx, &service.ReorderTasksRequest{TaskIDs: []int64{3, 0}})
	_, ok := errorvalues.IsValidation(err)
	assert.True(t, ok)
}

func TestSubtasksAndNotes(t *testing.T) {
	f := newTasksFixture(t)
	ctx := context.Background()

	t.Run("subtask order required", func(t *testing.T) {
		_, err := f.serv.CreateSubtask(ctx, 1, &service.CreateSubtaskRequest{Title: "step"})
		verr, ok := errorvalues.IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "order", verr.Fields[0].Field)
	})
	t.Run("subtask for unknown task", func(t *testing.T) {
		f.subtasksRepo.EXPECT().Create(gomock.Any(), &entity.Subtask{TaskID: 9, Title: "step", Order: 0}).
			Return(nil, errorvalues.ErrTaskNotFound)
		_, err := f.serv.CreateSubtask(ctx, 9, &service.CreateSubtaskRequest{Title: "step", Order: intPtr(0)})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("list subtasks of unknown task", func(t *testing.T) {
		f.tasksRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, errorvalues.ErrTaskNotFound)
		_, err := f.serv.GetSubtasks(ctx, 9)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	t.Run("toggle subtask", func(t *testing.T) {
		f.subtasksRepo.EXPECT().Update(gomock.Any(), int64(2), entity.SubtaskPatch{Completed: boolPtr(true)}).
			Return(&entity.Subtask{ID: 2, Completed: true}, nil)
		st, err := f.serv.UpdateSubtask(ctx, 2, &service.UpdateSubtaskRequest{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, st.Completed)
	})
	t.Run("blank note rejected", func(t *testing.T) {
		_, err := f.serv.CreateNote(ctx, 1, &service.CreateNoteRequest{Content: " \n\t"})
		verr, ok := errorvalues.IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "content", verr.Fields[0].Field)
	})
	t.Run("note trimmed", func(t *testing.T) {
		f.notesRepo.EXPECT().Create(gomock.Any(), int64(1), "call back").Return(&entity.TaskNote{ID: 4}, nil)
		note, err := f.serv.CreateNote(ctx, 1, &service.CreateNoteRequest{Content: "  call back "})
		require.NoError(t, err)
		assert.Equal(t, int64(4), note.ID)
	})
	t.Run("delete missing note", func(t *testing.T) {
		f.notesRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(errorvalues.ErrNoteNotFound)
		assert.ErrorIs(t, f.serv.DeleteNote(ctx, 4), errorvalues.ErrNoteNotFound)
	})
}
