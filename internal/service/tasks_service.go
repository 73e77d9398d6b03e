package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/entity"
)

type TasksService struct {
	tasksRepo    repository.TasksRepositoryI
	subtasksRepo repository.SubtasksRepositoryI
	notesRepo    repository.NotesRepositoryI
	stats        StatsServiceI
	now          func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, subtasksRepo repository.SubtasksRepositoryI,
	notesRepo repository.NotesRepositoryI, stats StatsServiceI) *TasksService {
	if tasksRepo == nil || subtasksRepo == nil || notesRepo == nil || stats == nil {
		log.Fatal("on tasks service provided nil dependencies")
	}
	return &TasksService{
		tasksRepo:    tasksRepo,
		subtasksRepo: subtasksRepo,
		notesRepo:    notesRepo,
		stats:        stats,
		now:          time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (ts *TasksService) WithClock(now func() time.Time) *TasksService {
	ts.now = now
	return ts
}

func wrapRepoError(repo string, err error) error {
	return fmt.Errorf("%s repository error: %w", repo, err)
}

func (ts *TasksService) GetTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	switch filter.Status {
	case "", "all", "pending", "completed":
	default:
		return nil, &errorvalues.ValidationError{Fields: []errorvalues.FieldError{
			{Field: "status", Rule: "oneof", Param: "all pending completed"},
		}}
	}
	switch filter.Category {
	case "", entity.CategoryPersonal, entity.CategoryWork, entity.CategoryFitness, entity.CategoryHome:
	default:
		return nil, &errorvalues.ValidationError{Fields: []errorvalues.FieldError{
			{Field: "category", Rule: "oneof", Param: "Personal Work Fitness Home"},
		}}
	}
	tasks, err := ts.tasksRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	return tasks, nil
}

func (ts *TasksService) GetTask(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	return task, nil
}

func (ts *TasksService) CreateTask(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task := entity.Task{
		Title:              strings.TrimSpace(req.Title),
		Description:        req.Description,
		Category:           req.Category,
		Priority:           req.Priority,
		DueDate:            req.DueDate,
		Completed:          req.Completed,
		Order:              req.Order,
		CreatedAt:          ts.now().UTC(),
		ParentTaskID:       req.ParentTaskID,
		RecurrenceType:     req.RecurrenceType,
		RecurrenceInterval: 1,
		RecurrenceEndDate:  req.RecurrenceEndDate,
		IsRecurring:        req.IsRecurring,
		DependsOnTaskID:    req.DependsOnTaskID,
	}
	if task.Category == "" {
		task.Category = entity.CategoryPersonal
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	if task.RecurrenceType == "" {
		task.RecurrenceType = entity.RecurrenceNone
	}
	if req.RecurrenceInterval != nil {
		task.RecurrenceInterval = *req.RecurrenceInterval
	}
	if task.Completed {
		completedAt := task.CreatedAt
		task.CompletedAt = &completedAt
	}
	created, err := ts.tasksRepo.Create(ctx, &task)
	if err != nil {
		if _, ok := errorvalues.IsValidation(err); ok {
			return nil, err
		}
		return nil, wrapRepoError("tasks", err)
	}
	return created, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, id int64, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	current, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	patch := entity.TaskPatch{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Priority:           req.Priority,
		DueDate:            req.DueDate,
		Completed:          req.Completed,
		Order:              req.Order,
		ParentTaskID:       req.ParentTaskID,
		RecurrenceType:     req.RecurrenceType,
		RecurrenceInterval: req.RecurrenceInterval,
		RecurrenceEndDate:  req.RecurrenceEndDate,
		IsRecurring:        req.IsRecurring,
		DependsOnTaskID:    req.DependsOnTaskID,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if req.ParentTaskID != nil && *req.ParentTaskID == id {
		return nil, errorvalues.NewValidationError("parentTaskId", "nefield")
	}
	if req.DependsOnTaskID != nil && *req.DependsOnTaskID == id {
		return nil, errorvalues.NewValidationError("dependsOnTaskId", "nefield")
	}

	completing := req.Completed != nil && *req.Completed && !current.Completed
	var completedAt time.Time
	switch {
	case req.Completed != nil && !*req.Completed:
		patch.ClearCompletedAt = true
	case req.CompletedAt != nil:
		at, err := time.Parse(time.RFC3339, *req.CompletedAt)
		if err != nil {
			return nil, errorvalues.NewValidationError("completedAt", "datetime")
		}
		completedAt = at.UTC()
		patch.CompletedAt = &completedAt
	case completing:
		completedAt = ts.now().UTC()
	}
	if !completing {
		return ts.applyTaskPatch(ctx, id, patch)
	}

	// Only the request whose conditional update flips the flag awards points
	patch.Completed = nil
	patch.CompletedAt = nil
	if patch != (entity.TaskPatch{}) {
		if _, err := ts.applyTaskPatch(ctx, id, patch); err != nil {
			return nil, err
		}
	}
	updated, transitioned, err := ts.tasksRepo.Complete(ctx, id, completedAt)
	if err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	if transitioned {
		if _, err = ts.stats.OnTaskCompleted(ctx, id); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (ts *TasksService) applyTaskPatch(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	updated, err := ts.tasksRepo.Update(ctx, id, patch)
	if err != nil {
		if _, ok := errorvalues.IsValidation(err); ok {
			return nil, err
		}
		return nil, wrapRepoError("tasks", err)
	}
	return updated, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, id int64) error {
	if err := ts.tasksRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("tasks", err)
	}
	return nil
}

func (ts *TasksService) ReorderTasks(ctx context.Context, req *ReorderTasksRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := ts.tasksRepo.Reorder(ctx, req.TaskIDs); err != nil {
		return wrapRepoError("tasks", err)
	}
	return nil
}

func (ts *TasksService) GetSubtasks(ctx context.Context, taskID int64) ([]*entity.Subtask, error) {
	if _, err := ts.tasksRepo.GetByID(ctx, taskID); err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	subtasks, err := ts.subtasksRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, wrapRepoError("subtasks", err)
	}
	return subtasks, nil
}

func (ts *TasksService) CreateSubtask(ctx context.Context, taskID int64, req *CreateSubtaskRequest) (*entity.Subtask, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	subtask, err := ts.subtasksRepo.Create(ctx, &entity.Subtask{
		TaskID:    taskID,
		Title:     strings.TrimSpace(req.Title),
		Completed: req.Completed,
		Order:     *req.Order,
	})
	if err != nil {
		return nil, wrapRepoError("subtasks", err)
	}
	return subtask, nil
}

func (ts *TasksService) UpdateSubtask(ctx context.Context, id int64, req *UpdateSubtaskRequest) (*entity.Subtask, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	patch := entity.SubtaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
		Order:     req.Order,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	subtask, err := ts.subtasksRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, wrapRepoError("subtasks", err)
	}
	return subtask, nil
}

func (ts *TasksService) DeleteSubtask(ctx context.Context, id int64) error {
	if err := ts.subtasksRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("subtasks", err)
	}
	return nil
}

func (ts *TasksService) GetNotes(ctx context.Context, taskID int64) ([]*entity.TaskNote, error) {
	if _, err := ts.tasksRepo.GetByID(ctx, taskID); err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	notes, err := ts.notesRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, wrapRepoError("notes", err)
	}
	return notes, nil
}

func (ts *TasksService) CreateNote(ctx context.Context, taskID int64, req *CreateNoteRequest) (*entity.TaskNote, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	note, err := ts.notesRepo.Create(ctx, taskID, strings.TrimSpace(req.Content))
	if err != nil {
		return nil, wrapRepoError("notes", err)
	}
	return note, nil
}

func (ts *TasksService) DeleteNote(ctx context.Context, id int64) error {
	if err := ts.notesRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("notes", err)
	}
	return nil
}
