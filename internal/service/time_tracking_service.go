package service

import (
	"context"
	"log"
	"time"

	"github.com/limbo/taskflow/internal/repository"
	"github.com/limbo/taskflow/pkg/entity"
)

type TimeTrackingService struct {
	tasksRepo    repository.TasksRepositoryI
	sessionsRepo repository.TimeSessionsRepositoryI
	now          func() time.Time
}

func NewTimeTrackingService(tasksRepo repository.TasksRepositoryI, sessionsRepo repository.TimeSessionsRepositoryI) *TimeTrackingService {
	if tasksRepo == nil || sessionsRepo == nil {
		log.Fatal("on time tracking service provided nil repos")
	}
	return &TimeTrackingService{
		tasksRepo:    tasksRepo,
		sessionsRepo: sessionsRepo,
		now:          time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (tts *TimeTrackingService) WithClock(now func() time.Time) *TimeTrackingService {
	tts.now = now
	return tts
}

func (tts *TimeTrackingService) GetSessions(ctx context.Context, taskID int64) ([]*entity.TimeSession, error) {
	if _, err := tts.tasksRepo.GetByID(ctx, taskID); err != nil {
		return nil, wrapRepoError("tasks", err)
	}
	sessions, err := tts.sessionsRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, wrapRepoError("time sessions", err)
	}
	return sessions, nil
}

func (tts *TimeTrackingService) StartSession(ctx context.Context, taskID int64, req *StartSessionRequest) (*entity.TimeSession, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	description := req.Description
	if description != nil && *description == "" {
		description = nil
	}
	session, err := tts.sessionsRepo.Start(ctx, taskID, description, tts.now().UTC())
	if err != nil {
		return nil, wrapRepoError("time sessions", err)
	}
	return session, nil
}

// StopSession closes the session now. The rounded duration is added to the
// task's time spent in the same transaction.
func (tts *TimeTrackingService) StopSession(ctx context.Context, id int64) (*entity.TimeSession, error) {
	session, err := tts.sessionsRepo.Stop(ctx, id, tts.now().UTC())
	if err != nil {
		return nil, wrapRepoError("time sessions", err)
	}
	return session, nil
}
