package api

import (
	"context"
	"net/http"

	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/entity"
	"github.com/limbo/taskflow/pkg/httputil"
)

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter := entity.TaskFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	tasks, err := s.tasksService.GetTasks(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "listing tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("get task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.GetTask(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "getting task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task provided")
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTaskRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "creating task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req service.UpdateTaskRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err = s.tasksService.DeleteTask(ctx, id); err != nil {
		writeServiceError(w, logger, "deleting task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted")
}

func (s *Server) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ReorderTasksRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("reorder tasks error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err := s.tasksService.ReorderTasks(ctx, &req); err != nil {
		writeServiceError(w, logger, "reordering tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("tasks reordered")
}

func (s *Server) GetSubtasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("get subtasks error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	subtasks, err := s.tasksService.GetSubtasks(ctx, taskID)
	if err != nil {
		writeServiceError(w, logger, "listing subtasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, subtasks)
	logger.Info("subtasks provided")
}

func (s *Server) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("create subtask error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req service.CreateSubtaskRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("create subtask error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	subtask, err := s.tasksService.CreateSubtask(ctx, taskID, &req)
	if err != nil {
		writeServiceError(w, logger, "creating subtask", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, subtask)
	logger.Info("subtask created")
}

func (s *Server) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("update subtask error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid subtask id in path value", nil)
		return
	}
	var req service.UpdateSubtaskRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("update subtask error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	subtask, err := s.tasksService.UpdateSubtask(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating subtask", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, subtask)
	logger.Info("subtask updated")
}

func (s *Server) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("subtask deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid subtask id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err = s.tasksService.DeleteSubtask(ctx, id); err != nil {
		writeServiceError(w, logger, "deleting subtask", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("subtask deleted")
}

func (s *Server) GetNotes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("get notes error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	notes, err := s.tasksService.GetNotes(ctx, taskID)
	if err != nil {
		writeServiceError(w, logger, "listing notes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, notes)
	logger.Info("notes provided")
}

func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("create note error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req service.CreateNoteRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("create note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	note, err := s.tasksService.CreateNote(ctx, taskID, &req)
	if err != nil {
		writeServiceError(w, logger, "creating note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("note created")
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("note deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid note id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err = s.tasksService.DeleteNote(ctx, id); err != nil {
		writeServiceError(w, logger, "deleting note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("note deleted")
}
