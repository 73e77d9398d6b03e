package api

import (
	"context"
	"net/http"

	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/httputil"
)

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	habits, err := s.habitsService.GetHabits(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "getting habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit provided")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateHabitRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "creating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("update habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req service.UpdateHabitRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err = s.habitsService.DeleteHabit(ctx, id); err != nil {
		writeServiceError(w, logger, "deleting habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) GetHabitEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	habitID, err := pathID(r, "id")
	if err != nil {
		logger.Error("get habit entries error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	entries, err := s.habitsService.GetEntries(ctx, habitID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "listing habit entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("habit entries provided")
}

// RecordHabitEntry answers 201 for a new entry of the day and 200 when the
// existing one was updated.
func (s *Server) RecordHabitEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RecordEntryRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("record habit entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	entry, created, err := s.habitsService.RecordEntry(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "recording habit entry", err)
		return
	}
	if created {
		httputil.WriteJSONResponse(w, http.StatusCreated, entry)
		logger.Info("habit entry created")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("habit entry updated")
}

func (s *Server) UpdateHabitEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("update habit entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit entry id in path value", nil)
		return
	}
	var req service.UpdateEntryRequest
	if err = decodeBody(r, &req, false); err != nil {
		logger.Error("update habit entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	entry, err := s.habitsService.UpdateEntry(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "updating habit entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("habit entry updated")
}
