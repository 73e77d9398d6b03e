package api

import (
	"context"
	"net/http"

	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/httputil"
)

func (s *Server) GetTimeSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("get time sessions error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	sessions, err := s.timeTrackingService.GetSessions(ctx, taskID)
	if err != nil {
		writeServiceError(w, logger, "listing time sessions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
	logger.Info("time sessions provided")
}

// StartTimeTracking accepts an empty body, the description is optional.
func (s *Server) StartTimeTracking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	taskID, err := pathID(r, "id")
	if err != nil {
		logger.Error("start time tracking error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req service.StartSessionRequest
	if err = decodeBody(r, &req, true); err != nil {
		logger.Error("start time tracking error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	session, err := s.timeTrackingService.StartSession(ctx, taskID, &req)
	if err != nil {
		writeServiceError(w, logger, "starting time tracking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("time tracking started")
}

func (s *Server) StopTimeTracking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("stop time tracking error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	session, err := s.timeTrackingService.StopSession(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "stopping time tracking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("time tracking stopped")
}
