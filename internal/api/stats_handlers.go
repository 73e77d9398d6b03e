package api

import (
	"context"
	"net/http"

	"github.com/limbo/taskflow/internal/service"
	"github.com/limbo/taskflow/pkg/httputil"
)

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx)
	if err != nil {
		writeServiceError(w, logger, "getting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) PatchStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.PatchStatsRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("patch stats error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	stats, err := s.statsService.PatchStats(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "patching stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats patched")
}

func (s *Server) AddPoints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.AddPointsRequest
	if err := decodeBody(r, &req, false); err != nil {
		logger.Error("add points error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	stats, err := s.statsService.AddPoints(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "adding points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("points added")
}
