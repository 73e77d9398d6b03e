package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/httputil"
)

const handlerTimeout = 10 * time.Second

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id in path value")
	}
	return id, nil
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	defer r.Body.Close()
	if allowEmpty && (r.Body == http.NoBody || r.ContentLength == 0) {
		return nil
	}
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}

var (
	notFoundErrors = []error{
		errorvalues.ErrTaskNotFound,
		errorvalues.ErrSubtaskNotFound,
		errorvalues.ErrNoteNotFound,
		errorvalues.ErrHabitNotFound,
		errorvalues.ErrEntryNotFound,
		errorvalues.ErrSessionNotFound,
	}
	conflictErrors = []error{
		errorvalues.ErrSessionStopped,
		errorvalues.ErrEntryExists,
	}
)

func firstMatch(err error, candidates []error) error {
	for _, c := range candidates {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

// writeServiceError maps service failures onto status codes. Storage details
// go to the log only.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if verr, ok := errorvalues.IsValidation(err); ok {
		logger.Error(op+" error: validation failed", slog.String("error", verr.Error()))
		httputil.WriteValidationError(w, verr)
		return
	}
	if c := firstMatch(err, conflictErrors); c != nil {
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, c.Error(), nil)
		return
	}
	if errors.Is(err, errorvalues.ErrNotFound) {
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		msg := errorvalues.ErrNotFound.Error()
		if nf := firstMatch(err, notFoundErrors); nf != nil {
			msg = nf.Error()
		}
		httputil.WriteErrorResponse(w, http.StatusNotFound, msg, nil)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+op, nil)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			logger.Error("health check error: storage unreachable", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	quote := s.quoteService.GetQuote(ctx)
	httputil.WriteJSONResponse(w, http.StatusOK, quote)
	logger.Info("quote provided")
}
