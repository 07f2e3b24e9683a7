package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/requestutil"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message, RequestID: requestutil.RequestID(r)}, logger)
}

// writeSourceError maps a data-source error onto a status and a client-safe message.
func writeSourceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		logging.Warn(loggerFromContext(r, logger), "request failed",
			logging.FieldStatusCode, status,
			"error", err,
		)
	}
	writeError(w, r, status, message, logger)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, appschedule.ErrStaleResponse):
		return http.StatusConflict, "stale response discarded"
	case errors.Is(err, providers.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, providers.ErrDataUnavailable):
		return http.StatusBadGateway, "data unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
