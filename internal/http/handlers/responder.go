package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"football-stats-service/internal/app/competitions"
	"football-stats-service/internal/http/middleware"
	"football-stats-service/internal/http/requestutil"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/providers"
)

type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeSuccess(w http.ResponseWriter, data any, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data}, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	writeJSON(w, status, envelope{Success: false, Error: message, RequestID: reqID}, logger)
}

// statusClientClosedRequest records a request abandoned by the client; nobody reads the response.
const statusClientClosedRequest = 499

// writeFetchError maps service and provider errors onto HTTP statuses.
func writeFetchError(w http.ResponseWriter, r *http.Request, err error, notFound string, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)

	var unknown *competitions.UnknownCompetitionError
	switch {
	case errors.As(err, &unknown):
		writeError(w, r, http.StatusNotFound, unknown.Error(), logger)
	case errors.Is(err, providers.ErrNotFound):
		writeError(w, r, http.StatusNotFound, notFound, logger)
	case errors.Is(err, providers.ErrProviderUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, "data provider unavailable", logger)
	case errors.Is(err, context.Canceled):
		logging.Debug(logger, "client went away before upstream fetch completed", "err", err)
		w.WriteHeader(statusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		logging.Warn(logger, "upstream fetch timed out", "err", err)
		writeError(w, r, http.StatusGatewayTimeout, "upstream request timed out", logger)
	default:
		if rl, ok := providers.AsRateLimitError(err); ok {
			if rl.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
			}
			logging.Warn(logger, "upstream rate limited", "err", err)
			writeError(w, r, http.StatusServiceUnavailable, "upstream rate limited, retry later", logger)
			return
		}
		logging.Error(logger, "upstream fetch failed", err)
		writeError(w, r, http.StatusBadGateway, fmt.Sprintf("upstream request failed: %v", err), logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
