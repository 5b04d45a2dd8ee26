package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes the flat error body clients render verbatim.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]string{"error": message}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes an AppError. The cause stays in the logs; only the
// public message goes on the wire.
func (h *BaseHandler) HandleError(w http.ResponseWriter, appErr *internal.AppError) {
	if appErr.Cause != nil {
		h.Logger.Error("request failed",
			"type", appErr.Type,
			"code", appErr.Code,
			"status", appErr.StatusCode,
			"cause", appErr.Cause)
	} else {
		h.Logger.Warn("request rejected",
			"type", appErr.Type,
			"code", appErr.Code,
			"status", appErr.StatusCode)
	}
	h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
}

// HandleServiceError maps service errors to HTTP responses.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.HandleError(w, appErr)
		return
	}
	h.Logger.Error("unclassified service error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "Internal server error.")
}
