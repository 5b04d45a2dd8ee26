package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/transport"
)

type ServiceAPI interface {
	Receive(ctx context.Context, msg *ContactMessage) error
}

type Handler struct {
	transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: *transport.NewBaseHandler(logger),
		Service:     service,
	}
}

// SubmitMessage handles POST /api/v1/contact.
func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var msg ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.Logger.Warn("unparseable contact submission", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := h.Service.Receive(r.Context(), &msg); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "received"})
}
