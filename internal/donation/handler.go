package donation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wordhope/donation-site/internal/transport"
)

type ServiceAPI interface {
	CreateSession(ctx context.Context, req *CreateCheckoutRequest, origin RequestOrigin) (*CheckoutSession, error)
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

// CreateCheckoutSession handles POST /create-checkout-session.
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unparseable body behaves exactly like a missing amount and is
		// rejected by validation, not by a separate parse error.
		h.Logger.Warn("unparseable checkout request body", "error", err)
		req = CreateCheckoutRequest{}
	}

	session, err := h.Service.CreateSession(r.Context(), &req, OriginFromRequest(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, CheckoutSessionResponse{URL: session.URL})
}

// Preflight answers OPTIONS with the permissive CORS policy. This is an
// intentional policy for a public donation endpoint, not an oversight; the
// response is written before any validation can run.
func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.WriteHeader(http.StatusOK)
}
