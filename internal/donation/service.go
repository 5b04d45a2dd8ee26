package donation

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	errors "github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/core/events"
)

// SessionSpec describes the single line item handed to the payment provider.
type SessionSpec struct {
	AmountCents int64
	Description string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the provider-owned session. It is created, returned to
// the caller, and forgotten; nothing here persists it.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionGateway creates hosted checkout sessions with the external provider.
type SessionGateway interface {
	CreateCheckoutSession(ctx context.Context, spec SessionSpec) (*CheckoutSession, error)
}

// RequestOrigin carries the request headers used to derive the redirect base
// URL when no deployment origin is configured.
type RequestOrigin struct {
	ForwardedHost  string
	ForwardedProto string
	Host           string
}

func OriginFromRequest(r *http.Request) RequestOrigin {
	return RequestOrigin{
		ForwardedHost:  r.Header.Get("X-Forwarded-Host"),
		ForwardedProto: r.Header.Get("X-Forwarded-Proto"),
		Host:           r.Host,
	}
}

type Service struct {
	gateway     SessionGateway
	bus         *events.EventBus
	baseURL     string
	productName string
	logger      *slog.Logger
}

func NewService(gateway SessionGateway, bus *events.EventBus, baseURL, productName string, logger *slog.Logger) *Service {
	return &Service{
		gateway:     gateway,
		bus:         bus,
		baseURL:     strings.TrimRight(baseURL, "/"),
		productName: productName,
		logger:      logger,
	}
}

// BaseURL resolves the origin for success/cancel redirect targets: explicit
// deployment origin first, then forwarded-host/proto headers, then the plain
// Host header, then the fixed local-development origin.
func (s *Service) BaseURL(origin RequestOrigin) string {
	if s.baseURL != "" {
		return s.baseURL
	}

	host := origin.ForwardedHost
	if host == "" {
		host = origin.Host
	}
	if host != "" {
		proto := origin.ForwardedProto
		if proto == "" {
			proto = "http"
		}
		return proto + "://" + host
	}

	return errors.DefaultDevOrigin
}

// CreateSession validates the donation request and creates exactly one
// checkout session, or rejects with a classified error before the provider is
// ever contacted.
func (s *Service) CreateSession(ctx context.Context, req *CreateCheckoutRequest, origin RequestOrigin) (*CheckoutSession, error) {
	safeAmount, verr := req.SafeAmount()
	if verr != nil {
		s.logger.Warn("donation amount rejected", "amount", req.Amount, "code", verr.Code)
		return nil, verr
	}

	baseURL := s.BaseURL(origin)

	// The monthly flag changes only the label shown on the hosted checkout
	// page; it does not create a recurring billing arrangement.
	description := fmt.Sprintf("Donation to %s", s.productName)
	if req.IsMonthly {
		description = fmt.Sprintf("Monthly donation to %s", s.productName)
	}

	spec := SessionSpec{
		AmountCents: safeAmount * 100,
		Description: description,
		SuccessURL:  baseURL + "/donate/success",
		CancelURL:   baseURL + "/donate/cancel",
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, spec)
	if err != nil {
		s.logger.Error("checkout session creation failed",
			"amount", safeAmount,
			"is_monthly", req.IsMonthly,
			"error", err)
		s.publish(ctx, events.NewCheckoutFailedEvent(safeAmount, err.Error()))
		return nil, errors.NewExternalError(errors.MsgCheckoutFailed, err)
	}

	if session == nil || session.URL == "" {
		s.logger.Error("provider returned session without redirect url")
		s.publish(ctx, events.NewCheckoutFailedEvent(safeAmount, "missing redirect url"))
		return nil, errors.NewExternalError(errors.MsgCheckoutFailed, fmt.Errorf("provider returned no redirect url"))
	}

	s.logger.Info("checkout session created",
		"session_id", session.ID,
		"amount", safeAmount,
		"is_monthly", req.IsMonthly)
	s.publish(ctx, events.NewCheckoutSessionCreatedEvent(session.ID, safeAmount, req.IsMonthly))

	return session, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
