package paymentgateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/wordhope/donation-site/internal/donation"
)

type Config struct {
	SecretKey string
	Timeout   time.Duration
}

// Client creates Stripe checkout sessions. It implements
// donation.SessionGateway; the service layer never sees Stripe types.
type Client struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}

	stripe.Key = cfg.SecretKey

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{timeout: timeout, logger: logger}, nil
}

// CreateCheckoutSession creates one hosted checkout session for a one-time
// card payment: a single USD line item priced ad hoc via price_data.
func (c *Client) CreateCheckoutSession(ctx context.Context, spec donation.SessionSpec) (*donation.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SubmitType:         stripe.String("donate"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(spec.Description),
					},
					UnitAmount: stripe.Int64(spec.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(spec.SuccessURL),
		CancelURL:  stripe.String(spec.CancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			c.logger.Error("stripe session creation failed",
				"code", stripeErr.Code,
				"message", stripeErr.Msg)
			return nil, fmt.Errorf("stripe: %s", stripeErr.Msg)
		}
		c.logger.Error("stripe session creation failed", "error", err)
		return nil, err
	}

	c.logger.Info("stripe session created", "session_id", s.ID)

	return &donation.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
