package donation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// ErrSubmitInFlight is returned when a checkout request is already running.
// The client allows at most one attempt at a time; there is no queueing and
// no retry.
var ErrSubmitInFlight = errors.New("checkout request already in flight")

// Client submits resolved donation requests to the session endpoint. One
// attempt per call, terminal per attempt; the caller decides whether to try
// again.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
	busy       atomic.Bool
}

func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		logger:     logger,
	}
}

// Submit posts the request and returns the redirect URL for the hosted
// checkout page. Any failure — transport error, non-success status, or a
// success response without a URL — is terminal for this attempt.
func (c *Client) Submit(ctx context.Context, req CreateCheckoutRequest) (string, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return "", ErrSubmitInFlight
	}
	defer c.busy.Store(false)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("submitting checkout request", "endpoint", c.endpoint, "amount", req.Amount, "is_monthly", req.IsMonthly)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && payload.Error != "" {
			return "", errors.New(payload.Error)
		}
		return "", fmt.Errorf("checkout endpoint returned status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode checkout response: %w", decodeErr)
	}
	if payload.URL == "" {
		return "", errors.New("checkout response missing redirect url")
	}

	return payload.URL, nil
}
