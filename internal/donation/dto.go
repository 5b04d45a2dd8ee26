package donation

import (
	"math"

	errors "github.com/wordhope/donation-site/internal"
)

// Donation bounds in whole USD. Values outside this range never reach the
// payment provider.
const (
	MinDonationUSD int64 = 1
	MaxDonationUSD int64 = 100000
)

// CreateCheckoutRequest is the body of POST /create-checkout-session.
type CreateCheckoutRequest struct {
	Amount    float64 `json:"amount"`
	IsMonthly bool    `json:"isMonthly"`
}

// CheckoutSessionResponse carries the hosted checkout redirect URL.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// SafeAmount validates the requested amount fail-fast: first that it is a
// finite positive number, then that its rounded value stays within bounds.
// A body that failed to parse arrives here as the zero value and is rejected
// by the first check.
func (r *CreateCheckoutRequest) SafeAmount() (int64, *errors.AppError) {
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return 0, errors.ErrInvalidAmount
	}

	safe := int64(math.Round(r.Amount))
	if safe < MinDonationUSD || safe > MaxDonationUSD {
		return 0, errors.ErrAmountOutOfRange
	}

	return safe, nil
}
