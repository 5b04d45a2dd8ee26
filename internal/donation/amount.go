package donation

import (
	"math"
	"strconv"
	"strings"
)

// DonationTiers are the preset quick-select amounts, in whole USD.
var DonationTiers = []int64{50, 100, 250, 500}

const DefaultTier int64 = 50

type AmountMode int

const (
	ModeTier AmountMode = iota
	ModeCustom
)

// AmountSource makes explicit which input is authoritative for the canonical
// amount: the selected tier, or a valid custom entry.
type AmountSource struct {
	Mode  AmountMode
	Value int64
}

// parseCustom interprets free-text custom input. Only a finite value greater
// than zero counts as a valid custom amount.
func parseCustom(text string) (int64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return int64(math.Round(n)), true
}

// ResolveAmount derives the single canonical donation amount. A valid custom
// entry takes precedence over the tier selection; otherwise the tier stands.
func ResolveAmount(selectedTier int64, customText string) int64 {
	if n, ok := parseCustom(customText); ok {
		return n
	}
	return selectedTier
}

// ResolveSource is ResolveAmount with the winning input made explicit.
func ResolveSource(selectedTier int64, customText string) AmountSource {
	if n, ok := parseCustom(customText); ok {
		return AmountSource{Mode: ModeCustom, Value: n}
	}
	return AmountSource{Mode: ModeTier, Value: selectedTier}
}

// FormState is the immutable view state of the donation form. All transitions
// return a new value; rendering concerns stay out of it entirely.
type FormState struct {
	SelectedTier int64
	CustomAmount string
	IsMonthly    bool
	Submitting   bool
	ErrorMessage string
	RedirectURL  string
}

func NewFormState() FormState {
	return FormState{SelectedTier: DefaultTier}
}

// SelectTier picks a preset tier. Tier and custom input are mutually
// exclusive, so the custom text is cleared, along with any visible error.
// Unknown tiers leave the state untouched.
func (s FormState) SelectTier(tier int64) FormState {
	for _, t := range DonationTiers {
		if t == tier {
			s.SelectedTier = tier
			s.CustomAmount = ""
			s.ErrorMessage = ""
			return s
		}
	}
	return s
}

func (s FormState) SetCustomAmount(text string) FormState {
	s.CustomAmount = text
	return s
}

func (s FormState) ToggleMonthly() FormState {
	s.IsMonthly = !s.IsMonthly
	return s
}

// Amount is the canonical amount the form would submit right now.
func (s FormState) Amount() int64 {
	return ResolveAmount(s.SelectedTier, s.CustomAmount)
}

func (s FormState) Source() AmountSource {
	return ResolveSource(s.SelectedTier, s.CustomAmount)
}

// BeginSubmit starts an attempt. It reports false when a request is already
// in flight; a fresh attempt always clears the previous error first.
func (s FormState) BeginSubmit() (FormState, bool) {
	if s.Submitting {
		return s, false
	}
	s.ErrorMessage = ""
	s.Submitting = true
	return s, true
}

// FailSubmit ends the attempt with a user-visible message. Last failure wins.
func (s FormState) FailSubmit(message string) FormState {
	s.Submitting = false
	s.ErrorMessage = message
	return s
}

func (s FormState) CompleteSubmit(redirectURL string) FormState {
	s.Submitting = false
	s.RedirectURL = redirectURL
	return s
}

// Request builds the submission payload for the session endpoint.
func (s FormState) Request() CreateCheckoutRequest {
	return CreateCheckoutRequest{
		Amount:    float64(s.Amount()),
		IsMonthly: s.IsMonthly,
	}
}
