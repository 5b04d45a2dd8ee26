package donation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordhope/donation-site/internal/donation"
)

var _ = Describe("ResolveAmount", func() {
	It("prefers a valid custom entry over the selected tier", func() {
		Expect(donation.ResolveAmount(100, "75")).To(Equal(int64(75)))
	})

	It("rounds fractional custom entries to the nearest dollar", func() {
		Expect(donation.ResolveAmount(50, "75.60")).To(Equal(int64(76)))
		Expect(donation.ResolveAmount(50, "75.4")).To(Equal(int64(75)))
	})

	It("falls back to the tier when the custom field is empty", func() {
		Expect(donation.ResolveAmount(250, "")).To(Equal(int64(250)))
	})

	It("falls back to the tier when the custom field is not a number", func() {
		Expect(donation.ResolveAmount(100, "abc")).To(Equal(int64(100)))
	})

	It("falls back to the tier for zero and negative custom entries", func() {
		Expect(donation.ResolveAmount(100, "0")).To(Equal(int64(100)))
		Expect(donation.ResolveAmount(100, "-5")).To(Equal(int64(100)))
	})

	It("falls back to the tier for non-finite custom entries", func() {
		Expect(donation.ResolveAmount(100, "NaN")).To(Equal(int64(100)))
		Expect(donation.ResolveAmount(100, "Inf")).To(Equal(int64(100)))
	})

	It("ignores surrounding whitespace in the custom field", func() {
		Expect(donation.ResolveAmount(50, "  30  ")).To(Equal(int64(30)))
	})
})

var _ = Describe("ResolveSource", func() {
	It("marks a valid custom entry as the winning input", func() {
		src := donation.ResolveSource(100, "75")
		Expect(src.Mode).To(Equal(donation.ModeCustom))
		Expect(src.Value).To(Equal(int64(75)))
	})

	It("marks the tier as the winning input when the custom entry is invalid", func() {
		src := donation.ResolveSource(100, "not a number")
		Expect(src.Mode).To(Equal(donation.ModeTier))
		Expect(src.Value).To(Equal(int64(100)))
	})
})

var _ = Describe("FormState", func() {
	It("starts on the default tier with nothing custom", func() {
		state := donation.NewFormState()
		Expect(state.SelectedTier).To(Equal(donation.DefaultTier))
		Expect(state.CustomAmount).To(BeEmpty())
		Expect(state.Amount()).To(Equal(donation.DefaultTier))
	})

	Describe("SelectTier", func() {
		It("clears the custom entry and any visible error", func() {
			state := donation.NewFormState().
				SetCustomAmount("75").
				FailSubmit("previous failure")

			state = state.SelectTier(100)

			Expect(state.SelectedTier).To(Equal(int64(100)))
			Expect(state.CustomAmount).To(BeEmpty())
			Expect(state.ErrorMessage).To(BeEmpty())
			Expect(state.Amount()).To(Equal(int64(100)))
		})

		It("is idempotent", func() {
			once := donation.NewFormState().SelectTier(250)
			twice := once.SelectTier(250)
			Expect(twice).To(Equal(once))
		})

		It("ignores tiers that are not offered", func() {
			state := donation.NewFormState().SetCustomAmount("75")
			unchanged := state.SelectTier(42)
			Expect(unchanged).To(Equal(state))
		})
	})

	Describe("ToggleMonthly", func() {
		It("flips the flag without touching the amount", func() {
			state := donation.NewFormState().SetCustomAmount("75").ToggleMonthly()
			Expect(state.IsMonthly).To(BeTrue())
			Expect(state.Amount()).To(Equal(int64(75)))

			state = state.ToggleMonthly()
			Expect(state.IsMonthly).To(BeFalse())
		})
	})

	Describe("BeginSubmit", func() {
		It("refuses a second attempt while one is in flight", func() {
			state, ok := donation.NewFormState().BeginSubmit()
			Expect(ok).To(BeTrue())
			Expect(state.Submitting).To(BeTrue())

			_, ok = state.BeginSubmit()
			Expect(ok).To(BeFalse())
		})

		It("clears the previous error when a fresh attempt starts", func() {
			state := donation.NewFormState().FailSubmit("boom")
			state, ok := state.BeginSubmit()
			Expect(ok).To(BeTrue())
			Expect(state.ErrorMessage).To(BeEmpty())
		})
	})

	Describe("FailSubmit", func() {
		It("keeps only the latest failure message", func() {
			state, _ := donation.NewFormState().BeginSubmit()
			state = state.FailSubmit("first")
			state, _ = state.BeginSubmit()
			state = state.FailSubmit("second")

			Expect(state.Submitting).To(BeFalse())
			Expect(state.ErrorMessage).To(Equal("second"))
		})
	})

	Describe("Request", func() {
		It("builds the payload from the resolved amount and monthly flag", func() {
			state := donation.NewFormState().
				SelectTier(100).
				SetCustomAmount("75.60").
				ToggleMonthly()

			req := state.Request()
			Expect(req.Amount).To(Equal(float64(76)))
			Expect(req.IsMonthly).To(BeTrue())
		})
	})
})
