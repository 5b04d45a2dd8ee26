package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordhope/donation-site/internal/donation"
	"github.com/wordhope/donation-site/pkg/logger"
)

var (
	donateEndpoint string
	donateTier     int64
	donateAmount   string
	donateMonthly  bool
)

var donateCmd = &cobra.Command{
	Use:   "donate",
	Short: "Create a checkout session against a running server",
	Long:  `Drive the donation form flow from the CLI: pick a tier or a custom amount and request a checkout session`,
	Run: func(cmd *cobra.Command, args []string) {
		runDonate()
	},
}

func runDonate() {
	log := logger.L()

	state := donation.NewFormState()
	if donateTier != 0 {
		state = state.SelectTier(donateTier)
	}
	if donateAmount != "" {
		state = state.SetCustomAmount(donateAmount)
	}
	if donateMonthly {
		state = state.ToggleMonthly()
	}

	state, ok := state.BeginSubmit()
	if !ok {
		fmt.Fprintln(os.Stderr, "submission already in flight")
		os.Exit(1)
	}

	client := donation.NewClient(donateEndpoint, 30*time.Second, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := client.Submit(ctx, state.Request())
	if err != nil {
		state = state.FailSubmit(err.Error())
		fmt.Fprintf(os.Stderr, "donation failed: %s\n", state.ErrorMessage)
		os.Exit(1)
	}

	state = state.CompleteSubmit(url)
	fmt.Println(state.RedirectURL)
}

func init() {
	donateCmd.Flags().StringVar(&donateEndpoint, "endpoint", "http://localhost:8080/create-checkout-session", "Checkout endpoint URL")
	donateCmd.Flags().Int64Var(&donateTier, "tier", 0, "Preset tier amount in dollars")
	donateCmd.Flags().StringVar(&donateAmount, "amount", "", "Custom amount in dollars, overrides the tier")
	donateCmd.Flags().BoolVar(&donateMonthly, "monthly", false, "Mark the donation as monthly")

	rootCmd.AddCommand(donateCmd)
}
