package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly/core"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Start or verify a premium subscription checkout",
	Long: `Start a hosted checkout session for the premium tier, or verify one
after the payment provider redirects back.

Examples:
  roamly subscribe start --plan MONTHLY
  roamly subscribe verify cs_test_a1b2c3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var subscribeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Create a checkout session and print its URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawPlan, _ := cmd.Flags().GetString("plan")

		plan := core.SubscriptionPlan(strings.ToUpper(strings.TrimSpace(rawPlan)))
		if plan != core.PlanMonthly && plan != core.PlanYearly {
			return fmt.Errorf("--plan must be MONTHLY or YEARLY")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		checkout, err := client.Payments.CreateCheckoutSession(cmd.Context(), plan)
		if err != nil {
			return fmt.Errorf("failed to create checkout session: %w", err)
		}

		fmt.Printf("Session: %s\n", checkout.ID)
		fmt.Printf("Open this URL to pay:\n  %s\n", checkout.URL)
		return nil
	},
}

var subscribeVerifyCmd = &cobra.Command{
	Use:   "verify <session-id>",
	Short: "Verify a completed checkout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		verification, err := client.Payments.VerifySession(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to verify session: %w", err)
		}

		if verification.Verified {
			fmt.Printf("Payment confirmed (%s plan).\n", verification.Plan)
		} else {
			fmt.Printf("Not confirmed: status is %q.\n", verification.PaymentStatus)
		}
		return nil
	},
}

func init() {
	subscribeStartCmd.Flags().String("plan", "MONTHLY", "billing period (MONTHLY, YEARLY)")
	addCredentialFlags(subscribeStartCmd)
	addCredentialFlags(subscribeVerifyCmd)

	subscribeCmd.AddCommand(subscribeStartCmd)
	subscribeCmd.AddCommand(subscribeVerifyCmd)
	rootCmd.AddCommand(subscribeCmd)
}
