package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderation and analytics (admin accounts only)",
	Long: `Moderation commands for admin accounts. The backend enforces the
role check; a regular account gets a permission error without losing
its session.

Subcommands:
  users      List every registered traveler
  block      Block a traveler
  unblock    Unblock a traveler
  stats      Show the moderation dashboard summary
  analytics  Show signup and plan activity over time
  plans      List every travel plan on the platform`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every registered traveler",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		users, err := client.Admin.Users(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		for _, user := range users {
			status := ""
			if user.IsBlocked {
				status = "  [blocked]"
			}
			fmt.Printf("%s  %-24s %s%s\n", user.ID, user.FullName, user.Email, status)
		}
		return nil
	},
}

var adminBlockCmd = &cobra.Command{
	Use:   "block <id>",
	Short: "Block a traveler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBlocked(cmd, args[0], true)
	},
}

var adminUnblockCmd = &cobra.Command{
	Use:   "unblock <id>",
	Short: "Unblock a traveler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBlocked(cmd, args[0], false)
	},
}

func setBlocked(cmd *cobra.Command, userID string, blocked bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
		return err
	}

	if err := client.Admin.SetBlocked(cmd.Context(), userID, blocked); err != nil {
		return fmt.Errorf("failed to update block state: %w", err)
	}
	if blocked {
		fmt.Printf("Blocked %s\n", userID)
	} else {
		fmt.Printf("Unblocked %s\n", userID)
	}
	return nil
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the moderation dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		stats, err := client.Admin.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}

		fmt.Printf("Users:   %d (%d blocked)\n", stats.TotalUsers, stats.BlockedUsers)
		fmt.Printf("Plans:   %d\n", stats.TotalPlans)
		fmt.Printf("Reviews: %d\n", stats.TotalReviews)
		return nil
	},
}

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show signup and plan activity over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, _ := cmd.Flags().GetString("range")

		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		points, err := client.Admin.Analytics(cmd.Context(), rng)
		if err != nil {
			return fmt.Errorf("failed to fetch analytics: %w", err)
		}

		for _, point := range points {
			fmt.Printf("%s  users +%d  plans +%d\n", point.Date, point.NewUsers, point.NewPlans)
		}
		return nil
	},
}

var adminPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List every travel plan on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		plans, err := client.Admin.TravelPlans(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		printPlans(plans)
		return nil
	},
}

func init() {
	adminAnalyticsCmd.Flags().String("range", "30d", "time range (7d, 30d, 90d)")

	for _, sub := range []*cobra.Command{
		adminUsersCmd, adminBlockCmd, adminUnblockCmd,
		adminStatsCmd, adminAnalyticsCmd, adminPlansCmd,
	} {
		addCredentialFlags(sub)
		adminCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(adminCmd)
}
