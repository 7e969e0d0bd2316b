package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly/core"
)

var travelersCmd = &cobra.Command{
	Use:   "travelers",
	Short: "Browse the traveler directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var travelersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List travelers",
	Long: `List travelers from the public directory. The listing is served
through the client-side read cache, so repeating the same search within
the cache window does not hit the network again.

Examples:
  roamly travelers list
  roamly travelers list --search alice --page 2 --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newClient()
		if err != nil {
			return err
		}

		travelers, err := client.Users.List(cmd.Context(), core.TravelerFilter{
			Search: search,
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("failed to list travelers: %w", err)
		}

		if len(travelers) == 0 {
			fmt.Println("No travelers found.")
			return nil
		}
		for _, traveler := range travelers {
			fmt.Printf("%s  %s", traveler.ID, traveler.FullName)
			if len(traveler.Interests) > 0 {
				fmt.Printf("  (%v)", traveler.Interests)
			}
			fmt.Println()
		}
		return nil
	},
}

var travelersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one traveler profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		traveler, err := client.Users.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch traveler: %w", err)
		}

		fmt.Printf("Name:      %s\n", traveler.FullName)
		if traveler.Bio != "" {
			fmt.Printf("Bio:       %s\n", traveler.Bio)
		}
		if len(traveler.Interests) > 0 {
			fmt.Printf("Interests: %v\n", traveler.Interests)
		}
		if len(traveler.VisitedCountries) > 0 {
			fmt.Printf("Visited:   %v\n", traveler.VisitedCountries)
		}
		return nil
	},
}

func init() {
	travelersListCmd.Flags().String("search", "", "filter by name")
	travelersListCmd.Flags().Int("page", 0, "page number")
	travelersListCmd.Flags().Int("limit", 0, "page size")

	travelersCmd.AddCommand(travelersListCmd)
	travelersCmd.AddCommand(travelersShowCmd)
	rootCmd.AddCommand(travelersCmd)
}
