package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly/core"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse and manage travel plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var plansPublicCmd = &cobra.Command{
	Use:   "public",
	Short: "List public travel plans",
	Long: `List the public travel plan feed every visitor can see. No session
is required; results come through the client-side read cache.

Examples:
  roamly plans public
  roamly plans public --destination Portugal --travel-type FAMILY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		destination, _ := cmd.Flags().GetString("destination")
		travelType, _ := cmd.Flags().GetString("travel-type")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newClient()
		if err != nil {
			return err
		}

		plans, err := client.Plans.Public(cmd.Context(), core.PlanFilter{
			Destination: destination,
			TravelType:  core.TravelType(travelType),
			Page:        page,
			Limit:       limit,
		})
		if err != nil {
			return fmt.Errorf("failed to list public plans: %w", err)
		}

		printPlans(plans)
		return nil
	},
}

var plansMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own travel plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		plans, err := client.Plans.Mine(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		printPlans(plans)
		return nil
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a travel plan",
	Long: `Create a travel plan. Dates use the YYYY-MM-DD form the backend
expects.

Examples:
  roamly plans create --destination "Japan" --start 2026-10-01 --end 2026-10-14 \
    --travel-type SOLO --visibility PUBLIC`,
	RunE: func(cmd *cobra.Command, args []string) error {
		destination, _ := cmd.Flags().GetString("destination")
		city, _ := cmd.Flags().GetString("city")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		travelType, _ := cmd.Flags().GetString("travel-type")
		visibility, _ := cmd.Flags().GetString("visibility")
		description, _ := cmd.Flags().GetString("description")
		minBudget, _ := cmd.Flags().GetInt("min-budget")
		maxBudget, _ := cmd.Flags().GetInt("max-budget")

		if destination == "" {
			return fmt.Errorf("--destination is required")
		}
		if start == "" || end == "" {
			return fmt.Errorf("--start and --end are required")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		plan, err := client.Plans.Create(cmd.Context(), core.TravelPlanInput{
			Destination: destination,
			City:        city,
			StartDate:   start,
			EndDate:     end,
			TravelType:  core.TravelType(travelType),
			Visibility:  core.Visibility(visibility),
			Description: description,
			MinBudget:   minBudget,
			MaxBudget:   maxBudget,
		})
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		fmt.Printf("Created plan %s (%s)\n", plan.ID, plan.Destination)
		return nil
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one travel plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		plan, err := client.Plans.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch plan: %w", err)
		}

		fmt.Printf("Destination: %s\n", plan.Destination)
		if plan.City != "" {
			fmt.Printf("City:        %s\n", plan.City)
		}
		fmt.Printf("Dates:       %s to %s\n",
			plan.StartDate.Format("2006-01-02"), plan.EndDate.Format("2006-01-02"))
		fmt.Printf("Type:        %s\n", plan.TravelType)
		fmt.Printf("Visibility:  %s\n", plan.Visibility)
		if plan.Description != "" {
			fmt.Printf("Notes:       %s\n", plan.Description)
		}
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your travel plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		if err := client.Plans.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func printPlans(plans []core.TravelPlan) {
	if len(plans) == 0 {
		fmt.Println("No plans found.")
		return
	}
	for _, plan := range plans {
		fmt.Printf("%s  %-20s %s to %s  [%s/%s]\n",
			plan.ID, plan.Destination,
			plan.StartDate.Format("2006-01-02"), plan.EndDate.Format("2006-01-02"),
			plan.TravelType, plan.Visibility)
	}
}

func init() {
	plansPublicCmd.Flags().String("destination", "", "filter by destination")
	plansPublicCmd.Flags().String("travel-type", "", "filter by travel type (SOLO, FAMILY, FRIENDS)")
	plansPublicCmd.Flags().Int("page", 0, "page number")
	plansPublicCmd.Flags().Int("limit", 0, "page size")

	plansCreateCmd.Flags().String("destination", "", "destination country")
	plansCreateCmd.Flags().String("city", "", "destination city")
	plansCreateCmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
	plansCreateCmd.Flags().String("end", "", "end date (YYYY-MM-DD)")
	plansCreateCmd.Flags().String("travel-type", "SOLO", "travel type (SOLO, FAMILY, FRIENDS)")
	plansCreateCmd.Flags().String("visibility", "PRIVATE", "visibility (PUBLIC, PRIVATE)")
	plansCreateCmd.Flags().String("description", "", "free-form notes")
	plansCreateCmd.Flags().Int("min-budget", 0, "minimum budget")
	plansCreateCmd.Flags().Int("max-budget", 0, "maximum budget")
	addCredentialFlags(plansCreateCmd)
	addCredentialFlags(plansMineCmd)
	addCredentialFlags(plansShowCmd)
	addCredentialFlags(plansDeleteCmd)

	plansCmd.AddCommand(plansPublicCmd)
	plansCmd.AddCommand(plansMineCmd)
	plansCmd.AddCommand(plansCreateCmd)
	plansCmd.AddCommand(plansShowCmd)
	plansCmd.AddCommand(plansDeleteCmd)
	rootCmd.AddCommand(plansCmd)
}
