package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read traveler reviews and rating stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var reviewsUserCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "List reviews left on a traveler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		reviews, err := client.Reviews.ForUser(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}

		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}
		for _, review := range reviews {
			reviewer := review.ReviewerID
			if review.Reviewer != nil && review.Reviewer.FullName != "" {
				reviewer = review.Reviewer.FullName
			}
			fmt.Printf("%d/5 by %s", review.Rating, reviewer)
			if review.Comment != "" {
				fmt.Printf(": %s", review.Comment)
			}
			fmt.Println()
		}
		return nil
	},
}

var reviewsStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show a traveler's average rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		stats, err := client.Reviews.Stats(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch rating stats: %w", err)
		}

		fmt.Printf("Average: %.1f across %d reviews\n", stats.AverageRating, stats.TotalReviews)
		for star := 5; star >= 1; star-- {
			key := fmt.Sprintf("%d", star)
			fmt.Printf("  %d star: %d\n", star, stats.RatingDistribution[key])
		}
		return nil
	},
}

func init() {
	reviewsCmd.AddCommand(reviewsUserCmd)
	reviewsCmd.AddCommand(reviewsStatsCmd)
	rootCmd.AddCommand(reviewsCmd)
}
