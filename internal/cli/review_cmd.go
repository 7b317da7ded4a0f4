package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Weekly reviews",
	}

	cmd.AddCommand(
		newReviewRunCmd(app),
		newReviewShowCmd(app),
	)

	return cmd
}

func newReviewRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate (or regenerate) this week's review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := formatter.StartSpinner("Building your weekly review...")
			_, err := app.Review.UpsertThisWeek(ctx)
			stop()
			if err != nil {
				return err
			}

			payload, _, err := app.Review.Latest(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeeklyReview(payload))
			return nil
		},
	}
}

func newReviewShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the latest weekly review",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, _, err := app.Review.Latest(context.Background())
			if err != nil {
				return err
			}
			if payload == nil {
				fmt.Println(formatter.Dim("No weekly review yet. Run `compass review run`."))
				return nil
			}
			fmt.Print(formatter.FormatWeeklyReview(payload))
			return nil
		},
	}
}
