package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
)

func newReflectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Daily reflections",
	}

	cmd.AddCommand(
		newReflectAddCmd(app),
		newReflectListCmd(app),
		newReflectSummaryCmd(app),
	)

	return cmd
}

func newReflectAddCmd(app *App) *cobra.Command {
	var text, date string
	var mood int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a reflection for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if text == "" && app.Interactive {
				var moodStr string
				if err := reflectAddForm(&text, &moodStr).Run(); err != nil {
					return err
				}
				if s := strings.TrimSpace(moodStr); s != "" {
					mood, _ = strconv.Atoi(s)
				}
			}
			if text == "" {
				return fmt.Errorf("reflection text is required (use --text or run interactively)")
			}

			var day time.Time
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, app.Loc)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				day = d
			}

			r, err := app.Reflections.Create(ctx, day, text, mood)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded reflection for %s %s\n",
				formatter.Bold(r.Date.Format("2006-01-02")), formatter.MoodFace(r.Mood))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Reflection text")
	cmd.Flags().IntVar(&mood, "mood", 0, "Mood 1-5 (0 = default 3)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func newReflectListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent reflections",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Reflections.Recent(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatReflectionList(recs))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Lookback window in days")

	return cmd
}

func newReflectSummaryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize recent reflections",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Reading your reflections...")
			sum, count, err := app.Reflections.Summarize(context.Background(), days)
			stop()
			if err != nil {
				return err
			}
			if days <= 0 {
				days = 7
			}
			fmt.Print(formatter.FormatReflectionSummary(sum, count, days))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Lookback window in days")

	return cmd
}
