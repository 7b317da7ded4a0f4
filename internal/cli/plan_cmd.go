package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Daily planning",
	}

	cmd.AddCommand(
		newPlanTodayCmd(app),
		newPlanFreeCmd(app),
	)

	return cmd
}

func newPlanTodayCmd(app *App) *cobra.Command {
	var minutes int
	var fromCalendar, interactive bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Pick what to work on today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if fromCalendar {
				stop := formatter.StartSpinner("Checking your calendar...")
				avail, err := app.Plan.Availability(ctx, time.Now().In(app.Loc), "", "")
				stop()
				if err != nil {
					return fmt.Errorf("compute availability: %w", err)
				}
				minutes = avail.FreeMinutes
				if minutes == 0 {
					fmt.Println(formatter.Dim("No free time left in the work window today."))
					return nil
				}
			}

			if interactive && app.Interactive {
				return runTodayView(app, minutes)
			}

			stop := formatter.StartSpinner("Picking today's tasks...")
			resp, err := app.Plan.PlanToday(ctx, minutes)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes available today (0 = default 90)")
	cmd.Flags().BoolVar(&fromCalendar, "from-calendar", false, "Derive minutes from the bound calendar")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Work through the plan in a TUI")

	return cmd
}

func newPlanFreeCmd(app *App) *cobra.Command {
	var date, workStart, workEnd string

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Show free minutes computed from the calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day := time.Now().In(app.Loc)
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, app.Loc)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				day = d
			}

			stop := formatter.StartSpinner("Fetching calendar...")
			resp, err := app.Plan.Availability(ctx, day, workStart, workEnd)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatAvailability(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to inspect (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&workStart, "work-start", "", "Work window start (HH:MM, default 09:00)")
	cmd.Flags().StringVar(&workEnd, "work-end", "", "Work window end (HH:MM, default 18:00)")

	return cmd
}

func runTodayView(app *App, minutes int) error {
	m := newTodayModel(app, minutes)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
