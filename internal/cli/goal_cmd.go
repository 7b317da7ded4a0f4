package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
	"github.com/kawatsu/compass/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalInspectCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
		newGoalImportCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, why, kgi, area, deadline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && app.Interactive {
				if err := goalAddForm(&title, &why, &kgi, &area, &deadline).Run(); err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("goal title is required (use --title or run interactively)")
			}

			g := &domain.Goal{
				Title: title,
				Why:   why,
				KGI:   kgi,
				Area:  area,
			}
			if deadline != "" {
				d, err := time.Parse("2006-01-02", strings.TrimSpace(deadline))
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				g.Deadline = &d
			}

			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}

			fmt.Printf("Created goal %s %s\n", formatter.Bold(g.Title), formatter.TruncID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&why, "why", "", "Why the goal matters")
	cmd.Flags().StringVar(&kgi, "kgi", "", "Measurable outcome")
	cmd.Flags().StringVar(&area, "area", "", "Life area (default: general)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var query string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background(), query, limit, offset)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGoalList(goals))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Filter by title substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum goals to show (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Goals to skip")

	return cmd
}

func newGoalInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show goal details and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByGoal(ctx, goalID, nil)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatGoalInspect(g, tasks))
			return nil
		},
	}
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var title, why, kgi, area, deadline string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				g.Title = title
			}
			if cmd.Flags().Changed("why") {
				g.Why = why
			}
			if cmd.Flags().Changed("kgi") {
				g.KGI = kgi
			}
			if cmd.Flags().Changed("area") {
				g.Area = area
			}
			if cmd.Flags().Changed("deadline") {
				if deadline == "" {
					g.Deadline = nil
				} else {
					d, err := time.Parse("2006-01-02", strings.TrimSpace(deadline))
					if err != nil {
						return fmt.Errorf("invalid deadline %q: %w", deadline, err)
					}
					g.Deadline = &d
				}
			}

			if err := app.Goals.Update(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Updated goal %s\n", formatter.Bold(g.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&why, "why", "", "Why the goal matters")
	cmd.Flags().StringVar(&kgi, "kgi", "", "Measurable outcome")
	cmd.Flags().StringVar(&area, "area", "", "Life area")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD, empty clears it)")

	return cmd
}

func newGoalImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a goal and its tasks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportGoal(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported goal %s %s with %d task(s)\n",
				formatter.Bold(result.GoalTitle), formatter.TruncID(result.GoalID), result.TaskCount)
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, goalID); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", goalID)
			return nil
		},
	}
}
