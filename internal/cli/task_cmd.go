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

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskStatusCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var goalRef, title, due string
	var impact, effort int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goalRef)
			if err != nil {
				return err
			}

			t := &domain.Task{
				GoalID:    goalID,
				Title:     title,
				Impact:    impact,
				EffortMin: effort,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", strings.TrimSpace(due))
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.Due = &d
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Created task %s %s\n", formatter.Bold(t.Title), formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&goalRef, "goal", "", "Goal ID or title")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().IntVar(&impact, "impact", 1, "Impact 1-5")
	cmd.Flags().IntVar(&effort, "effort", 0, "Estimated minutes (0 = default 30)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var goalRef, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goalRef)
			if err != nil {
				return err
			}

			var filter *domain.TaskStatus
			if status != "" {
				s := domain.TaskStatus(status)
				filter = &s
			}

			tasks, err := app.Tasks.ListByGoal(ctx, goalID, filter)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&goalRef, "goal", "", "Goal ID or title")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending|doing|done)")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, due string
	var impact, effort int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("impact") {
				t.Impact = impact
			}
			if cmd.Flags().Changed("effort") {
				t.EffortMin = effort
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					t.Due = nil
				} else {
					d, err := time.Parse("2006-01-02", strings.TrimSpace(due))
					if err != nil {
						return fmt.Errorf("invalid due date %q: %w", due, err)
					}
					t.Due = &d
				}
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s\n", formatter.Bold(t.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().IntVar(&impact, "impact", 0, "Impact 1-5")
	cmd.Flags().IntVar(&effort, "effort", 0, "Estimated minutes")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, empty clears it)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetStatus(ctx, taskID, domain.TaskDone); err != nil {
				return err
			}
			fmt.Printf("%s Task %s done\n", formatter.StyleGreen.Render("✔"), formatter.TruncID(taskID))
			return nil
		},
	}
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a task status (pending|doing|done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status := domain.TaskStatus(args[1])
			if err := app.Tasks.SetStatus(ctx, taskID, status); err != nil {
				return err
			}
			fmt.Printf("Task %s is now %s\n", formatter.TruncID(taskID), formatter.StatusPill(status))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", taskID)
			return nil
		},
	}
}
