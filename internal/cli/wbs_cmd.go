package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
	"github.com/kawatsu/compass/internal/wbs"
)

func newWbsCmd(app *App) *cobra.Command {
	var maxTasks int
	var noSpread, apply bool

	cmd := &cobra.Command{
		Use:   "wbs GOAL",
		Short: "Break a goal down into tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := wbs.Request{
				MaxTasks:            maxTasks,
				SpreadUntilDeadline: !noSpread,
			}

			stop := formatter.StartSpinner("Drafting a breakdown...")
			res, err := app.Wbs.Draft(ctx, goalID, req)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatWbsDraft(res))

			if !apply {
				fmt.Println(formatter.Dim("Run again with --apply to store these as tasks."))
				return nil
			}

			applied, err := app.Wbs.Apply(ctx, goalID, res.Items)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWbsApply(applied))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTasks, "max", wbs.DefaultMaxTasks, "Maximum tasks to propose (3-50)")
	cmd.Flags().BoolVar(&noSpread, "no-spread", false, "Do not spread due dates toward the goal deadline")
	cmd.Flags().BoolVar(&apply, "apply", false, "Store the drafted tasks under the goal")

	return cmd
}
