package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
	"github.com/kawatsu/compass/internal/review"
)

func newDaemonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the weekly review scheduler until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			runner := review.NewRunner(app.Review, app.Loc)
			runner.Start(ctx)
			defer runner.Stop()

			next := runner.NextRun(time.Now().In(app.Loc))
			fmt.Printf("Scheduler running. Next weekly review: %s\n",
				formatter.Bold(next.Format("Mon Jan 2 15:04")))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig

			fmt.Println(formatter.Dim("Shutting down."))
			return nil
		},
	}
}
