package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/gcal"
	"github.com/kawatsu/compass/internal/review"
	"github.com/kawatsu/compass/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals        service.GoalService
	Tasks        service.TaskService
	Plan         service.PlanService
	Reflections  service.ReflectionService
	Integrations service.IntegrationService
	Wbs          service.WbsService
	Import       service.ImportService
	Review       *review.Service

	GCalAuth *gcal.Auth
	Loc      *time.Location

	// Interactive is true when stdin is a terminal; commands fall back to
	// flag-only behavior when it is false.
	Interactive bool
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "compass",
		Short: "Goal-driven daily planner and coach",
	}

	root.AddCommand(
		newGoalCmd(app),
		newTaskCmd(app),
		newPlanCmd(app),
		newReflectCmd(app),
		newReviewCmd(app),
		newWbsCmd(app),
		newIntegrationCmd(app),
		newDaemonCmd(app),
	)

	return root
}
