package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kawatsu/compass/internal/cli/formatter"
	"github.com/kawatsu/compass/internal/domain"
)

func newIntegrationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integration",
		Short: "Calendar integrations",
	}

	cmd.AddCommand(
		newIntegrationICSCmd(app),
		newIntegrationGCalCmd(app),
		newIntegrationLoginCmd(app),
		newIntegrationShowCmd(app),
	)

	return cmd
}

func newIntegrationICSCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ics URL",
		Short: "Bind a secret ICS feed URL as the calendar source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Integrations.BindICSFeed(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s ICS feed bound\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}
}

func newIntegrationGCalCmd(app *App) *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "gcal",
		Short: "Bind the Google Calendar API as the calendar source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Integrations.BindCalendarAPI(context.Background(), calendarID); err != nil {
				return err
			}
			fmt.Printf("%s Google Calendar bound (run `compass integration login` to authorize)\n",
				formatter.StyleGreen.Render("✔"))
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", `Calendar ID (default "primary")`)

	return cmd
}

func newIntegrationLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize read access to Google Calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.GCalAuth == nil {
				return fmt.Errorf("no OAuth credentials configured; place credentials.json in the compass config directory")
			}
			if err := app.GCalAuth.Login(context.Background()); err != nil {
				return err
			}
			fmt.Printf("%s Authorized\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}
}

func newIntegrationShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active calendar integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := app.Integrations.Current(context.Background())
			if err != nil {
				return err
			}
			if in == nil {
				fmt.Println(formatter.Dim("No calendar integration bound."))
				return nil
			}

			switch in.Kind {
			case domain.IntegrationICSFeed:
				// The feed URL embeds a secret; never echo it in full.
				fmt.Printf("%s %s\n", formatter.Bold("ICS feed"), formatter.Dim("(URL hidden)"))
			case domain.IntegrationCalendarAPI:
				fmt.Printf("%s %s\n", formatter.Bold("Google Calendar API"), formatter.StyleFg.Render(in.Value))
			default:
				fmt.Printf("%s\n", formatter.Bold(string(in.Kind)))
			}
			return nil
		},
	}
}
