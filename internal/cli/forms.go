package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kawatsu/compass/internal/cli/formatter"
)

// compassHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func compassHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalRating(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("use a number from 1 to 5")
	}
	return nil
}

// goalAddForm collects the fields of a new goal interactively.
func goalAddForm(title, why, kgi, area, deadline *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("Publish the newsletter").
				Value(title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Why does it matter? (optional)").
				Value(why),
			huh.NewInput().
				Title("How will you measure it? (optional)").
				Value(kgi),
			huh.NewInput().
				Title("Area").
				Placeholder("general").
				Value(area),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, blank for none)").
				Placeholder("2026-03-31").
				Value(deadline).
				Validate(validateOptionalDate),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)
}

// reflectAddForm collects a reflection entry interactively.
func reflectAddForm(text, mood *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("How did today go?").
				Value(text).
				Validate(validateRequired),
			huh.NewInput().
				Title("Mood 1-5 (blank for 3)").
				Placeholder("3").
				Value(mood).
				Validate(validateOptionalRating),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)
}
