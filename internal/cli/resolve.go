package cli

import (
	"context"
	"fmt"
	"strings"
)

func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.List(ctx, "", 0, 0)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	// 2. UUID prefix match
	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	// 3. Unique title match (case-insensitive)
	if len(matches) == 0 {
		for _, g := range goals {
			if strings.EqualFold(g.Title, input) {
				matches = append(matches, g.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	goals, err := app.Goals.List(ctx, "", 0, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, g := range goals {
		tasks, err := app.Tasks.ListByGoal(ctx, g.ID, nil)
		if err != nil {
			return "", err
		}
		for _, t := range tasks {
			if t.ID == input {
				return t.ID, nil
			}
			if strings.HasPrefix(t.ID, input) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
