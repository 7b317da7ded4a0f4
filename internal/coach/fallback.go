package coach

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/domain"
)

// fallbackCoachLine is returned whenever no better nudge can be produced.
const fallbackCoachLine = "Spend two minutes writing the first heading."

// DeterministicCoachLine produces a starter nudge without any model call.
// Short tasks get a "just do it" push, long ones a "carve off a slice" push.
func DeterministicCoachLine(task domain.Task) string {
	title := strings.TrimSpace(task.Title)
	if title == "" {
		return fallbackCoachLine
	}
	effort := task.EffectiveEffort()
	switch {
	case effort <= 15:
		return fmt.Sprintf("Knock out %q now, it fits in %d minutes.", title, effort)
	case effort <= 45:
		return fmt.Sprintf("Set a timer for %d minutes and start %q.", effort, title)
	default:
		return fmt.Sprintf("Break off the first 10 minutes of %q and begin.", title)
	}
}

// DeterministicSummary is the canned weekly summary used when the model is
// unavailable or its output unusable.
func DeterministicSummary() ReflectionSummary {
	return ReflectionSummary{
		Summary:      "Start small and keep moving. Keep task slices around 30 minutes.",
		Improvements: []string{"Start 5 minutes in the morning", "Slice tasks to 30 minutes", "Pull deadlines forward"},
	}
}
