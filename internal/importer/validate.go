package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/kawatsu/compass/internal/domain"
)

// maxEffortMin mirrors the task service limit on effort estimates.
const maxEffortMin = 600

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateGoal(&schema.Goal)...)
	errs = append(errs, validateTasks(schema.Tasks)...)

	return errs
}

func validateGoal(g *GoalImport) []error {
	var errs []error

	if strings.TrimSpace(g.Title) == "" {
		errs = append(errs, fmt.Errorf("goal.title is required"))
	}
	errs = append(errs, validateOptionalDate("goal.deadline", g.Deadline)...)

	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error

	titles := make(map[string]bool)
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		title := strings.TrimSpace(t.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		} else if titles[title] {
			errs = append(errs, fmt.Errorf("%s.title: duplicate title %q", prefix, title))
		} else {
			titles[title] = true
		}

		if t.Status != "" && !validStatus(t.Status) {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Impact != nil && (*t.Impact < 1 || *t.Impact > 5) {
			errs = append(errs, fmt.Errorf("%s.impact must be between 1 and 5", prefix))
		}
		if t.EffortMin != nil && (*t.EffortMin < 0 || *t.EffortMin > maxEffortMin) {
			errs = append(errs, fmt.Errorf("%s.effort_min must be between 0 and %d", prefix, maxEffortMin))
		}

		errs = append(errs, validateOptionalDate(prefix+".due", t.Due)...)
	}

	return errs
}

func validStatus(s string) bool {
	return domain.ValidTaskStatuses[s]
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
