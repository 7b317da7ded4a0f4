package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/domain"
)

// ConvertSchema turns a validated import schema into domain entities ready
// for storage. Fresh UUIDs are assigned; omitted fields get the same
// defaults the task service applies.
func ConvertSchema(schema *ImportSchema, now time.Time) (*domain.Goal, []*domain.Task) {
	goal := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(schema.Goal.Title),
		Why:       strings.TrimSpace(schema.Goal.Why),
		KGI:       strings.TrimSpace(schema.Goal.KGI),
		Area:      strings.TrimSpace(schema.Goal.Area),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if goal.Area == "" {
		goal.Area = "general"
	}
	goal.Deadline = parseDate(schema.Goal.Deadline)

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, ti := range schema.Tasks {
		t := &domain.Task{
			ID:        uuid.New().String(),
			GoalID:    goal.ID,
			Title:     strings.TrimSpace(ti.Title),
			Status:    domain.TaskPending,
			Impact:    1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if ti.Status != "" {
			t.Status = domain.TaskStatus(ti.Status)
		}
		if ti.Impact != nil {
			t.Impact = *ti.Impact
		}
		if ti.EffortMin != nil {
			t.EffortMin = *ti.EffortMin
		}
		t.Due = parseDate(ti.Due)
		tasks = append(tasks, t)
	}

	return goal, tasks
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &d
}
