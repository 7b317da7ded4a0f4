package domain

import "time"

// DefaultEffortMin is the assumed effort for tasks with no usable estimate.
const DefaultEffortMin = 30

type Task struct {
	ID     string
	GoalID string
	Title  string
	Status TaskStatus

	// Impact is a 1-5 rating of the task's contribution to its goal.
	Impact int
	// EffortMin is the estimated minutes to complete, 1-600.
	EffortMin int

	Due          *time.Time
	ParentTaskID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveEffort returns the effort estimate in minutes, falling back to
// DefaultEffortMin when the stored value is zero or negative.
func (t Task) EffectiveEffort() int {
	if t.EffortMin > 0 {
		return t.EffortMin
	}
	return DefaultEffortMin
}

// Open reports whether the task still competes for a spot in the daily plan.
func (t Task) Open() bool {
	return t.Status != TaskDone
}
