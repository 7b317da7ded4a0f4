package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kawatsu/compass/internal/domain"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = &d
	}
}

func WithArea(a string) GoalOption {
	return func(g *domain.Goal) {
		g.Area = a
	}
}

func WithWhy(w string) GoalOption {
	return func(g *domain.Goal) {
		g.Why = w
	}
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Area:      "general",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithImpact(i int) TaskOption {
	return func(t *domain.Task) {
		t.Impact = i
	}
}

func WithEffort(m int) TaskOption {
	return func(t *domain.Task) {
		t.EffortMin = m
	}
}

func WithDue(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Due = &d
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(goalID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     title,
		Status:    domain.TaskPending,
		Impact:    1,
		EffortMin: 30,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reflection options
type ReflectionOption func(*domain.Reflection)

func WithMood(m int) ReflectionOption {
	return func(r *domain.Reflection) {
		r.Mood = m
	}
}

func WithText(s string) ReflectionOption {
	return func(r *domain.Reflection) {
		r.Text = s
	}
}

func NewTestReflection(date time.Time, opts ...ReflectionOption) *domain.Reflection {
	r := &domain.Reflection{
		ID:        uuid.New().String(),
		Date:      date,
		Mood:      3,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
