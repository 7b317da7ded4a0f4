package service

import (
	"context"
	"time"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/contract"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/wbs"
)

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, query string, limit, offset int) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByGoal(ctx context.Context, goalID string, status *domain.TaskStatus) ([]*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	// PlanToday scores open tasks and returns today's shortlist for the
	// given minutes budget (0 selects the default).
	PlanToday(ctx context.Context, minutes int) (*contract.PlanResponse, error)

	// Availability computes the free minutes of the day from the bound
	// calendar source. Source failures are returned, never masked as a
	// fully free day.
	Availability(ctx context.Context, day time.Time, workStart, workEnd string) (*contract.AvailabilityResponse, error)
}

type ReflectionService interface {
	Create(ctx context.Context, date time.Time, text string, mood int) (*domain.Reflection, error)
	Recent(ctx context.Context, days int) ([]*domain.Reflection, error)
	// Summarize condenses the recent reflections into a short review.
	Summarize(ctx context.Context, days int) (coach.ReflectionSummary, int, error)
}

type IntegrationService interface {
	// BindICSFeed stores the secret ICS feed URL as the default calendar.
	BindICSFeed(ctx context.Context, url string) error
	// BindCalendarAPI stores a Google Calendar ID as the default calendar.
	BindCalendarAPI(ctx context.Context, calendarID string) error
	// Source resolves the bound calendar integration into a busy-interval
	// source. Returns ErrNoIntegration when nothing is bound.
	Source(ctx context.Context) (calendar.Source, error)
	// Current returns the binding Source would use, or nil when none exists.
	Current(ctx context.Context) (*domain.Integration, error)
}

type ImportService interface {
	// ImportGoal stores a goal and its tasks from a JSON file in one
	// transaction.
	ImportGoal(ctx context.Context, path string) (*contract.ImportResult, error)
}

type WbsService interface {
	// Draft proposes a task breakdown for a goal without storing anything.
	Draft(ctx context.Context, goalID string, req wbs.Request) (*contract.WbsResult, error)
	// Apply stores drafted items as pending tasks under the goal, skipping
	// titles that already exist. The whole apply is one transaction.
	Apply(ctx context.Context, goalID string, items []contract.WbsItem) (*contract.WbsApplyResult, error)
}
