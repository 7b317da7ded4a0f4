package repository

import (
	"context"
	"time"

	"github.com/kawatsu/compass/internal/domain"
)

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, query string, limit, offset int) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByGoal(ctx context.Context, goalID string, status *domain.TaskStatus) ([]*domain.Task, error)
	// ListOpen returns every task whose status is not done, in creation
	// order. This is the candidate set for the daily picker.
	ListOpen(ctx context.Context) ([]*domain.Task, error)
	// TitlesByGoal returns the set of existing task titles under a goal,
	// used for duplicate suppression when applying a WBS draft.
	TitlesByGoal(ctx context.Context, goalID string) (map[string]bool, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ReflectionRepo interface {
	Create(ctx context.Context, r *domain.Reflection) error
	// ListSince returns reflections on or after the given date, newest
	// first (date desc, then insertion order desc).
	ListSince(ctx context.Context, since time.Time) ([]*domain.Reflection, error)
}

type SuggestionRepo interface {
	Create(ctx context.Context, s *domain.Suggestion) error
	// Latest returns the most recently stored suggestion of the given
	// type, or nil when none exists.
	Latest(ctx context.Context, typ domain.SuggestionType) (*domain.Suggestion, error)
	// LatestInRange returns the most recent suggestion of the given type
	// dated within [from, to], or nil.
	LatestInRange(ctx context.Context, typ domain.SuggestionType, from, to time.Time) (*domain.Suggestion, error)
	Update(ctx context.Context, s *domain.Suggestion) error
}

type IntegrationRepo interface {
	// Upsert stores the integration, replacing any existing row with the
	// same kind and key.
	Upsert(ctx context.Context, in *domain.Integration) error
	Get(ctx context.Context, kind domain.IntegrationKind, key string) (*domain.Integration, error)
}
