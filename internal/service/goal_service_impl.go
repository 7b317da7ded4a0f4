package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
)

type goalService struct {
	goals repository.GoalRepo
}

func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Area == "" {
		g.Area = "general"
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context, query string, limit, offset int) ([]*domain.Goal, error) {
	return s.goals.List(ctx, query, limit, offset)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
