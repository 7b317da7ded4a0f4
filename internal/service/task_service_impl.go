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

// MaxEffortMin caps a single task estimate.
const MaxEffortMin = 600

type taskService struct {
	tasks repository.TaskRepo
	goals repository.GoalRepo
}

func NewTaskService(tasks repository.TaskRepo, goals repository.GoalRepo) TaskService {
	return &taskService{tasks: tasks, goals: goals}
}

func validateTask(t *domain.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Impact < 1 || t.Impact > 5 {
		return fmt.Errorf("impact must be between 1 and 5, got %d", t.Impact)
	}
	if t.EffortMin < 0 || t.EffortMin > MaxEffortMin {
		return fmt.Errorf("effort must be between 0 and %d minutes, got %d", MaxEffortMin, t.EffortMin)
	}
	if t.Status != "" && !domain.ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if _, err := s.goals.GetByID(ctx, t.GoalID); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if t.Impact == 0 {
		t.Impact = 1
	}
	if err := validateTask(t); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByGoal(ctx context.Context, goalID string, status *domain.TaskStatus) ([]*domain.Task, error) {
	return s.tasks.ListByGoal(ctx, goalID, status)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if !domain.ValidTaskStatuses[string(status)] {
		return fmt.Errorf("invalid task status %q", status)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
