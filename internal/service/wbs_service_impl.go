package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/contract"
	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/wbs"
)

type wbsService struct {
	goals   repository.GoalRepo
	tasks   repository.TaskRepo
	uow     db.UnitOfWork
	drafter wbs.Drafter
	loc     *time.Location
	now     func() time.Time
}

func NewWbsService(goals repository.GoalRepo, tasks repository.TaskRepo, uow db.UnitOfWork, drafter wbs.Drafter, loc *time.Location) WbsService {
	return &wbsService{
		goals:   goals,
		tasks:   tasks,
		uow:     uow,
		drafter: drafter,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *wbsService) Draft(ctx context.Context, goalID string, req wbs.Request) (*contract.WbsResult, error) {
	goal, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	req = req.Normalize()

	steps := wbs.Clean(s.drafter.Draft(ctx, *goal, req), req)
	if req.SpreadUntilDeadline {
		wbs.SpreadDue(steps, s.now().In(s.loc), *goal)
	}

	items := make([]contract.WbsItem, 0, len(steps))
	for _, st := range steps {
		items = append(items, contract.WbsItem{
			Title:     st.Title,
			EffortMin: st.EffortMin,
			Impact:    st.Impact,
			Due:       st.Due,
			PrereqIDs: st.PrereqIDs,
		})
	}
	return &contract.WbsResult{
		GoalID:    goal.ID,
		GoalTitle: goal.Title,
		Items:     items,
	}, nil
}

func (s *wbsService) Apply(ctx context.Context, goalID string, items []contract.WbsItem) (*contract.WbsApplyResult, error) {
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, err
	}

	result := &contract.WbsApplyResult{GoalID: goalID}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		existing, err := tasks.TitlesByGoal(ctx, goalID)
		if err != nil {
			return fmt.Errorf("load existing titles: %w", err)
		}

		now := time.Now().UTC()
		for _, it := range items {
			title := strings.TrimSpace(it.Title)
			if title == "" || existing[title] {
				result.Skipped++
				continue
			}
			task := &domain.Task{
				ID:        uuid.New().String(),
				GoalID:    goalID,
				Title:     title,
				Status:    domain.TaskPending,
				Impact:    it.Impact,
				EffortMin: it.EffortMin,
				Due:       it.Due,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tasks.Create(ctx, task); err != nil {
				return fmt.Errorf("create task %q: %w", title, err)
			}
			existing[title] = true
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
