package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kawatsu/compass/internal/contract"
	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/importer"
	"github.com/kawatsu/compass/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

// ImportGoal loads a goal import file and stores the goal with all of its
// tasks in one transaction. Validation failures abort before any write.
func (s *importService) ImportGoal(ctx context.Context, path string) (*contract.ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("load import file: %w", err)
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}

	goal, tasks := importer.ConvertSchema(schema, time.Now().UTC())

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		goalRepo := repository.NewSQLiteGoalRepo(tx)
		taskRepo := repository.NewSQLiteTaskRepo(tx)

		if err := goalRepo.Create(ctx, goal); err != nil {
			return fmt.Errorf("store goal: %w", err)
		}
		for _, t := range tasks {
			if err := taskRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("store task %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.ImportResult{
		GoalID:    goal.ID,
		GoalTitle: goal.Title,
		TaskCount: len(tasks),
	}, nil
}
