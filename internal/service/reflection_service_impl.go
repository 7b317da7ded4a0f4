package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
)

type reflectionService struct {
	reflections repository.ReflectionRepo
	coach       coach.Coach
	loc         *time.Location
	now         func() time.Time
}

func NewReflectionService(reflections repository.ReflectionRepo, c coach.Coach, loc *time.Location) ReflectionService {
	return &reflectionService{
		reflections: reflections,
		coach:       c,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *reflectionService) Create(ctx context.Context, date time.Time, text string, mood int) (*domain.Reflection, error) {
	text = strings.TrimSpace(text)
	if mood == 0 {
		mood = 3
	}
	if mood < 1 || mood > 5 {
		return nil, fmt.Errorf("mood must be between 1 and 5, got %d", mood)
	}
	if date.IsZero() {
		date = s.now().In(s.loc)
	}

	r := &domain.Reflection{
		ID:        uuid.New().String(),
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc),
		Text:      text,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reflections.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reflectionService) Recent(ctx context.Context, days int) ([]*domain.Reflection, error) {
	if days <= 0 {
		days = 7
	}
	n := s.now().In(s.loc)
	since := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -(days - 1))
	return s.reflections.ListSince(ctx, since)
}

func (s *reflectionService) Summarize(ctx context.Context, days int) (coach.ReflectionSummary, int, error) {
	if days <= 0 {
		days = 7
	}
	recs, err := s.Recent(ctx, days)
	if err != nil {
		return coach.ReflectionSummary{}, 0, err
	}
	items := make([]domain.Reflection, 0, len(recs))
	for _, r := range recs {
		items = append(items, *r)
	}
	return s.coach.SummarizeReflections(ctx, items, days), len(items), nil
}
