package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/contract"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/planner"
	"github.com/kawatsu/compass/internal/repository"
)

const (
	// DefaultPlanMinutes is the budget used when the caller passes 0.
	DefaultPlanMinutes = 90
	MinPlanMinutes     = 15
	MaxPlanMinutes     = 600

	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "18:00"
)

type planService struct {
	tasks        repository.TaskRepo
	coach        coach.Coach
	integrations IntegrationService
	loc          *time.Location
	now          func() time.Time
}

func NewPlanService(tasks repository.TaskRepo, c coach.Coach, integrations IntegrationService, loc *time.Location) PlanService {
	return &planService{
		tasks:        tasks,
		coach:        c,
		integrations: integrations,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *planService) PlanToday(ctx context.Context, minutes int) (*contract.PlanResponse, error) {
	if minutes == 0 {
		minutes = DefaultPlanMinutes
	}
	if minutes < MinPlanMinutes || minutes > MaxPlanMinutes {
		return nil, fmt.Errorf("minutes must be between %d and %d, got %d", MinPlanMinutes, MaxPlanMinutes, minutes)
	}

	open, err := s.tasks.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	candidates := make([]domain.Task, 0, len(open))
	for _, t := range open {
		candidates = append(candidates, *t)
	}

	today := s.now().In(s.loc)
	picked := planner.PickToday(candidates, minutes, today, planner.DefaultWeights())

	items := make([]contract.PlanItem, 0, len(picked))
	for _, st := range picked {
		items = append(items, contract.PlanItem{
			TaskID:    st.Task.ID,
			Title:     st.Task.Title,
			GoalID:    st.Task.GoalID,
			Impact:    st.Task.Impact,
			EffortMin: st.Task.EffectiveEffort(),
			Due:       st.Task.Due,
			Score:     roundScore(st.Score),
			CoachLine: s.coach.LineForTask(ctx, st.Task),
		})
	}

	return &contract.PlanResponse{
		Date:             today.Format("2006-01-02"),
		MinutesAvailable: minutes,
		Items:            items,
	}, nil
}

func (s *planService) Availability(ctx context.Context, day time.Time, workStart, workEnd string) (*contract.AvailabilityResponse, error) {
	if workStart == "" {
		workStart = DefaultWorkStart
	}
	if workEnd == "" {
		workEnd = DefaultWorkEnd
	}
	if day.IsZero() {
		day = s.now().In(s.loc)
	}

	source, err := s.integrations.Source(ctx)
	if err != nil {
		return nil, err
	}

	events, err := source.BusyIntervals(ctx, day, s.loc)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar: %w", err)
	}

	free := calendar.FreeMinutes(events, day, workStart, workEnd, calendar.DefaultMinBlock, s.loc)

	busy := 0
	if ws, ok := clockOn(day, workStart, s.loc); ok {
		if we, ok := clockOn(day, workEnd, s.loc); ok && we.After(ws) {
			for _, iv := range calendar.Merge(calendar.Clip(events, ws, we)) {
				busy += iv.Minutes()
			}
		}
	}

	return &contract.AvailabilityResponse{
		Date:        day.In(s.loc).Format("2006-01-02"),
		WorkStart:   workStart,
		WorkEnd:     workEnd,
		BusyMinutes: busy,
		FreeMinutes: free,
	}, nil
}

func clockOn(day time.Time, hhmm string, loc *time.Location) (time.Time, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}

func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}
