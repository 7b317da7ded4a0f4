package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/testutil"
)

type stubSource struct {
	events []calendar.Interval
	err    error
}

func (s *stubSource) BusyIntervals(_ context.Context, _ time.Time, _ *time.Location) ([]calendar.Interval, error) {
	return s.events, s.err
}

type stubIntegrations struct {
	source calendar.Source
	err    error
}

func (s *stubIntegrations) BindICSFeed(context.Context, string) error      { return nil }
func (s *stubIntegrations) BindCalendarAPI(context.Context, string) error  { return nil }
func (s *stubIntegrations) Source(context.Context) (calendar.Source, error) {
	return s.source, s.err
}
func (s *stubIntegrations) Current(context.Context) (*domain.Integration, error) { return nil, nil }

func newPlanFixture(t *testing.T) (PlanService, repository.TaskRepo, *domain.Goal) {
	t.Helper()
	database := testutil.NewTestDB(t)
	goals := repository.NewSQLiteGoalRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	goal := testutil.NewTestGoal("Ship the book")
	require.NoError(t, goals.Create(context.Background(), goal))

	svc := NewPlanService(tasks, coach.RuleBasedCoach{}, &stubIntegrations{source: &stubSource{}}, time.UTC)
	return svc, tasks, goal
}

func TestPlanToday_PicksAndScores(t *testing.T) {
	svc, tasks, goal := newPlanFixture(t)
	ctx := context.Background()

	due := time.Now().UTC()
	urgent := testutil.NewTestTask(goal.ID, "Finish proposal", testutil.WithImpact(5), testutil.WithEffort(60), testutil.WithDue(due))
	filler := testutil.NewTestTask(goal.ID, "Tidy notes", testutil.WithImpact(1), testutil.WithEffort(30))
	require.NoError(t, tasks.Create(ctx, urgent))
	require.NoError(t, tasks.Create(ctx, filler))

	resp, err := svc.PlanToday(ctx, 90)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, urgent.ID, resp.Items[0].TaskID)
	assert.Greater(t, resp.Items[0].Score, resp.Items[1].Score)
	assert.NotEmpty(t, resp.Items[0].CoachLine)
	assert.Equal(t, 90, resp.MinutesAvailable)

	// Scores are rounded for presentation.
	for _, item := range resp.Items {
		assert.InDelta(t, math.Round(item.Score*1000)/1000, item.Score, 1e-9)
	}
}

func TestPlanToday_DefaultsMinutes(t *testing.T) {
	svc, _, _ := newPlanFixture(t)

	resp, err := svc.PlanToday(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPlanMinutes, resp.MinutesAvailable)
	assert.Empty(t, resp.Items)
}

func TestPlanToday_ValidatesMinutes(t *testing.T) {
	svc, _, _ := newPlanFixture(t)
	ctx := context.Background()

	_, err := svc.PlanToday(ctx, 10)
	assert.Error(t, err)
	_, err = svc.PlanToday(ctx, 700)
	assert.Error(t, err)
}

func TestPlanToday_ExcludesDoneTasks(t *testing.T) {
	svc, tasks, goal := newPlanFixture(t)
	ctx := context.Background()

	done := testutil.NewTestTask(goal.ID, "Already shipped", testutil.WithStatus(domain.TaskDone))
	require.NoError(t, tasks.Create(ctx, done))

	resp, err := svc.PlanToday(ctx, 90)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestAvailability_ComputesFreeMinutes(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	day := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)
	}
	source := &stubSource{events: []calendar.Interval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(9, 30), End: at(11, 0)},
	}}

	svc := NewPlanService(tasks, coach.RuleBasedCoach{}, &stubIntegrations{source: source}, time.UTC)
	resp, err := svc.Availability(context.Background(), day, "09:00", "18:00")
	require.NoError(t, err)

	assert.Equal(t, "2025-09-15", resp.Date)
	assert.Equal(t, 120, resp.BusyMinutes)
	assert.Equal(t, 420, resp.FreeMinutes)
}

func TestAvailability_PropagatesSourceFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	source := &stubSource{err: calendar.ErrUnavailable}

	svc := NewPlanService(tasks, coach.RuleBasedCoach{}, &stubIntegrations{source: source}, time.UTC)
	_, err := svc.Availability(context.Background(), time.Now(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrUnavailable)
}

func TestAvailability_NoIntegration(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	svc := NewPlanService(tasks, coach.RuleBasedCoach{}, &stubIntegrations{err: ErrNoIntegration}, time.UTC)
	_, err := svc.Availability(context.Background(), time.Now(), "", "")
	assert.ErrorIs(t, err, ErrNoIntegration)
}

func TestAvailability_DegenerateWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	svc := NewPlanService(tasks, coach.RuleBasedCoach{}, &stubIntegrations{source: &stubSource{}}, time.UTC)
	resp, err := svc.Availability(context.Background(), time.Now(), "18:00", "09:00")
	require.NoError(t, err)
	assert.Zero(t, resp.FreeMinutes)
	assert.Zero(t, resp.BusyMinutes)
}
