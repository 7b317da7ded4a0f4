package review

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/testutil"
)

// Tuesday evening in the reference week.
var reviewNow = time.Date(2025, 9, 16, 19, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, repository.ReflectionRepo, repository.SuggestionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	reflections := repository.NewSQLiteReflectionRepo(database)
	suggestions := repository.NewSQLiteSuggestionRepo(database)

	svc := NewService(reflections, suggestions, coach.RuleBasedCoach{}, time.UTC).
		WithClock(func() time.Time { return reviewNow })
	return svc, reflections, suggestions
}

func TestBuildWeeklyPayload(t *testing.T) {
	svc, reflections, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, reflections.Create(ctx, testutil.NewTestReflection(reviewNow.AddDate(0, 0, -2), testutil.WithText("good day"))))
	require.NoError(t, reflections.Create(ctx, testutil.NewTestReflection(reviewNow.AddDate(0, 0, -20), testutil.WithText("too old"))))

	payload, err := svc.BuildWeeklyPayload(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, payload.Range.Days)
	assert.Equal(t, "2025-09-10", payload.Range.Start)
	assert.Equal(t, "2025-09-16", payload.Range.End)
	assert.Equal(t, 1, payload.Count, "reflections outside the window are excluded")
	assert.NotEmpty(t, payload.Summary)
	assert.Len(t, payload.Improvements, 3)
	assert.Equal(t, "2025-09-16", payload.GeneratedAt)
}

func TestBuildWeeklyPayload_DefaultsDays(t *testing.T) {
	svc, _, _ := newTestService(t)

	payload, err := svc.BuildWeeklyPayload(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDays, payload.Range.Days)
}

func TestUpsertThisWeek_CreatesThenReplaces(t *testing.T) {
	svc, reflections, suggestions := newTestService(t)
	ctx := context.Background()

	first, err := svc.UpsertThisWeek(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second run in the same week must replace, not accumulate.
	require.NoError(t, reflections.Create(ctx, testutil.NewTestReflection(reviewNow, testutil.WithText("new note"))))
	second, err := svc.UpsertThisWeek(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var payload WeeklyPayload
	require.NoError(t, json.Unmarshal([]byte(second.ContentJSON), &payload))
	assert.Equal(t, 1, payload.Count)

	latest, err := suggestions.Latest(ctx, domain.SuggestionWeekly)
	require.NoError(t, err)
	assert.Equal(t, first.ID, latest.ID)
}

func TestUpsertThisWeek_NewWeekGetsNewSuggestion(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.UpsertThisWeek(ctx)
	require.NoError(t, err)

	// Advance past the next Sunday boundary.
	svc.WithClock(func() time.Time { return reviewNow.AddDate(0, 0, 7) })
	second, err := svc.UpsertThisWeek(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLatest_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	payload, sug, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.Nil(t, sug)

	stored, err := svc.UpsertThisWeek(ctx)
	require.NoError(t, err)

	payload, sug, err = svc.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, stored.ID, sug.ID)
	assert.Equal(t, "2025-09-16", payload.GeneratedAt)
}

func TestRunner_NextRun(t *testing.T) {
	svc, _, _ := newTestService(t)
	runner := NewRunner(svc, time.UTC)

	// Tuesday evening rolls to the coming Sunday.
	next := runner.NextRun(reviewNow)
	assert.Equal(t, time.Sunday, next.Weekday())
	assert.Equal(t, 21, next.Hour())
	assert.Equal(t, "2025-09-21", next.Format("2006-01-02"))

	// Sunday before 21:00 runs the same day.
	sundayMorning := time.Date(2025, 9, 21, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-21", runner.NextRun(sundayMorning).Format("2006-01-02"))

	// Sunday at 21:00 exactly waits a full week.
	sundayNine := time.Date(2025, 9, 21, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-28", runner.NextRun(sundayNine).Format("2006-01-02"))
}

func TestRunner_StartStop(t *testing.T) {
	svc, _, _ := newTestService(t)
	runner := NewRunner(svc, time.UTC)

	runner.Start(context.Background())
	runner.Stop()
}
