package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/testutil"
)

func newReflectionService(t *testing.T) ReflectionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewReflectionService(repository.NewSQLiteReflectionRepo(database), coach.RuleBasedCoach{}, time.UTC)
}

func TestReflectionService_Create(t *testing.T) {
	svc := newReflectionService(t)
	ctx := context.Background()

	date := time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC)
	r, err := svc.Create(ctx, date, "  Good writing session.  ", 4)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Good writing session.", r.Text)
	assert.Equal(t, 4, r.Mood)
	assert.Equal(t, "2025-09-15", r.Date.Format("2006-01-02"), "time of day is dropped")
}

func TestReflectionService_CreateDefaultsMood(t *testing.T) {
	svc := newReflectionService(t)

	r, err := svc.Create(context.Background(), time.Now(), "note", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Mood)
}

func TestReflectionService_CreateValidatesMood(t *testing.T) {
	svc := newReflectionService(t)

	_, err := svc.Create(context.Background(), time.Now(), "note", 6)
	assert.Error(t, err)
}

func TestReflectionService_RecentWindow(t *testing.T) {
	svc := newReflectionService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := svc.Create(ctx, now.AddDate(0, 0, -2), "recent", 3)
	require.NoError(t, err)
	_, err = svc.Create(ctx, now.AddDate(0, 0, -30), "ancient", 3)
	require.NoError(t, err)

	recs, err := svc.Recent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "recent", recs[0].Text)
}

func TestReflectionService_Summarize(t *testing.T) {
	svc := newReflectionService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := svc.Create(ctx, now.AddDate(0, 0, -1), "solid focus", 4)
	require.NoError(t, err)

	summary, count, err := svc.Summarize(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NotEmpty(t, summary.Summary)
	assert.Len(t, summary.Improvements, 3)
}
