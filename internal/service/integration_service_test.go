package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/testutil"
)

func newIntegrationService(t *testing.T, factory SourceFactory) IntegrationService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewIntegrationService(repository.NewSQLiteIntegrationRepo(database), factory)
}

func TestIntegrationService_BindICSFeedValidation(t *testing.T) {
	svc := newIntegrationService(t, nil)
	ctx := context.Background()

	assert.Error(t, svc.BindICSFeed(ctx, ""))
	assert.Error(t, svc.BindICSFeed(ctx, "not a url"))
	assert.Error(t, svc.BindICSFeed(ctx, "ftp://example.com/cal.ics"))
	assert.NoError(t, svc.BindICSFeed(ctx, "https://calendar.google.com/calendar/ical/private.ics"))
}

func TestIntegrationService_SourceResolvesICSFeed(t *testing.T) {
	svc := newIntegrationService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.BindICSFeed(ctx, "https://example.com/cal.ics"))

	source, err := svc.Source(ctx)
	require.NoError(t, err)
	feed, ok := source.(*calendar.ICSFeedSource)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/cal.ics", feed.URL)
}

func TestIntegrationService_SourceWithoutBinding(t *testing.T) {
	svc := newIntegrationService(t, nil)

	_, err := svc.Source(context.Background())
	assert.ErrorIs(t, err, ErrNoIntegration)
}

func TestIntegrationService_RebindReplaces(t *testing.T) {
	svc := newIntegrationService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.BindICSFeed(ctx, "https://example.com/old.ics"))
	require.NoError(t, svc.BindICSFeed(ctx, "https://example.com/new.ics"))

	source, err := svc.Source(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.ics", source.(*calendar.ICSFeedSource).URL)
}

func TestIntegrationService_PrefersCalendarAPI(t *testing.T) {
	var resolved domain.IntegrationKind
	factory := func(kind domain.IntegrationKind, value string) (calendar.Source, error) {
		resolved = kind
		return &stubSource{}, nil
	}
	svc := newIntegrationService(t, factory)
	ctx := context.Background()

	require.NoError(t, svc.BindICSFeed(ctx, "https://example.com/cal.ics"))
	require.NoError(t, svc.BindCalendarAPI(ctx, "primary"))

	_, err := svc.Source(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.IntegrationCalendarAPI, resolved)
}

func TestICSOnlySourceFactory_RejectsAPIKind(t *testing.T) {
	_, err := ICSOnlySourceFactory(domain.IntegrationCalendarAPI, "primary")
	assert.Error(t, err)
}
