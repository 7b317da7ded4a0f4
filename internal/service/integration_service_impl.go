package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
)

// ErrNoIntegration reports that no calendar source has been bound yet.
var ErrNoIntegration = errors.New("no calendar integration configured")

// defaultIntegrationKey is the only binding key in use; the schema allows
// more than one binding per kind for later multi-calendar support.
const defaultIntegrationKey = "default"

// SourceFactory turns a stored integration value into a busy-interval
// source. The Calendar API factory needs OAuth material from disk, so the
// wiring is injected rather than constructed here.
type SourceFactory func(kind domain.IntegrationKind, value string) (calendar.Source, error)

// ICSOnlySourceFactory resolves ICS feed bindings and rejects API bindings.
// Used when no OAuth credentials are configured.
func ICSOnlySourceFactory(kind domain.IntegrationKind, value string) (calendar.Source, error) {
	switch kind {
	case domain.IntegrationICSFeed:
		return calendar.NewICSFeedSource(value), nil
	default:
		return nil, fmt.Errorf("calendar integration kind %q needs OAuth credentials", kind)
	}
}

type integrationService struct {
	integrations repository.IntegrationRepo
	newSource    SourceFactory
}

func NewIntegrationService(integrations repository.IntegrationRepo, newSource SourceFactory) IntegrationService {
	if newSource == nil {
		newSource = ICSOnlySourceFactory
	}
	return &integrationService{integrations: integrations, newSource: newSource}
}

func (s *integrationService) BindICSFeed(ctx context.Context, feedURL string) error {
	feedURL = strings.TrimSpace(feedURL)
	parsed, err := url.Parse(feedURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("feed URL must be an absolute http(s) URL")
	}
	return s.integrations.Upsert(ctx, &domain.Integration{
		ID:    uuid.New().String(),
		Kind:  domain.IntegrationICSFeed,
		Key:   defaultIntegrationKey,
		Value: feedURL,
	})
}

func (s *integrationService) BindCalendarAPI(ctx context.Context, calendarID string) error {
	calendarID = strings.TrimSpace(calendarID)
	if calendarID == "" {
		calendarID = "primary"
	}
	return s.integrations.Upsert(ctx, &domain.Integration{
		ID:    uuid.New().String(),
		Kind:  domain.IntegrationCalendarAPI,
		Key:   defaultIntegrationKey,
		Value: calendarID,
	})
}

// Source prefers the Calendar API binding over an ICS feed when both exist.
func (s *integrationService) Source(ctx context.Context) (calendar.Source, error) {
	in, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, ErrNoIntegration
	}
	return s.newSource(in.Kind, in.Value)
}

func (s *integrationService) Current(ctx context.Context) (*domain.Integration, error) {
	for _, kind := range []domain.IntegrationKind{domain.IntegrationCalendarAPI, domain.IntegrationICSFeed} {
		in, err := s.integrations.Get(ctx, kind, defaultIntegrationKey)
		if err != nil {
			return nil, fmt.Errorf("load calendar integration: %w", err)
		}
		if in != nil {
			return in, nil
		}
	}
	return nil, nil
}
