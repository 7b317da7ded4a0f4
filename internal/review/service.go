package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/repository"
)

// DefaultDays is the lookback window for a weekly review.
const DefaultDays = 7

// DateRange describes the reflection window a payload covers.
type DateRange struct {
	Days  int    `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyPayload is the stored content of a weekly review suggestion.
type WeeklyPayload struct {
	Range        DateRange `json:"range"`
	Count        int       `json:"count"`
	Summary      string    `json:"summary"`
	Improvements []string  `json:"improvements"`
	GeneratedAt  string    `json:"generated_at"`
}

// Service builds weekly review payloads from recent reflections and keeps
// at most one stored suggestion per week.
type Service struct {
	reflections repository.ReflectionRepo
	suggestions repository.SuggestionRepo
	coach       coach.Coach
	loc         *time.Location
	now         func() time.Time
}

func NewService(reflections repository.ReflectionRepo, suggestions repository.SuggestionRepo, c coach.Coach, loc *time.Location) *Service {
	return &Service{
		reflections: reflections,
		suggestions: suggestions,
		coach:       c,
		loc:         loc,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin the week.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) today() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, s.loc)
}

// BuildWeeklyPayload summarizes the reflections of the last days.
func (s *Service) BuildWeeklyPayload(ctx context.Context, days int) (*WeeklyPayload, error) {
	if days <= 0 {
		days = DefaultDays
	}
	today := s.today()
	start := today.AddDate(0, 0, -(days - 1))

	recs, err := s.reflections.ListSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}

	items := make([]domain.Reflection, 0, len(recs))
	for _, r := range recs {
		items = append(items, *r)
	}

	res := s.coach.SummarizeReflections(ctx, items, days)
	return &WeeklyPayload{
		Range: DateRange{
			Days:  days,
			Start: start.Format("2006-01-02"),
			End:   today.Format("2006-01-02"),
		},
		Count:        len(items),
		Summary:      res.Summary,
		Improvements: res.Improvements,
		GeneratedAt:  today.Format("2006-01-02"),
	}, nil
}

// UpsertThisWeek regenerates the weekly payload and stores it, replacing
// an existing suggestion from the current week (weeks start on Sunday).
func (s *Service) UpsertThisWeek(ctx context.Context) (*domain.Suggestion, error) {
	payload, err := s.BuildWeeklyPayload(ctx, DefaultDays)
	if err != nil {
		return nil, err
	}
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode weekly payload: %w", err)
	}

	today := s.today()
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	existing, err := s.suggestions.LatestInRange(ctx, domain.SuggestionWeekly, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("find current week suggestion: %w", err)
	}

	if existing != nil {
		existing.Date = today
		existing.ContentJSON = string(content)
		if err := s.suggestions.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update weekly suggestion: %w", err)
		}
		return existing, nil
	}

	sug := &domain.Suggestion{
		ID:          uuid.New().String(),
		Date:        today,
		Type:        domain.SuggestionWeekly,
		ContentJSON: string(content),
	}
	if err := s.suggestions.Create(ctx, sug); err != nil {
		return nil, fmt.Errorf("store weekly suggestion: %w", err)
	}
	return sug, nil
}

// Latest returns the most recent stored weekly review, or nil when none
// has been generated yet.
func (s *Service) Latest(ctx context.Context) (*WeeklyPayload, *domain.Suggestion, error) {
	sug, err := s.suggestions.Latest(ctx, domain.SuggestionWeekly)
	if err != nil {
		return nil, nil, fmt.Errorf("load latest weekly suggestion: %w", err)
	}
	if sug == nil {
		return nil, nil, nil
	}
	var payload WeeklyPayload
	if err := json.Unmarshal([]byte(sug.ContentJSON), &payload); err != nil {
		return nil, nil, fmt.Errorf("decode weekly payload: %w", err)
	}
	return &payload, sug, nil
}
