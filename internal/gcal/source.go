package gcal

import (
	"context"
	"fmt"
	"time"

	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/kawatsu/compass/internal/calendar"
)

// APISource reads busy intervals for a day straight from the Google
// Calendar API. It satisfies calendar.Source alongside the ICS feed.
type APISource struct {
	auth       *Auth
	calendarID string
}

// NewAPISource targets one calendar; "primary" selects the account's
// default calendar.
func NewAPISource(auth *Auth, calendarID string) *APISource {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &APISource{auth: auth, calendarID: calendarID}
}

func (s *APISource) BusyIntervals(ctx context.Context, day time.Time, loc *time.Location) ([]calendar.Interval, error) {
	client, err := s.auth.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrUnavailable, err)
	}
	srv, err := calendarapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrUnavailable, err)
	}

	dayStart, dayEnd := calendar.DayWindow(day, loc)
	events, err := srv.Events.List(s.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", calendar.ErrUnavailable, err)
	}

	var intervals []calendar.Interval
	for _, ev := range events.Items {
		iv, ok := eventInterval(ev, loc)
		if !ok {
			continue
		}
		intervals = append(intervals, iv)
	}
	return calendar.ClipToDay(intervals, day, loc), nil
}

// eventInterval converts an API event to an interval, handling both timed
// and all-day events. Events it cannot interpret are skipped.
func eventInterval(ev *calendarapi.Event, loc *time.Location) (calendar.Interval, bool) {
	if ev == nil || ev.Start == nil || ev.End == nil {
		return calendar.Interval{}, false
	}
	start, okS := eventTime(ev.Start, loc)
	end, okE := eventTime(ev.End, loc)
	if !okS || !okE || !start.Before(end) {
		return calendar.Interval{}, false
	}
	return calendar.Interval{Start: start, End: end}, true
}

func eventTime(t *calendarapi.EventDateTime, loc *time.Location) (time.Time, bool) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.In(loc), true
	}
	if t.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", t.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}
