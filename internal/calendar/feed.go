package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable reports that a calendar source could not be reached or
// answered abnormally. Callers must surface it instead of treating the
// day as fully free.
var ErrUnavailable = errors.New("calendar source unavailable")

// Source provides the busy intervals for one day. Implementations clip
// nothing; the free-time calculator handles windowing.
type Source interface {
	BusyIntervals(ctx context.Context, day time.Time, loc *time.Location) ([]Interval, error)
}

// ICSFeedSource fetches a published iCalendar feed over HTTP.
type ICSFeedSource struct {
	URL    string
	Client *http.Client
}

func NewICSFeedSource(url string) *ICSFeedSource {
	return &ICSFeedSource{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// BusyIntervals downloads the feed and returns the events overlapping the
// target day. Network and HTTP failures wrap ErrUnavailable.
func (s *ICSFeedSource) BusyIntervals(ctx context.Context, day time.Time, loc *time.Location) ([]Interval, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read feed body: %v", ErrUnavailable, err)
	}

	return ClipToDay(ParseICS(string(body), loc), day, loc), nil
}
