package wbs

import (
	"strings"
	"time"

	"github.com/kawatsu/compass/internal/domain"
)

// Request controls how a goal is broken down into tasks.
type Request struct {
	MaxTasks            int
	SpreadUntilDeadline bool
}

const (
	DefaultMaxTasks = 12
	MinMaxTasks     = 3
	MaxMaxTasks     = 50
)

// DefaultRequest returns the standard breakdown settings.
func DefaultRequest() Request {
	return Request{MaxTasks: DefaultMaxTasks, SpreadUntilDeadline: true}
}

// Normalize clamps out-of-range request values instead of rejecting them.
func (r Request) Normalize() Request {
	if r.MaxTasks < MinMaxTasks {
		r.MaxTasks = MinMaxTasks
	}
	if r.MaxTasks > MaxMaxTasks {
		r.MaxTasks = MaxMaxTasks
	}
	return r
}

// Step is one proposed task in a goal breakdown, ordered by execution.
// PrereqIDs index into the same draft, not into stored tasks.
type Step struct {
	Title     string
	EffortMin int
	Impact    int
	Due       *time.Time
	PrereqIDs []int
}

// Clean clamps draft steps into valid task shape: titles trimmed and capped
// at 200 runes, impact in 1..5, effort in 5..60 minutes (up to 120 for
// high-impact steps). At most req.MaxTasks steps survive.
func Clean(steps []Step, req Request) []Step {
	req = req.Normalize()
	if len(steps) > req.MaxTasks {
		steps = steps[:req.MaxTasks]
	}

	cleaned := make([]Step, 0, len(steps))
	for _, s := range steps {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			continue
		}
		if runes := []rune(title); len(runes) > 200 {
			title = string(runes[:200])
		}

		impact := clamp(s.Impact, 1, 5)
		maxEffort := 60
		if impact >= 4 {
			maxEffort = 120
		}

		cleaned = append(cleaned, Step{
			Title:     title,
			EffortMin: clamp(s.EffortMin, 5, maxEffort),
			Impact:    impact,
			Due:       s.Due,
			PrereqIDs: s.PrereqIDs,
		})
	}
	return cleaned
}

// SpreadDue assigns due dates to steps that have none, distributing them
// evenly from today to the goal deadline. A past deadline collapses all
// open dues onto today.
func SpreadDue(steps []Step, today time.Time, goal domain.Goal) {
	if goal.Deadline == nil || len(steps) == 0 {
		return
	}
	start := dateOnly(today)
	end := dateOnly(*goal.Deadline)

	if end.Before(start) {
		for i := range steps {
			if steps[i].Due == nil {
				due := start
				steps[i].Due = &due
			}
		}
		return
	}

	span := int(end.Sub(start).Hours() / 24)
	if span == 0 {
		span = 1
	}
	n := len(steps)
	for i := range steps {
		if steps[i].Due != nil {
			continue
		}
		pos := i * span / max(1, n-1)
		due := start.AddDate(0, 0, pos)
		steps[i].Due = &due
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
