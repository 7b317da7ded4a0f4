package planner

import (
	"math"
	"time"

	"github.com/kawatsu/compass/internal/domain"
)

// Weights hold the scoring coefficients. They are fixed constants of the
// design; DefaultWeights is the only set used in production.
type Weights struct {
	Deadline      float64
	Impact        float64
	EffortPenalty float64
}

func DefaultWeights() Weights {
	return Weights{
		Deadline:      1.0,
		Impact:        1.2,
		EffortPenalty: 0.6,
	}
}

// maxPicked caps the daily shortlist. Three items is a product decision,
// not a tunable.
const maxPicked = 3

// ScoredTask pairs a task with its computed score for one picker run.
type ScoredTask struct {
	Task  domain.Task
	Score float64
}

// Proximity returns the urgency weight for a due date relative to today.
// Both instants are compared on calendar days.
func Proximity(due *time.Time, today time.Time) float64 {
	if due == nil {
		return 0.0
	}
	daysLeft := daysBetween(today, *due)
	switch {
	case daysLeft < 0:
		return 2.0
	case daysLeft == 0:
		return 1.8
	case daysLeft <= 3:
		return 1.5
	case daysLeft <= 7:
		return 1.0
	case daysLeft <= 14:
		return 0.6
	default:
		return 0.3
	}
}

// Score computes the urgency/impact/effort trade-off for a task:
// deadline proximity and impact push the score up, effort drags it down
// logarithmically so long tasks are discouraged without being excluded.
func Score(t domain.Task, today time.Time, w Weights) float64 {
	impact := t.Impact
	if impact < 1 {
		impact = 1
	}
	// Tasks without a usable estimate are scored as if they took the
	// default 30 minutes, mirroring the picker's budget accounting.
	effort := t.EffectiveEffort()
	return w.Deadline*Proximity(t.Due, today) +
		w.Impact*float64(impact) -
		w.EffortPenalty*math.Log(1+float64(effort))
}

// daysBetween returns the number of calendar days from a to b, negative
// when b is before a. Time-of-day components are ignored.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
