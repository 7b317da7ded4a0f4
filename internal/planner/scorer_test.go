package planner

import (
	"math"
	"testing"
	"time"

	"github.com/kawatsu/compass/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestProximity_Table(t *testing.T) {
	tests := []struct {
		name string
		due  *time.Time
		want float64
	}{
		{"no due date", nil, 0.0},
		{"overdue", datePtr(today.AddDate(0, 0, -1)), 2.0},
		{"due today", datePtr(today), 1.8},
		{"due in 1 day", datePtr(today.AddDate(0, 0, 1)), 1.5},
		{"due in 3 days", datePtr(today.AddDate(0, 0, 3)), 1.5},
		{"due in 4 days", datePtr(today.AddDate(0, 0, 4)), 1.0},
		{"due in 7 days", datePtr(today.AddDate(0, 0, 7)), 1.0},
		{"due in 8 days", datePtr(today.AddDate(0, 0, 8)), 0.6},
		{"due in 14 days", datePtr(today.AddDate(0, 0, 14)), 0.6},
		{"due in 15 days", datePtr(today.AddDate(0, 0, 15)), 0.3},
		{"due far out", datePtr(today.AddDate(1, 0, 0)), 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Proximity(tt.due, today), 1e-9)
		})
	}
}

func TestProximity_IgnoresTimeOfDay(t *testing.T) {
	// Due at 00:01 today is still "due today", not overdue, even when
	// evaluated at noon.
	due := time.Date(today.Year(), today.Month(), today.Day(), 0, 1, 0, 0, time.UTC)
	assert.InDelta(t, 1.8, Proximity(&due, today), 1e-9)
}

func TestScore_Formula(t *testing.T) {
	task := domain.Task{Impact: 5, EffortMin: 60, Due: datePtr(today)}
	got := Score(task, today, DefaultWeights())
	want := 1.0*1.8 + 1.2*5 - 0.6*math.Log(61)
	assert.InDelta(t, want, got, 1e-9)
}

func TestScore_ImpactMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for impact := 1; impact <= 5; impact++ {
		task := domain.Task{Impact: impact, EffortMin: 45, Due: datePtr(today.AddDate(0, 0, 2))}
		s := Score(task, today, DefaultWeights())
		assert.Greater(t, s, prev, "impact %d should score higher than %d", impact, impact-1)
		prev = s
	}
}

func TestScore_EffortMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, effort := range []int{30, 60, 120, 300, 600} {
		task := domain.Task{Impact: 3, EffortMin: effort}
		s := Score(task, today, DefaultWeights())
		assert.Less(t, s, prev, "effort %d should not score higher than a shorter task", effort)
		prev = s
	}
}

func TestScore_ProximityOrdering(t *testing.T) {
	base := domain.Task{Impact: 3, EffortMin: 45}

	dues := []*time.Time{
		datePtr(today.AddDate(0, 0, -2)), // overdue
		datePtr(today),
		datePtr(today.AddDate(0, 0, 2)),
		datePtr(today.AddDate(0, 0, 6)),
		datePtr(today.AddDate(0, 0, 10)),
		datePtr(today.AddDate(0, 0, 30)),
		nil,
	}
	prev := math.Inf(1)
	for i, due := range dues {
		task := base
		task.Due = due
		s := Score(task, today, DefaultWeights())
		assert.LessOrEqual(t, s, prev, "due slot %d should not outscore an earlier due date", i)
		prev = s
	}
}

func TestScore_ImpactFloor(t *testing.T) {
	// Zero impact is treated as 1.
	zero := Score(domain.Task{Impact: 0, EffortMin: 30}, today, DefaultWeights())
	one := Score(domain.Task{Impact: 1, EffortMin: 30}, today, DefaultWeights())
	assert.InDelta(t, one, zero, 1e-9)
}

func TestScore_EffortFallback(t *testing.T) {
	// Missing effort scores as the default 30 minutes.
	missing := Score(domain.Task{Impact: 2}, today, DefaultWeights())
	thirty := Score(domain.Task{Impact: 2, EffortMin: 30}, today, DefaultWeights())
	assert.InDelta(t, thirty, missing, 1e-9)
}
