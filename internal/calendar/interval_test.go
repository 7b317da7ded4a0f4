package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
}

func TestMerge_Overlapping(t *testing.T) {
	merged := Merge([]Interval{
		{Start: at(9, 30), End: at(11, 0)},
		{Start: at(9, 0), End: at(10, 0)},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, at(9, 0), merged[0].Start)
	assert.Equal(t, at(11, 0), merged[0].End)
}

func TestMerge_TouchingStayDistinct(t *testing.T) {
	merged := Merge([]Interval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(10, 0), End: at(11, 0)},
	})

	require.Len(t, merged, 2)

	sum := 0
	for _, iv := range merged {
		sum += iv.Minutes()
	}
	assert.Equal(t, 120, sum, "distinct touching intervals cover the same minutes")
}

func TestMerge_ContainedInterval(t *testing.T) {
	merged := Merge([]Interval{
		{Start: at(9, 0), End: at(12, 0)},
		{Start: at(10, 0), End: at(11, 0)},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, 180, merged[0].Minutes())
}

func TestMerge_Empty(t *testing.T) {
	assert.Nil(t, Merge(nil))
}

func TestClip_DropsOutsideAndTrims(t *testing.T) {
	clipped := Clip([]Interval{
		{Start: at(6, 0), End: at(7, 0)},   // before window
		{Start: at(8, 30), End: at(9, 30)}, // straddles start
		{Start: at(12, 0), End: at(13, 0)}, // inside
		{Start: at(17, 30), End: at(19, 0)}, // straddles end
		{Start: at(20, 0), End: at(21, 0)}, // after window
	}, at(9, 0), at(18, 0))

	require.Len(t, clipped, 3)
	assert.Equal(t, at(9, 0), clipped[0].Start)
	assert.Equal(t, at(9, 30), clipped[0].End)
	assert.Equal(t, at(18, 0), clipped[2].End)
}

func TestClipToDay_OvernightEvent(t *testing.T) {
	prev := day.AddDate(0, 0, -1)
	events := []Interval{
		{Start: time.Date(prev.Year(), prev.Month(), prev.Day(), 23, 0, 0, 0, time.UTC), End: at(1, 0)},
	}

	clipped := ClipToDay(events, day, time.UTC)
	require.Len(t, clipped, 1)
	assert.Equal(t, at(0, 0), clipped[0].Start)
	assert.Equal(t, at(1, 0), clipped[0].End)
}

func TestFreeMinutes_OverlappingEvents(t *testing.T) {
	events := []Interval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(9, 30), End: at(11, 0)},
	}

	// 540 window minutes, 120 busy after merging, 420 free.
	free := FreeMinutes(events, day, "09:00", "18:00", 15, time.UTC)
	assert.Equal(t, 420, free)
}

func TestFreeMinutes_NoEvents(t *testing.T) {
	free := FreeMinutes(nil, day, "09:00", "18:00", 15, time.UTC)
	assert.Equal(t, 540, free)
}

func TestFreeMinutes_FullyBooked(t *testing.T) {
	events := []Interval{{Start: at(8, 0), End: at(19, 0)}}
	assert.Equal(t, 0, FreeMinutes(events, day, "09:00", "18:00", 15, time.UTC))
}

func TestFreeMinutes_RoundsDownToBlock(t *testing.T) {
	// 540 - 100 = 440 free minutes, floored to 435.
	events := []Interval{{Start: at(9, 0), End: at(10, 40)}}
	assert.Equal(t, 435, FreeMinutes(events, day, "09:00", "18:00", 15, time.UTC))
}

func TestFreeMinutes_DegenerateWindow(t *testing.T) {
	assert.Equal(t, 0, FreeMinutes(nil, day, "18:00", "09:00", 15, time.UTC))
	assert.Equal(t, 0, FreeMinutes(nil, day, "09:00", "09:00", 15, time.UTC))
}

func TestFreeMinutes_BadClockTimes(t *testing.T) {
	assert.Equal(t, 0, FreeMinutes(nil, day, "morning", "18:00", 15, time.UTC))
	assert.Equal(t, 0, FreeMinutes(nil, day, "09:00", "", 15, time.UTC))
}

func TestFreeMinutes_IgnoresOtherDays(t *testing.T) {
	next := day.AddDate(0, 0, 1)
	events := []Interval{
		{Start: time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, time.UTC),
			End: time.Date(next.Year(), next.Month(), next.Day(), 17, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, 540, FreeMinutes(events, day, "09:00", "18:00", 15, time.UTC))
}

func TestFreeMinutes_Bounds(t *testing.T) {
	events := []Interval{
		{Start: at(9, 0), End: at(12, 0)},
		{Start: at(11, 0), End: at(14, 0)},
		{Start: at(16, 0), End: at(17, 15)},
	}

	free := FreeMinutes(events, day, "09:00", "18:00", 15, time.UTC)
	assert.GreaterOrEqual(t, free, 0)
	assert.LessOrEqual(t, free, 540)
	assert.Zero(t, free%15)
}
