package calendar

import (
	"sort"
	"time"
)

// DefaultMinBlock is the granularity free minutes are rounded down to.
const DefaultMinBlock = 15

// Interval is a busy span within a single day. Start < End is required
// before merging; degenerate spans are dropped by the clipping helpers.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the whole minutes covered by the interval.
func (iv Interval) Minutes() int {
	return int(iv.End.Sub(iv.Start) / time.Minute)
}

// DayWindow returns the [00:00, 23:59] span of the target day in loc.
func DayWindow(day time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, loc)
	return start, end
}

// Merge sorts intervals by start and coalesces overlapping ones. Touching
// intervals (next.Start == last.End) are deliberately kept distinct: the
// choice only affects interval counts, never summed busy minutes.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start.After(last.End) {
			merged = append(merged, iv)
			continue
		}
		if iv.End.After(last.End) {
			last.End = iv.End
		}
	}
	return merged
}

// Clip restricts intervals to [winStart, winEnd], dropping spans that end
// up empty or inverted.
func Clip(intervals []Interval, winStart, winEnd time.Time) []Interval {
	var clipped []Interval
	for _, iv := range intervals {
		if !iv.End.After(winStart) || !iv.Start.Before(winEnd) {
			continue
		}
		s, e := iv.Start, iv.End
		if s.Before(winStart) {
			s = winStart
		}
		if e.After(winEnd) {
			e = winEnd
		}
		if s.Before(e) {
			clipped = append(clipped, Interval{Start: s, End: e})
		}
	}
	return clipped
}

// ClipToDay restricts raw event intervals to the day window of the target
// day and merges the survivors.
func ClipToDay(events []Interval, day time.Time, loc *time.Location) []Interval {
	dayStart, dayEnd := DayWindow(day, loc)
	return Merge(Clip(events, dayStart, dayEnd))
}

// FreeMinutes computes the free minutes within the workStart-workEnd window
// ("HH:MM" times of the target day) not covered by the given busy events,
// rounded down to a multiple of minBlock. A degenerate window yields 0.
func FreeMinutes(events []Interval, day time.Time, workStart, workEnd string, minBlock int, loc *time.Location) int {
	if minBlock <= 0 {
		minBlock = DefaultMinBlock
	}

	ws, okS := atTimeOfDay(day, workStart, loc)
	we, okE := atTimeOfDay(day, workEnd, loc)
	if !okS || !okE || !we.After(ws) {
		return 0
	}

	busy := Merge(Clip(ClipToDay(events, day, loc), ws, we))

	total := int(we.Sub(ws) / time.Minute)
	busySum := 0
	for _, iv := range busy {
		busySum += iv.Minutes()
	}

	free := total - busySum
	if free < 0 {
		free = 0
	}
	return (free / minBlock) * minBlock
}

// atTimeOfDay combines the target day with an "HH:MM" clock time in loc.
func atTimeOfDay(day time.Time, hhmm string, loc *time.Location) (time.Time, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}
