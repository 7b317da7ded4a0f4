package calendar

import (
	"bufio"
	"strings"
	"time"
)

// ParseICS extracts event intervals from iCalendar text. The parser is
// deliberately lenient: it unfolds continuation lines, reads only the
// DTSTART/DTEND pair of each VEVENT, and skips events it cannot parse
// rather than failing the whole feed.
func ParseICS(data string, loc *time.Location) []Interval {
	var events []Interval

	var inEvent bool
	var start, end time.Time
	var haveStart, haveEnd bool

	for _, line := range unfoldLines(data) {
		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			haveStart, haveEnd = false, false
		case line == "END:VEVENT":
			if inEvent && haveStart && haveEnd && start.Before(end) {
				events = append(events, Interval{Start: start, End: end})
			}
			inEvent = false
		case inEvent && strings.HasPrefix(line, "DTSTART"):
			if t, ok := parseICSTime(line, loc); ok {
				start, haveStart = t, true
			}
		case inEvent && strings.HasPrefix(line, "DTEND"):
			if t, ok := parseICSTime(line, loc); ok {
				end, haveEnd = t, true
			}
		}
	}
	return events
}

// unfoldLines splits iCalendar text into logical lines, joining folded
// continuations (lines starting with a space or tab) per RFC 5545.
func unfoldLines(data string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		if len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += raw[1:]
			continue
		}
		lines = append(lines, raw)
	}
	return lines
}

// parseICSTime reads the value of a DTSTART/DTEND content line. Parameters
// such as TZID are tolerated but only the VALUE=DATE form changes the
// interpretation; zoned local times are resolved against loc.
func parseICSTime(line string, loc *time.Location) (time.Time, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return time.Time{}, false
	}
	value := strings.TrimSpace(line[idx+1:])

	if t, err := time.Parse("20060102T150405Z", value); err == nil {
		return t.In(loc), true
	}
	if t, err := time.ParseInLocation("20060102T150405", value, loc); err == nil {
		return t, true
	}
	// All-day form: midnight in the reference zone. DTEND dates are
	// exclusive in the format, which a midnight value already encodes.
	if t, err := time.ParseInLocation("20060102", value, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}
