package gcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendarapi "google.golang.org/api/calendar/v3"
)

func TestEventInterval_TimedEvent(t *testing.T) {
	ev := &calendarapi.Event{
		Start: &calendarapi.EventDateTime{DateTime: "2025-09-15T09:00:00+09:00"},
		End:   &calendarapi.EventDateTime{DateTime: "2025-09-15T10:30:00+09:00"},
	}

	loc := time.FixedZone("JST", 9*3600)
	iv, ok := eventInterval(ev, loc)
	require.True(t, ok)
	assert.Equal(t, 90, iv.Minutes())
	assert.Equal(t, 9, iv.Start.Hour())
}

func TestEventInterval_AllDayEvent(t *testing.T) {
	ev := &calendarapi.Event{
		Start: &calendarapi.EventDateTime{Date: "2025-09-15"},
		End:   &calendarapi.EventDateTime{Date: "2025-09-16"},
	}

	iv, ok := eventInterval(ev, time.UTC)
	require.True(t, ok)
	assert.Equal(t, 24*60, iv.Minutes())
}

func TestEventInterval_SkipsMalformed(t *testing.T) {
	cases := []*calendarapi.Event{
		nil,
		{},
		{Start: &calendarapi.EventDateTime{DateTime: "bogus"}, End: &calendarapi.EventDateTime{DateTime: "2025-09-15T10:00:00Z"}},
		{Start: &calendarapi.EventDateTime{DateTime: "2025-09-15T11:00:00Z"}, End: &calendarapi.EventDateTime{DateTime: "2025-09-15T10:00:00Z"}},
	}
	for _, ev := range cases {
		_, ok := eventInterval(ev, time.UTC)
		assert.False(t, ok)
	}
}
