package domain

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDoing   TaskStatus = "doing"
	TaskDone    TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "doing": true, "done": true,
}

type SuggestionType string

const (
	SuggestionWeekly SuggestionType = "weekly"
)

type IntegrationKind string

const (
	// IntegrationICSFeed binds a secret ICS feed URL (Google Calendar
	// "private address" export or any other ICS publisher).
	IntegrationICSFeed IntegrationKind = "gcal_ics"

	// IntegrationCalendarAPI binds a Google Calendar ID resolved through
	// the Calendar API with OAuth credentials on disk.
	IntegrationCalendarAPI IntegrationKind = "gcal_api"
)
