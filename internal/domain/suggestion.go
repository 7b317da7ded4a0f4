package domain

import "time"

// Suggestion is a stored AI-assisted recommendation, currently only the
// weekly review payload serialized as JSON.
type Suggestion struct {
	ID          string
	Date        time.Time
	Type        SuggestionType
	ContentJSON string
}
