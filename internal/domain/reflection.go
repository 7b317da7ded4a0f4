package domain

import "time"

type Reflection struct {
	ID   string
	Date time.Time
	Text string
	// Mood is a 1-5 self rating, 3 when unspecified.
	Mood int

	CreatedAt time.Time
}
