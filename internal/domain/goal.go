package domain

import "time"

type Goal struct {
	ID    string
	Title string
	Why   string
	KGI   string

	Deadline *time.Time
	Area     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
