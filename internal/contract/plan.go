// Package contract defines the stable response shapes returned by the
// service layer and rendered by the CLI.
package contract

import "time"

// PlanItem is one entry of the daily shortlist.
type PlanItem struct {
	TaskID    string     `json:"task_id"`
	Title     string     `json:"title"`
	GoalID    string     `json:"goal_id"`
	Impact    int        `json:"impact"`
	EffortMin int        `json:"effort_min"`
	Due       *time.Time `json:"due,omitempty"`
	// Score is rounded to three decimals for presentation.
	Score     float64 `json:"score"`
	CoachLine string  `json:"coach_line"`
}

// PlanResponse is the full answer to a "what should I do today" request.
type PlanResponse struct {
	Date             string     `json:"date"`
	MinutesAvailable int        `json:"minutes_available"`
	Items            []PlanItem `json:"items"`
}

// AvailabilityResponse reports the free minutes computed from a calendar.
type AvailabilityResponse struct {
	Date        string `json:"date"`
	WorkStart   string `json:"work_start"`
	WorkEnd     string `json:"work_end"`
	BusyMinutes int    `json:"busy_minutes"`
	FreeMinutes int    `json:"free_minutes"`
}
