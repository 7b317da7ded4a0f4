package contract

import "time"

// WbsItem is one proposed task in a goal breakdown.
type WbsItem struct {
	Title     string     `json:"title"`
	EffortMin int        `json:"effort_min"`
	Impact    int        `json:"impact"`
	Due       *time.Time `json:"due,omitempty"`
	PrereqIDs []int      `json:"prereq_ids"`
}

// WbsResult carries a drafted breakdown for review before it is applied.
type WbsResult struct {
	GoalID    string    `json:"goal_id"`
	GoalTitle string    `json:"goal_title"`
	Items     []WbsItem `json:"items"`
}

// WbsApplyResult reports how many drafted tasks were actually stored.
// Drafts whose titles already exist under the goal are skipped.
type WbsApplyResult struct {
	GoalID  string `json:"goal_id"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}
