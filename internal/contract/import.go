package contract

// ImportResult reports what a goal import stored.
type ImportResult struct {
	GoalID    string `json:"goal_id"`
	GoalTitle string `json:"goal_title"`
	TaskCount int    `json:"task_count"`
}
