package planner

import (
	"sort"
	"time"

	"github.com/kawatsu/compass/internal/domain"
)

// PickToday scores the open tasks and greedily selects a shortlist fitting
// the minutes budget. The result is ordered by descending score (stable on
// input order for equal scores) and never longer than three entries.
//
// When at least one task is given the result is never empty: the top-scored
// task is accepted even if its effort overflows the budget. PickToday never
// fails; degenerate input only degenerates the output.
func PickToday(tasks []domain.Task, minutesAvailable int, today time.Time, w Weights) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		if !t.Open() {
			continue
		}
		scored = append(scored, ScoredTask{Task: t, Score: Score(t, today, w)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	remaining := minutesAvailable
	if remaining < 1 {
		remaining = 1
	}

	var picked []ScoredTask
	for _, st := range scored {
		effort := st.Task.EffectiveEffort()
		if effort <= remaining || len(picked) == 0 {
			picked = append(picked, st)
			remaining -= effort
		}
		if len(picked) >= maxPicked {
			break
		}
	}
	return picked
}
