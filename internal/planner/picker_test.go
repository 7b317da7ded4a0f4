package planner

import (
	"fmt"
	"testing"

	"github.com/kawatsu/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickToday_BudgetAndOrdering(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", Title: "Ship release notes", Impact: 5, EffortMin: 60, Due: datePtr(today)},
		{ID: "t2", Title: "Tidy backlog", Impact: 1, EffortMin: 30},
	}

	picked := PickToday(tasks, 90, today, DefaultWeights())
	require.Len(t, picked, 2)
	assert.Equal(t, "t1", picked[0].Task.ID)
	assert.Equal(t, "t2", picked[1].Task.ID)
	assert.Greater(t, picked[0].Score, picked[1].Score)
}

func TestPickToday_AlwaysReturnsOneWhenAnyOpen(t *testing.T) {
	tasks := []domain.Task{
		{ID: "big", Title: "Write the whole thesis", Impact: 5, EffortMin: 500},
	}

	picked := PickToday(tasks, 60, today, DefaultWeights())
	require.Len(t, picked, 1, "cheapest task exceeds budget but must still be picked")
	assert.Equal(t, "big", picked[0].Task.ID)
}

func TestPickToday_CapAtThree(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, domain.Task{
			ID:        fmt.Sprintf("t%d", i),
			Impact:    3,
			EffortMin: 10,
		})
	}

	picked := PickToday(tasks, 600, today, DefaultWeights())
	assert.Len(t, picked, 3)
}

func TestPickToday_EmptyInput(t *testing.T) {
	assert.Empty(t, PickToday(nil, 90, today, DefaultWeights()))
}

func TestPickToday_SkipsDoneTasks(t *testing.T) {
	tasks := []domain.Task{
		{ID: "done", Status: domain.TaskDone, Impact: 5, EffortMin: 10},
		{ID: "open", Status: domain.TaskPending, Impact: 1, EffortMin: 10},
	}

	picked := PickToday(tasks, 90, today, DefaultWeights())
	require.Len(t, picked, 1)
	assert.Equal(t, "open", picked[0].Task.ID)
}

func TestPickToday_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Impact: 3, EffortMin: 30},
		{ID: "b", Impact: 3, EffortMin: 30},
		{ID: "c", Impact: 3, EffortMin: 30},
		{ID: "d", Impact: 4, EffortMin: 30},
	}

	first := PickToday(tasks, 120, today, DefaultWeights())
	for i := 0; i < 20; i++ {
		again := PickToday(tasks, 120, today, DefaultWeights())
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Task.ID, again[j].Task.ID)
			assert.Equal(t, first[j].Score, again[j].Score)
		}
	}
}

func TestPickToday_TiesKeepEnumerationOrder(t *testing.T) {
	// Identical tasks score identically; the stable sort must preserve
	// input order.
	tasks := []domain.Task{
		{ID: "first", Impact: 2, EffortMin: 20},
		{ID: "second", Impact: 2, EffortMin: 20},
		{ID: "third", Impact: 2, EffortMin: 20},
	}

	picked := PickToday(tasks, 600, today, DefaultWeights())
	require.Len(t, picked, 3)
	assert.Equal(t, "first", picked[0].Task.ID)
	assert.Equal(t, "second", picked[1].Task.ID)
	assert.Equal(t, "third", picked[2].Task.ID)
}

func TestPickToday_BudgetWalk(t *testing.T) {
	// 90 minutes: the 60m top task and the 30m second task exactly
	// exhaust the budget; a third 30m task no longer fits.
	tasks := []domain.Task{
		{ID: "t1", Impact: 5, EffortMin: 60, Due: datePtr(today)},
		{ID: "t2", Impact: 4, EffortMin: 30},
		{ID: "t3", Impact: 1, EffortMin: 30},
	}

	picked := PickToday(tasks, 90, today, DefaultWeights())
	require.Len(t, picked, 2)
	assert.Equal(t, "t1", picked[0].Task.ID)
	assert.Equal(t, "t2", picked[1].Task.ID)
}

func TestPickToday_SkipsOversizedButKeepsWalking(t *testing.T) {
	// The second-ranked task is too large for what remains, but a
	// lower-ranked small task still fits.
	tasks := []domain.Task{
		{ID: "t1", Impact: 5, EffortMin: 40, Due: datePtr(today)},
		{ID: "t2", Impact: 5, EffortMin: 300},
		{ID: "t3", Impact: 1, EffortMin: 15},
	}

	picked := PickToday(tasks, 60, today, DefaultWeights())
	require.Len(t, picked, 2)
	assert.Equal(t, "t1", picked[0].Task.ID)
	assert.Equal(t, "t3", picked[1].Task.ID)
}

func TestPickToday_ZeroEffortUsesDefault(t *testing.T) {
	// A task without an estimate consumes the default 30 minutes of
	// budget once picked.
	tasks := []domain.Task{
		{ID: "noest", Impact: 5, Due: datePtr(today)},
		{ID: "small", Impact: 1, EffortMin: 20},
	}

	picked := PickToday(tasks, 40, today, DefaultWeights())
	require.Len(t, picked, 1, "30m default plus 20m should exceed the 40m budget")
	assert.Equal(t, "noest", picked[0].Task.ID)
}

func TestPickToday_NonPositiveBudgetClampedToOne(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Impact: 3, EffortMin: 30},
		{ID: "b", Impact: 2, EffortMin: 30},
	}

	picked := PickToday(tasks, 0, today, DefaultWeights())
	require.Len(t, picked, 1, "only the guaranteed first pick fits a degenerate budget")
	assert.Equal(t, "a", picked[0].Task.ID)
}

func TestPickToday_UsesExplicitToday(t *testing.T) {
	due := today.AddDate(0, 0, 2)
	tasks := []domain.Task{
		{ID: "dated", Impact: 1, EffortMin: 30, Due: &due},
		{ID: "plain", Impact: 1, EffortMin: 30},
	}

	// Evaluated today, the dated task is urgent and ranks first.
	picked := PickToday(tasks, 600, today, DefaultWeights())
	require.NotEmpty(t, picked)
	assert.Equal(t, "dated", picked[0].Task.ID)

	// Evaluated a month later it is overdue and ranks even higher.
	later := today.AddDate(0, 1, 0)
	picked = PickToday(tasks, 600, later, DefaultWeights())
	require.NotEmpty(t, picked)
	assert.Equal(t, "dated", picked[0].Task.ID)
	assert.Greater(t, picked[0].Score, Score(tasks[1], later, DefaultWeights()))
}
