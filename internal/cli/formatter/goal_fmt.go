package formatter

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/domain"
)

// FormatGoalList renders goals as a table.
func FormatGoalList(goals []*domain.Goal) string {
	if len(goals) == 0 {
		return Dim("No goals yet. Add one with `compass goal add`.") + "\n"
	}

	headers := []string{"ID", "TITLE", "AREA", "DEADLINE"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		deadline := Dim("-")
		if g.Deadline != nil {
			deadline = RelativeDateStyled(*g.Deadline)
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			StyleFg.Render(g.Title),
			Dim(g.Area),
			deadline,
		})
	}
	return RenderTable(headers, rows)
}

// FormatGoalInspect renders a single goal with its tasks.
func FormatGoalInspect(goal *domain.Goal, tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(goal.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("id"), StyleFg.Render(goal.ID)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("area"), StyleFg.Render(goal.Area)))
	if goal.Why != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("why"), StyleFg.Render(goal.Why)))
	}
	if goal.KGI != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("kgi"), StyleFg.Render(goal.KGI)))
	}
	if goal.Deadline != nil {
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", Dim("deadline"),
			StyleFg.Render(goal.Deadline.Format("2006-01-02")),
			RelativeDateStyled(*goal.Deadline)))
	}

	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks under this goal."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(FormatTaskList(tasks))
	return b.String()
}

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	headers := []string{"ID", "STATUS", "TITLE", "IMPACT", "EFFORT", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := Dim("-")
		if t.Due != nil {
			due = RelativeDateStyled(*t.Due)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			StatusPill(t.Status),
			StyleFg.Render(t.Title),
			ImpactStars(t.Impact),
			StyleBlue.Render(FormatMinutes(t.EffectiveEffort())),
			due,
		})
	}
	return RenderTable(headers, rows)
}
