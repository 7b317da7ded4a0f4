package formatter

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/contract"
)

// FormatWbsDraft renders a drafted goal breakdown for review.
func FormatWbsDraft(res *contract.WbsResult) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Breakdown — %s", res.GoalTitle)))
	b.WriteString("\n")

	if len(res.Items) == 0 {
		b.WriteString(Dim("Nothing to propose."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "TITLE", "IMPACT", "EFFORT", "DUE", "AFTER"}
	rows := make([][]string, 0, len(res.Items))
	for i, item := range res.Items {
		due := Dim("-")
		if item.Due != nil {
			due = StyleFg.Render(item.Due.Format("2006-01-02"))
		}
		after := Dim("-")
		if len(item.PrereqIDs) > 0 {
			parts := make([]string, len(item.PrereqIDs))
			for j, p := range item.PrereqIDs {
				parts[j] = fmt.Sprintf("%d", p+1)
			}
			after = Dim(strings.Join(parts, ","))
		}
		rows = append(rows, []string{
			StyleHeader.Render(fmt.Sprintf("%d", i+1)),
			StyleFg.Render(item.Title),
			ImpactStars(item.Impact),
			StyleBlue.Render(FormatMinutes(item.EffortMin)),
			due,
			after,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d step(s) proposed", len(res.Items))))
	b.WriteString("\n")
	return b.String()
}

// FormatWbsApply renders the outcome of applying a breakdown.
func FormatWbsApply(res *contract.WbsApplyResult) string {
	return fmt.Sprintf("%s %s created, %s skipped\n",
		StyleGreen.Render("✔"),
		Bold(fmt.Sprintf("%d task(s)", res.Created)),
		Dim(fmt.Sprintf("%d", res.Skipped)))
}
