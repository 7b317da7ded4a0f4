package formatter

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/contract"
)

// FormatPlan renders the daily shortlist.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Today's plan — %s", resp.Date)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Budget: %s", FormatMinutes(resp.MinutesAvailable))))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Nothing to do. Add tasks or enjoy the slack."))
		b.WriteString("\n")
		return b.String()
	}

	total := 0
	for i, item := range resp.Items {
		due := Dim("no due")
		if item.Due != nil {
			due = RelativeDateStyled(*item.Due)
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			Bold(item.Title),
			TruncID(item.TaskID)))
		b.WriteString(fmt.Sprintf("   %s  %s  %s  %s\n",
			ImpactStars(item.Impact),
			StyleBlue.Render(FormatMinutes(item.EffortMin)),
			due,
			Dim(fmt.Sprintf("score %.3f", item.Score))))
		if item.CoachLine != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", StyleGreen.Render("▸"), StyleFg.Render(item.CoachLine)))
		}
		b.WriteString("\n")
		total += item.EffortMin
	}

	b.WriteString(Dim(fmt.Sprintf("%d task(s), %s planned", len(resp.Items), FormatMinutes(total))))
	b.WriteString("\n")
	return b.String()
}

// FormatAvailability renders the free-time calculation for a day.
func FormatAvailability(resp *contract.AvailabilityResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Availability — %s", resp.Date)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Window  %s\n", StyleFg.Render(resp.WorkStart+" – "+resp.WorkEnd)))
	b.WriteString(fmt.Sprintf("Busy    %s\n", StyleYellow.Render(FormatMinutes(resp.BusyMinutes))))
	b.WriteString(fmt.Sprintf("Free    %s\n", StyleGreen.Render(FormatMinutes(resp.FreeMinutes))))
	return b.String()
}
