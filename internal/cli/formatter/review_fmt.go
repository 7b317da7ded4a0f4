package formatter

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/review"
)

// FormatWeeklyReview renders a stored weekly review payload.
func FormatWeeklyReview(p *review.WeeklyPayload) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Weekly review — %s to %s", p.Range.Start, p.Range.End)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d reflection(s), generated %s", p.Count, p.GeneratedAt)))
	b.WriteString("\n\n")

	b.WriteString(StyleBold.Render("Summary"))
	b.WriteString("\n")
	for _, part := range strings.Split(p.Summary, " / ") {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("•"), StyleFg.Render(part)))
	}

	if len(p.Improvements) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Try next week"))
		b.WriteString("\n")
		for i, imp := range p.Improvements {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render(fmt.Sprintf("%d.", i+1)), StyleFg.Render(imp)))
		}
	}

	return b.String()
}
