package formatter

import (
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/domain"
)

// FormatReflectionList renders recent reflections, newest first.
func FormatReflectionList(recs []*domain.Reflection) string {
	if len(recs) == 0 {
		return Dim("No reflections yet. Add one with `compass reflect add`.") + "\n"
	}

	var b strings.Builder
	for _, r := range recs {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleFg.Render(r.Date.Format("2006-01-02")),
			MoodFace(r.Mood),
			TruncID(r.ID)))
		b.WriteString(fmt.Sprintf("  %s\n\n", StyleFg.Render(r.Text)))
	}
	return b.String()
}

// FormatReflectionSummary renders a coach summary over recent reflections.
func FormatReflectionSummary(sum coach.ReflectionSummary, count, days int) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Last %d days", days)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d reflection(s)", count)))
	b.WriteString("\n\n")

	for _, part := range strings.Split(sum.Summary, " / ") {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("•"), StyleFg.Render(part)))
	}
	if len(sum.Improvements) > 0 {
		b.WriteString("\n")
		for i, imp := range sum.Improvements {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render(fmt.Sprintf("%d.", i+1)), StyleFg.Render(imp)))
		}
	}
	return b.String()
}
