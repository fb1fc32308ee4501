package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
)

// FormatBirth renders a recorded birth with its follow-up reminders.
func FormatBirth(resp *app.RecordBirthResponse) string {
	p := resp.Pregnancy
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s gave birth on %s to %d\n",
		StyleGreen.Render("✔"), Bold(p.DamID), FormatDate(p.BirthDate), len(resp.Offspring))
	sb.WriteString(offspringTable(resp.Offspring))

	if len(resp.Deworming) > 0 {
		sb.WriteString("\n" + Header("Deworming") + "\n")
		for _, r := range resp.Deworming {
			fmt.Fprintf(&sb, "  %s  due %s\n", r.OffspringTag, r.DueDate.Format(domain.DateLayout))
		}
	}
	if len(resp.Monitoring) > 0 {
		sb.WriteString("\n")
		for _, o := range resp.Monitoring {
			sb.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s is %s, monitor closely", o.TagID, Humanize(string(o.Vigor)))) + "\n")
		}
	}
	return RenderBox("Birth "+shortID(resp.RecordID), sb.String())
}
