package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

// FormatReminders renders derived reminders most urgent first, followed by
// a count summary.
func FormatReminders(resp *app.RemindersResponse, window int) string {
	var b strings.Builder

	if len(resp.Alerts) == 0 {
		b.WriteString(Dim("Nothing due.") + "\n")
	} else {
		headers := []string{"LEVEL", "KIND", "SUBJECT", "DUE", "WHEN"}
		rows := make([][]string, 0, len(resp.Alerts))
		for _, a := range resp.Alerts {
			rows = append(rows, []string{
				AlertIndicator(a.Level),
				ReminderKindLabel(a.Kind),
				Bold(a.Subject),
				a.DueDate.Format(domain.DateLayout),
				RelativeDaysStyled(a.OffsetDays, window),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	c := resp.Counts
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s, %s\n",
		StyleRed.Render(fmt.Sprintf("%d Overdue", c.Overdue)),
		StyleYellow.Render(fmt.Sprintf("%d Due Soon", c.DueSoon)),
		StyleGreen.Render(fmt.Sprintf("%d On Track", c.OnTrack)),
	))

	return RenderBox("Reminders "+resp.GeneratedAt.Format(domain.DateLayout), b.String())
}

// ReminderKindLabel returns a short human label for a reminder kind.
func ReminderKindLabel(k domain.ReminderKind) string {
	switch k {
	case domain.ReminderBreedingCheck:
		return "Breeding check"
	case domain.ReminderPregnancyCheckup:
		return "Checkup"
	case domain.ReminderExpectedBirth:
		return "Expected birth"
	case domain.ReminderDeworming:
		return "Deworming"
	default:
		return Humanize(string(k))
	}
}

// FormatAlertLine renders one alert on a single line for plain output.
func FormatAlertLine(a lifecycle.Alert) string {
	return fmt.Sprintf("%s %s %s %s (%s)",
		a.DueDate.Format(domain.DateLayout), string(a.Level), string(a.Kind), a.Subject, a.OffsetText())
}
