package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

// FormatBreedingList renders breedings as a table with their confirmation
// check as of the caller's clock.
func FormatBreedingList(breedings []*domain.BreedingEvent, checks map[string]lifecycle.BreedingCheck) string {
	headers := []string{"ID", "DAM", "SIRE", "SPECIES", "BRED", "METHOD", "STATUS", "CHECK"}
	rows := make([][]string, 0, len(breedings))
	for _, b := range breedings {
		check := Dim("--")
		if c, ok := checks[b.ID]; ok && b.Status == domain.BreedingUnconfirmed {
			check = fmt.Sprintf("%s %s", c.CheckDate.Format(domain.DateLayout), RelativeDaysStyled(c.DaysUntil, lifecycle.DefaultDueSoonDays))
		}
		rows = append(rows, []string{
			TruncID(b.ID),
			Bold(b.DamID),
			b.SireID,
			SpeciesBadge(b.Species),
			b.BreedingDate.Format(domain.DateLayout),
			Humanize(string(b.Method)),
			BreedingStatusPill(b.Status),
			check,
		})
	}
	return RenderBox("Breedings", RenderTable(headers, rows))
}

// FormatBreedingCheck renders the confirmation check for one breeding.
func FormatBreedingCheck(b *domain.BreedingEvent, c lifecycle.BreedingCheck) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", Bold(b.DamID), BreedingStatusPill(b.Status))
	fmt.Fprintf(&sb, "Bred        %s (%s)\n", b.BreedingDate.Format(domain.DateLayout), Humanize(string(b.Method)))
	fmt.Fprintf(&sb, "Check date  %s\n", c.CheckDate.Format(domain.DateLayout))
	fmt.Fprintf(&sb, "Status      %s %s\n", CheckIndicator(c.Status), Dim("("+lifecycle.Alert{OffsetDays: c.DaysUntil}.OffsetText()+")"))
	return RenderBox("Breeding check", sb.String())
}

// FormatConfirmation renders the result of confirming a breeding.
func FormatConfirmation(resp *app.ConfirmBreedingResponse, view *lifecycle.PregnancyView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Breeding %s confirmed for %s\n",
		StyleGreen.Render("✔"), TruncID(resp.Breeding.ID), Bold(resp.Breeding.DamID))
	fmt.Fprintf(&sb, "Pregnancy %s opened, conceived %s\n",
		TruncID(resp.Pregnancy.ID), resp.Pregnancy.ConceptionDate.Format(domain.DateLayout))
	if view != nil {
		fmt.Fprintf(&sb, "Expected birth %s (%s)\n",
			view.DueDate.Format(domain.DateLayout), RelativeDays(view.DaysUntilDue))
	}
	return sb.String()
}
