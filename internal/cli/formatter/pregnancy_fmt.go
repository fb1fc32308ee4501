package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

const pregnancyBarWidth = 10

// FormatPregnancyList renders the herd's pregnancies with their derived
// progress and stage.
func FormatPregnancyList(views []*lifecycle.PregnancyView, window int) string {
	headers := []string{"ID", "DAM", "SPECIES", "CONCEIVED", "DAY", "PROGRESS", "STAGE", "DUE", "HEALTH"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		p := v.Pregnancy
		due := RelativeDaysStyled(v.DaysUntilDue, window)
		if !p.IsOpen() {
			due = StyleDim.Render("born " + FormatDate(p.BirthDate))
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.DamID),
			SpeciesBadge(p.Species),
			p.ConceptionDate.Format(domain.DateLayout),
			fmt.Sprintf("%d/%d", v.ElapsedDays, v.GestationDays),
			RenderGestationBar(v.DisplayProgress, v.Stage, pregnancyBarWidth),
			StageIndicator(v.Stage),
			due,
			HealthPill(p.HealthStatus),
		})
	}
	return RenderBox("Pregnancies", RenderTable(headers, rows))
}

// FormatPregnancyDetail renders one pregnancy with its ledgers.
func FormatPregnancyDetail(v *lifecycle.PregnancyView) string {
	p := v.Pregnancy
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  %s  %s\n", Bold(p.DamID), SpeciesBadge(p.Species), HealthPill(p.HealthStatus))
	fmt.Fprintf(&sb, "Conceived   %s\n", p.ConceptionDate.Format(domain.DateLayout))
	fmt.Fprintf(&sb, "Day         %d of %d\n", v.ElapsedDays, v.GestationDays)
	fmt.Fprintf(&sb, "Progress    %s %s\n", RenderGestationBar(v.DisplayProgress, v.Stage, 20), StageIndicator(v.Stage))
	fmt.Fprintf(&sb, "Due         %s (%s)\n", v.DueDate.Format(domain.DateLayout), RelativeDays(v.DaysUntilDue))
	if v.NextCheckup != nil {
		fmt.Fprintf(&sb, "Next check  %s\n", FormatDate(v.NextCheckup))
	}
	if !p.IsOpen() {
		fmt.Fprintf(&sb, "Born        %s  %s\n", FormatDate(p.BirthDate), Dim(Humanize(string(p.Calving.Problem))))
	}

	if len(p.Checkups) > 0 {
		sb.WriteString("\n" + Header("Checkups") + "\n")
		rows := make([][]string, 0, len(p.Checkups))
		for _, c := range p.Checkups {
			rows = append(rows, []string{
				fmt.Sprintf("#%d", c.Seq),
				c.Date.Format(domain.DateLayout),
				FormatBCS(c.BCS),
				FormatKg(c.WeightKg),
				HealthPill(c.HealthStatus),
				FormatDate(c.NextCheckupDate),
				Dim(Preview(c.Findings, 40)),
			})
		}
		sb.WriteString(RenderTable([]string{"#", "DATE", "BCS", "WEIGHT", "HEALTH", "NEXT", "FINDINGS"}, rows))
	}

	if len(p.BCSEntries) > 0 {
		sb.WriteString("\n" + Header("Body condition") + "\n")
		rows := make([][]string, 0, len(p.BCSEntries))
		for _, e := range p.BCSEntries {
			rows = append(rows, []string{e.MonthLabel, e.Date.Format(domain.DateLayout), FormatBCS(e.Score), Dim(Preview(e.Notes, 40))})
		}
		sb.WriteString(RenderTable([]string{"MONTH", "DATE", "SCORE", "NOTES"}, rows))
	}

	if len(p.Offspring) > 0 {
		sb.WriteString("\n" + Header("Offspring") + "\n")
		sb.WriteString(offspringTable(p.Offspring))
	}

	return RenderBox("Pregnancy "+shortID(p.ID), sb.String())
}

func offspringTable(offspring []domain.OffspringRecord) string {
	rows := make([][]string, 0, len(offspring))
	for _, o := range offspring {
		vigor := Humanize(string(o.Vigor))
		if o.Vigor.NeedsMonitoring() {
			vigor = StyleYellow.Render(vigor)
		}
		rows = append(rows, []string{Bold(o.TagID), string(o.Sex), FormatKg(o.BirthWeightKg), o.Condition, vigor})
	}
	return RenderTable([]string{"TAG", "SEX", "WEIGHT", "CONDITION", "VIGOR"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
