package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageColor returns the style for a gestation stage.
func StageColor(stage domain.Stage) lipgloss.Style {
	switch stage {
	case domain.StageEarly:
		return StyleBlue
	case domain.StageMid:
		return StyleGreen
	case domain.StageLate:
		return StyleYellow
	case domain.StageOverdue:
		return StyleRed
	default:
		return StyleDim
	}
}

// StageIndicator returns a colored stage label such as "● LATE".
func StageIndicator(stage domain.Stage) string {
	if stage == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return StageColor(stage).Render("● " + strings.ToUpper(string(stage)))
}

// AlertIndicator returns a colored urgency label for a reminder.
func AlertIndicator(level domain.AlertLevel) string {
	switch level {
	case domain.AlertOverdue:
		return StyleRed.Render("● OVERDUE")
	case domain.AlertDueSoon:
		return StyleYellow.Render("● DUE SOON")
	case domain.AlertOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// CheckIndicator returns a colored label for a breeding confirmation check.
func CheckIndicator(status domain.BreedingCheckStatus) string {
	switch status {
	case domain.CheckOverdue:
		return StyleRed.Render("● OVERDUE")
	case domain.CheckDueSoon:
		return StyleYellow.Render("● DUE SOON")
	case domain.CheckNotYetDue:
		return StyleGreen.Render("● NOT YET DUE")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(status)))
	}
}

// HealthPill returns a colored health status indicator.
func HealthPill(h domain.HealthStatus) string {
	switch h {
	case domain.HealthGood:
		return StyleGreen.Render("● Good")
	case domain.HealthAttentionNeeded:
		return StyleYellow.Render("▲ Attention")
	case domain.HealthCritical:
		return StyleRed.Render("✖ Critical")
	default:
		return StyleDim.Render(string(h))
	}
}

// BreedingStatusPill returns a colored breeding status indicator.
func BreedingStatusPill(s domain.BreedingStatus) string {
	switch s {
	case domain.BreedingUnconfirmed:
		return StyleBlue.Render("○ Unconfirmed")
	case domain.BreedingConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.BreedingOpen:
		return StyleDim.Render("✖ Open")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
