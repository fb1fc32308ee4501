package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDays renders a whole-day offset: "Today", "Tomorrow", "In 6d",
// "3d ago". Positive offsets lie in the future.
func RelativeDays(offset int) string {
	switch {
	case offset == 0:
		return "Today"
	case offset == 1:
		return "Tomorrow"
	case offset == -1:
		return "Yesterday"
	case offset > 0:
		return fmt.Sprintf("In %dd", offset)
	default:
		return fmt.Sprintf("%dd ago", -offset)
	}
}

// RelativeDaysStyled colors RelativeDays by urgency against window.
func RelativeDaysStyled(offset, window int) string {
	text := RelativeDays(offset)
	switch {
	case offset < 0:
		return StyleRed.Render(text)
	case offset <= window:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// FormatDate renders a calendar date, or a dimmed placeholder for nil/zero.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Dim("--")
	}
	return t.Format(domain.DateLayout)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatKg renders a weight with at most one decimal.
func FormatKg(kg float64) string {
	if kg == float64(int(kg)) {
		return fmt.Sprintf("%d kg", int(kg))
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatBCS renders a body condition score on the five-point scale.
func FormatBCS(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "/5"
}

// SpeciesBadge returns a capitalized, purple-styled species label.
func SpeciesBadge(s domain.Species) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(s.DisplayName())
}

// Humanize turns a snake_case enum value into words: "artificial_insemination"
// becomes "artificial insemination".
func Humanize(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}

// Preview shortens free text for a table cell.
func Preview(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
