package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGestationBar renders a gestation bar like [████░░░░]  45% colored by
// stage. pct is a display percentage and is clamped to 0-100.
func RenderGestationBar(pct int, stage domain.Stage, width int) string {
	return fmt.Sprintf("[%s] %3d%%", StageColor(stage).Render(blocks(pct, width)), clampPct(pct))
}

// RenderCompactBar renders the bar alone, without brackets or percentage.
func RenderCompactBar(pct int, stage domain.Stage, width int) string {
	return StageColor(stage).Render(blocks(pct, width))
}

func blocks(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := clampPct(pct) * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
