package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored by percentage: green from 75, yellow from 35, blue below.
func RenderProgress(pct, width int) string {
	pct = clampPercent(pct)
	bar := progressBlocks(pct, width)
	return fmt.Sprintf("[%s] %3d%%", percentStyle(pct).Render(bar), pct)
}

// RenderCompactBar renders only the blocks, without brackets or a label.
// A dimmed bar is used for courses that have not been started.
func RenderCompactBar(pct, width int, dim bool) string {
	pct = clampPercent(pct)
	bar := progressBlocks(pct, width)
	if dim {
		return StyleDim.Render(bar)
	}
	return percentStyle(pct).Render(bar)
}

func progressBlocks(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func percentStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 75:
		return StyleGreen
	case pct >= 35:
		return StyleYellow
	default:
		return StyleBlue
	}
}

func clampPercent(pct int) int {
	return max(0, min(pct, 100))
}
