package formatter

import (
	"fmt"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
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
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelColor returns the style for a skill level label.
func LevelColor(level domain.SkillLevelLabel) lipgloss.Style {
	switch level {
	case domain.LevelAdvanced:
		return StyleGreen
	case domain.LevelIntermediate:
		return StyleYellow
	case domain.LevelBeginner:
		return StyleBlue
	default:
		return StyleDim
	}
}

// LevelIndicator returns a colored level indicator such as "● ADVANCED".
func LevelIndicator(level domain.SkillLevelLabel) string {
	if level == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return LevelColor(level).Render("● " + strings.ToUpper(string(level)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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

// DisableColor strips styling from every later render, for --no-color and
// output that is not a terminal.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
