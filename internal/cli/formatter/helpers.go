package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
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
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly date relative to now.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueStyled renders an assignment due date relative to now, red when
// overdue or due within two days and yellow within a week.
func DueStyled(due *time.Time, now time.Time) string {
	if due == nil {
		return Dim("--")
	}
	text := RelativeDateFrom(*due, now)
	days := int(math.Round(due.Sub(now).Hours() / 24))
	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// HumanDate formats t as "Today", "Yesterday" or "Jan 2, 2006" relative to now.
func HumanDate(t, now time.Time) string {
	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StatusPill returns a colored indicator for a course status.
func StatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.CourseCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.CourseInProgress:
		return StyleYellow.Render("● In Progress")
	case domain.CourseNotStarted:
		return StyleDim.Render("○ Not Started")
	default:
		return StyleDim.Render(string(status))
	}
}

// SubmissionPill returns a colored indicator for a submission status.
func SubmissionPill(status domain.SubmissionStatus) string {
	switch status {
	case domain.SubmissionReviewed:
		return StyleGreen.Render("✔ Reviewed")
	case domain.SubmissionSubmitted:
		return StyleBlue.Render("● Submitted")
	default:
		return StyleDim.Render(string(status))
	}
}

// DifficultyBadge colors a course difficulty.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyBeginner:
		return StyleGreen.Render(capitalize(string(d)))
	case domain.DifficultyIntermediate:
		return StyleYellow.Render(capitalize(string(d)))
	case domain.DifficultyAdvanced:
		return StyleRed.Render(capitalize(string(d)))
	default:
		return StyleDim.Render("--")
	}
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c string) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(capitalize(c))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders fractional hours with one decimal, e.g. "3.5h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// Rating renders a 0-5 rating as "★ 4.7".
func Rating(r float64) string {
	if r <= 0 {
		return Dim("--")
	}
	return StyleYellow.Render(fmt.Sprintf("★ %.1f", r))
}
