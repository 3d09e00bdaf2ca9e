package formatter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
)

const (
	skillBarWidth = 12
	streakDays    = 14
)

// FormatSkillLevels renders one row per category the learner has touched,
// in catalog category order.
func FormatSkillLevels(levels map[string]domain.SkillLevel) string {
	if len(levels) == 0 {
		return Dim("No skills yet. Complete a lesson to get started.") + "\n"
	}

	rows := make([][]string, 0, len(levels))
	for _, cat := range skillOrder(levels) {
		sl := levels[cat]
		rows = append(rows, []string{
			CategoryBadge(cat),
			LevelIndicator(sl.Level),
			RenderProgress(sl.Progress, skillBarWidth),
			fmt.Sprintf("%d", sl.CoursesCount),
			fmt.Sprintf("%d done · %d active", sl.CompletedSkills, sl.InProgressSkills),
		})
	}
	return RenderTable([]string{"CATEGORY", "LEVEL", "PROGRESS", "COURSES", "SKILLS"}, rows)
}

func skillOrder(levels map[string]domain.SkillLevel) []string {
	var out []string
	for _, c := range domain.Categories {
		if _, ok := levels[c]; ok {
			out = append(out, c)
		}
	}
	var extra []string
	for c := range levels {
		if !slices.Contains(domain.Categories, c) {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// FormatStreaks renders the streak counters and a strip of the last two
// weeks, oldest first, ending today.
func FormatStreaks(s *service.StreakSummary, now time.Time) string {
	var b strings.Builder

	flame := Dim("·")
	if s.Current > 0 {
		flame = StyleRed.Render("🔥")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n", flame,
		Bold(fmt.Sprintf("%d day%s current", s.Current, plural(s.Current))),
		Dim(fmt.Sprintf("longest %d", s.Longest))))

	active := make(map[string]bool, len(s.ActivityDays))
	for _, d := range s.ActivityDays {
		active[d.Format(time.DateOnly)] = true
	}
	var strip strings.Builder
	for i := streakDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(time.DateOnly)
		if active[day] {
			strip.WriteString(StyleGreen.Render("■"))
		} else {
			strip.WriteString(Dim("□"))
		}
	}
	b.WriteString("\n" + strip.String() + "  " + Dim("last 14 days") + "\n")

	if !s.ActiveToday {
		b.WriteString("\n" + StyleYellow.Render("No activity yet today. Complete a lesson to keep your streak.") + "\n")
	}
	return b.String()
}
