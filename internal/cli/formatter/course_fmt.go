package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
)

const outlineBarWidth = 20

// FormatCourseList renders the catalog as a table.
func FormatCourseList(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses match.") + "\n"
	}

	headers := []string{"ID", "TITLE", "CATEGORY", "LEVEL", "LESSONS", "RATING"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		title := Bold(c.Title)
		if c.Featured {
			title += " " + StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(c.ID)),
			title,
			CategoryBadge(c.Category),
			DifficultyBadge(c.Difficulty),
			strconv.Itoa(c.TotalLessons),
			Rating(c.Rating),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d course%s", len(courses), plural(len(courses)))) + "\n")
	return b.String()
}

// FormatCategories renders the per-category course counts.
func FormatCategories(cats []service.CategorySummary) string {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		count := strconv.Itoa(c.CourseCount)
		if c.CourseCount == 0 {
			count = Dim(count)
		}
		rows = append(rows, []string{CategoryBadge(c.Category), count})
	}
	return RenderTable([]string{"CATEGORY", "COURSES"}, rows)
}

// FormatCourseOutline renders a course with its lessons and the learner's
// progress through them.
func FormatCourseOutline(o *service.CourseOutline) string {
	c := o.Course
	var b strings.Builder

	b.WriteString(Bold(c.Title) + "\n")
	meta := []string{CategoryBadge(c.Category), DifficultyBadge(c.Difficulty)}
	if c.Duration != "" {
		meta = append(meta, Dim(c.Duration))
	}
	if c.Instructor != "" {
		meta = append(meta, Dim("by "+c.Instructor))
	}
	b.WriteString(strings.Join(meta, Dim(" · ")) + "\n")
	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}
	if len(c.Skills) > 0 {
		b.WriteString(Dim("Skills: ") + strings.Join(c.Skills, ", ") + "\n")
	}

	b.WriteString("\n")
	if o.Enrolled {
		b.WriteString(RenderProgress(o.Progress.Progress, outlineBarWidth) + "  " + StatusPill(o.Progress.Status) + "\n")
		b.WriteString(Dim(fmt.Sprintf("%d of %d lessons · %s spent",
			len(o.Progress.CompletedLessons), o.Progress.TotalLessons, FormatHours(o.Progress.HoursSpent))) + "\n")
	} else {
		b.WriteString(Dim("Not enrolled. Complete the first lesson to start.") + "\n")
	}

	if len(o.Lessons) > 0 {
		b.WriteString("\n" + Header("Lessons") + "\n")
		b.WriteString(RenderTree(outlineItems(o.Lessons)))
	}
	return b.String()
}

// outlineItems marks the first open lesson as current.
func outlineItems(states []progress.LessonState) []TreeItem {
	items := make([]TreeItem, 0, len(states))
	current := false
	for _, s := range states {
		item := TreeItem{
			Title:  s.Lesson.Title,
			Seq:    s.Lesson.Order,
			Detail: FormatMinutes(s.Lesson.DurationMin),
		}
		switch {
		case s.Completed:
			item.State = TreeDone
		case s.Locked:
			item.State = TreeLocked
		case !current:
			item.State = TreeCurrent
			current = true
		}
		items = append(items, item)
	}
	return items
}

// FormatLesson renders a lesson with its steps and assignments.
func FormatLesson(v *service.LessonView) string {
	l := v.Lesson
	var b strings.Builder

	b.WriteString(Dim(fmt.Sprintf("%s · Lesson %d", v.Course.Title, l.Order)) + "\n")
	b.WriteString(Bold(l.Title) + "  " + lessonState(v) + "\n")
	b.WriteString(Dim(FormatMinutes(l.DurationMin)) + "\n")
	if l.Description != "" {
		b.WriteString("\n" + l.Description + "\n")
	}

	if v.Locked {
		b.WriteString("\n" + StyleYellow.Render("Complete the previous lesson to unlock this one.") + "\n")
	}

	if len(l.Steps) > 0 {
		b.WriteString("\n" + Header("Steps") + "\n")
		for i, s := range l.Steps {
			line := fmt.Sprintf("%d. %s", i+1, s.Title)
			if s.DurationMin > 0 {
				line += " " + Dim("("+FormatMinutes(s.DurationMin)+")")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(v.Assignments) > 0 {
		b.WriteString("\n" + Header("Assignments") + "\n")
		for _, a := range v.Assignments {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Dim(fmt.Sprintf("#%d", a.ID)), a.Title,
				Dim(fmt.Sprintf("(%d pts)", a.Points))))
		}
	}

	var nav []string
	if v.Previous != nil {
		nav = append(nav, Dim("← ")+v.Previous.Title)
	}
	if v.Next != nil {
		nav = append(nav, v.Next.Title+Dim(" →"))
	}
	if len(nav) > 0 {
		b.WriteString("\n" + strings.Join(nav, Dim("   |   ")) + "\n")
	}
	return b.String()
}

func lessonState(v *service.LessonView) string {
	switch {
	case v.Completed:
		return StyleGreen.Render("✔ Completed")
	case v.Locked:
		return Dim("🔒 Locked")
	default:
		return StyleBlue.Render("○ Available")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
