package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
)

const courseBarWidth = 10

// FormatCompletion reports what completing a lesson changed.
func FormatCompletion(r *service.CompletionResult) string {
	var b strings.Builder

	if r.AlreadyCompleted {
		b.WriteString(Dim(fmt.Sprintf("Lesson %q was already completed.", r.Lesson.Title)) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("✔ Completed ") + Bold(r.Lesson.Title) + "\n")
	}
	if r.Enrolled {
		b.WriteString(StyleBlue.Render("Enrolled in ") + r.Course.Title + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Course", RenderProgress(r.CourseProgress.Progress, courseBarWidth)))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Overall", RenderProgress(r.OverallProgress, courseBarWidth)))

	if r.Unlocked != nil {
		b.WriteString("\n" + StyleYellow.Render("Unlocked: ") + r.Unlocked.Title + "\n")
	}
	if r.Certificate != nil {
		b.WriteString("\n" + StyleYellowBold.Render("🎓 Certificate earned for "+r.Certificate.CourseName) + "\n")
		b.WriteString(Dim("Credential "+r.Certificate.CredentialID) + "\n")
	}
	return b.String()
}

// FormatOverview renders the progress dashboard with the courses of the
// selected tab.
func FormatOverview(o *service.ProgressOverview, courses []service.EnrolledCourse) string {
	up := o.Progress
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-16s %s\n", "Overall", RenderProgress(up.OverallProgress, outlineBarWidth)))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Courses done", Bold(fmt.Sprintf("%d / %d", up.CoursesCompleted, up.TotalCourses))))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Hours learned", Bold(FormatHours(up.TotalHoursLearned))))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Streak", Bold(fmt.Sprintf("%d day%s", up.CurrentStreak, plural(up.CurrentStreak)))+
		Dim(fmt.Sprintf(" (longest %d)", up.LongestStreak))))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Certificates", Bold(strconv.Itoa(len(o.Certificates)))))

	b.WriteString("\n" + Header("Courses") + "\n")
	b.WriteString(FormatEnrolledCourses(courses))

	if len(o.Achievements) > 0 {
		b.WriteString("\n" + Header("Achievements") + "\n")
		for _, a := range o.Achievements {
			b.WriteString(StyleYellow.Render("★ ") + Bold(a.Title) + Dim(" · "+a.Description+" · "+HumanDate(a.Date, o.GeneratedAt)) + "\n")
		}
	}

	return RenderBox("Progress", b.String())
}

// FormatEnrolledCourses renders enrolled courses with a compact bar each.
func FormatEnrolledCourses(courses []service.EnrolledCourse) string {
	if len(courses) == 0 {
		return Dim("No courses here yet.") + "\n"
	}
	rows := make([][]string, 0, len(courses))
	for _, ec := range courses {
		p := ec.Progress
		rows = append(rows, []string{
			Dim(strconv.Itoa(ec.Course.ID)),
			Bold(ec.Course.Title),
			RenderCompactBar(p.Progress, courseBarWidth, p.Progress == 0) + fmt.Sprintf(" %3d%%", p.Progress),
			fmt.Sprintf("%d/%d", len(p.CompletedLessons), p.TotalLessons),
			StatusPill(p.Status),
		})
	}
	return RenderTable([]string{"ID", "COURSE", "PROGRESS", "LESSONS", "STATUS"}, rows)
}
