package progress

import (
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

const (
	StreakWeekDays      = 7
	HoursMilestoneHours = 40
)

type Achievement struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
}

// Achievements lists the milestones reached by up. Derived counters must be
// current; run Recalculate and ComputeStreaks first.
func Achievements(up domain.UserProgress, now time.Time) []Achievement {
	var out []Achievement
	if up.CoursesCompleted > 0 {
		out = append(out, Achievement{
			ID:          "course-completed",
			Title:       "Course Completed",
			Description: fmt.Sprintf("Completed %d course%s", up.CoursesCompleted, plural(up.CoursesCompleted)),
			Date:        lastCompletedAt(up, now),
		})
	}
	if up.CurrentStreak >= StreakWeekDays {
		out = append(out, Achievement{
			ID:          "streak-week",
			Title:       "Week Warrior",
			Description: fmt.Sprintf("%d day learning streak", up.CurrentStreak),
			Date:        now,
		})
	}
	if up.TotalHoursLearned >= HoursMilestoneHours {
		out = append(out, Achievement{
			ID:          "hours-milestone",
			Title:       "Dedicated Learner",
			Description: fmt.Sprintf("%g hours of learning", up.TotalHoursLearned),
			Date:        now,
		})
	}
	return out
}

func lastCompletedAt(up domain.UserProgress, fallback time.Time) time.Time {
	var latest time.Time
	for _, c := range up.Courses {
		if c.Status == domain.CourseCompleted && c.LastAccessed.After(latest) {
			latest = c.LastAccessed
		}
	}
	if latest.IsZero() {
		return fallback
	}
	return latest
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
