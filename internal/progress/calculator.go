package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// Completion describes one lesson-completed event.
type Completion struct {
	CourseID int
	LessonID int
	// At stamps LastAccessed on the course entry. Zero means time.Now().
	At time.Time
	// Minutes of study credited to the course's HoursSpent.
	Minutes int
}

// RecordLessonCompletion adds lessonID to the completed set of courseID and
// returns the updated progress. The argument is never modified.
func RecordLessonCompletion(up domain.UserProgress, courseID, lessonID int) (domain.UserProgress, error) {
	return Record(up, Completion{CourseID: courseID, LessonID: lessonID})
}

// Record applies a completion event. The course must already have an entry in
// up.Courses, otherwise the returned error wraps domain.ErrNotFound. A lesson
// that is already completed leaves every field unchanged.
func Record(up domain.UserProgress, c Completion) (domain.UserProgress, error) {
	idx := up.CourseIndex(c.CourseID)
	if idx < 0 {
		return up, fmt.Errorf("course progress %d for user %d: %w", c.CourseID, up.UserID, domain.ErrNotFound)
	}

	next := up.Clone()
	course := &next.Courses[idx]
	if !course.HasCompleted(c.LessonID) {
		course.CompletedLessons = append(course.CompletedLessons, c.LessonID)
		course.HoursSpent = roundTenth(course.HoursSpent + float64(c.Minutes)/60)
		at := c.At
		if at.IsZero() {
			at = time.Now().UTC()
		}
		course.LastAccessed = at
	}
	refreshCourse(course)

	return Recalculate(next), nil
}

// GetCourseProgress looks up the user's entry for a course. The boolean is
// false when the user is not enrolled, which is distinct from being enrolled
// with no completed lessons.
func GetCourseProgress(up domain.UserProgress, courseID int) (domain.CourseProgress, bool) {
	idx := up.CourseIndex(courseID)
	if idx < 0 {
		return domain.CourseProgress{}, false
	}
	return up.Courses[idx].Clone(), true
}

// Enroll returns a copy of up with an empty entry for the course. Enrolling
// twice is a no-op.
func Enroll(up domain.UserProgress, course domain.Course, at time.Time) domain.UserProgress {
	next := up.Clone()
	if next.CourseIndex(course.ID) >= 0 {
		return next
	}
	entry := domain.CourseProgress{
		CourseID:     course.ID,
		TotalLessons: course.TotalLessons,
		LastAccessed: at,
	}
	refreshCourse(&entry)
	next.Courses = append(next.Courses, entry)
	return Recalculate(next)
}

// Recalculate re-derives every counter of up from its course entries. It
// never adjusts values incrementally, so it is safe to call after any
// mutation or when reading a stored snapshot.
func Recalculate(up domain.UserProgress) domain.UserProgress {
	next := up.Clone()
	var sum int
	var hours float64
	next.CoursesCompleted = 0
	for i := range next.Courses {
		refreshCourse(&next.Courses[i])
		c := next.Courses[i]
		sum += c.Progress
		hours += c.HoursSpent
		if c.Status == domain.CourseCompleted {
			next.CoursesCompleted++
		}
	}
	next.TotalCourses = len(next.Courses)
	next.TotalHoursLearned = roundTenth(hours)
	next.OverallProgress = 0
	if n := len(next.Courses); n > 0 {
		next.OverallProgress = clampPct(roundHalfUp(float64(sum) / float64(n)))
	}
	return next
}

func refreshCourse(c *domain.CourseProgress) {
	c.Progress = Percent(len(c.CompletedLessons), c.TotalLessons)
	c.Status = statusFor(c.Progress, len(c.CompletedLessons))
}

func statusFor(pct, completed int) domain.CourseStatus {
	switch {
	case pct == 100:
		return domain.CourseCompleted
	case completed > 0:
		return domain.CourseInProgress
	default:
		return domain.CourseNotStarted
	}
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
