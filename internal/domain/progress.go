package domain

import (
	"maps"
	"slices"
	"time"
)

// CourseProgress is one user's enrollment in one course. CompletedLessons is
// an insertion-ordered set; Progress and Status are always derived from it.
type CourseProgress struct {
	CourseID         int
	CompletedLessons []int
	TotalLessons     int
	Progress         int
	HoursSpent       float64
	LastAccessed     time.Time
	Status           CourseStatus
}

// HasCompleted reports whether lessonID is in the completed set.
func (c CourseProgress) HasCompleted(lessonID int) bool {
	return slices.Contains(c.CompletedLessons, lessonID)
}

// CompletedSet returns the completed lesson IDs as a lookup set.
func (c CourseProgress) CompletedSet() map[int]bool {
	set := make(map[int]bool, len(c.CompletedLessons))
	for _, id := range c.CompletedLessons {
		set[id] = true
	}
	return set
}

func (c CourseProgress) Clone() CourseProgress {
	c.CompletedLessons = append([]int(nil), c.CompletedLessons...)
	return c
}

// SkillLevel summarises a user's standing in one course category.
type SkillLevel struct {
	Level            SkillLevelLabel
	Progress         int
	CoursesCount     int
	CompletedSkills  int
	InProgressSkills int
	TotalSkills      int
}

type UserProgress struct {
	UserID            int
	Courses           []CourseProgress
	OverallProgress   int
	CoursesCompleted  int
	TotalCourses      int
	TotalHoursLearned float64
	CurrentStreak     int
	LongestStreak     int
	SkillLevels       map[string]SkillLevel
	ActivityDates     []time.Time
}

// Clone returns a deep copy so callers can treat UserProgress as a value.
func (u UserProgress) Clone() UserProgress {
	courses := make([]CourseProgress, len(u.Courses))
	for i, c := range u.Courses {
		courses[i] = c.Clone()
	}
	u.Courses = courses
	u.ActivityDates = append([]time.Time(nil), u.ActivityDates...)
	if u.SkillLevels != nil {
		u.SkillLevels = maps.Clone(u.SkillLevels)
	}
	return u
}

// CourseIndex returns the position of the course entry, or -1 when the user
// is not enrolled.
func (u UserProgress) CourseIndex(courseID int) int {
	return slices.IndexFunc(u.Courses, func(c CourseProgress) bool {
		return c.CourseID == courseID
	})
}
