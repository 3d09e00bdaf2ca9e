package service

import (
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
)

// CategorySummary counts the catalog's courses in one category.
type CategorySummary struct {
	Category    string
	CourseCount int
}

// LessonView is a lesson as seen by one learner.
type LessonView struct {
	Lesson      domain.Lesson
	Course      domain.Course
	Locked      bool
	Completed   bool
	Assignments []*domain.Assignment
	// Previous and Next are the neighbouring lessons by order, nil at the ends.
	Previous *domain.Lesson
	Next     *domain.Lesson
}

// CourseOutline is a course with every lesson's access state and the
// learner's progress. Enrolled is false when the learner has no progress
// entry for the course yet.
type CourseOutline struct {
	Course   domain.Course
	Lessons  []progress.LessonState
	Progress domain.CourseProgress
	Enrolled bool
}

// CompletionResult describes the effect of completing a lesson.
type CompletionResult struct {
	Lesson           domain.Lesson
	Course           domain.Course
	CourseProgress   domain.CourseProgress
	OverallProgress  int
	AlreadyCompleted bool
	Enrolled         bool
	// Unlocked is the lesson that became accessible, if any.
	Unlocked *domain.Lesson
	// Certificate is set when this completion finished the course.
	Certificate *domain.Certificate
}

// EnrolledCourse pairs a course with the learner's entry for it.
type EnrolledCourse struct {
	Course   domain.Course
	Progress domain.CourseProgress
}

// ProgressOverview is the learner's progress with every derived view filled
// in.
type ProgressOverview struct {
	Progress     domain.UserProgress
	Courses      []EnrolledCourse
	Achievements []progress.Achievement
	Certificates []domain.Certificate
	GeneratedAt  time.Time
}

// StreakSummary is the streak view with the activity days it was derived
// from.
type StreakSummary struct {
	progress.Streaks
	ActivityDays []time.Time
	ActiveToday  bool
}

// SubmissionInput is what a learner hands in for an assignment.
type SubmissionInput struct {
	Content string   `validate:"required,max=10000"`
	Files   []string `validate:"max=10,dive,required,max=255"`
}
