package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

var testIDCounter atomic.Int64

// NextID returns a process-unique positive identifier for test entities.
func NextID() int {
	return int(testIDCounter.Add(1)) + 1000
}

// Course options
type CourseOption func(*domain.Course)

func WithCourseID(id int) CourseOption {
	return func(c *domain.Course) {
		c.ID = id
	}
}

func WithTotalLessons(n int) CourseOption {
	return func(c *domain.Course) {
		c.TotalLessons = n
	}
}

func WithCategory(category string) CourseOption {
	return func(c *domain.Course) {
		c.Category = category
	}
}

func WithDifficulty(d domain.Difficulty) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = d
	}
}

func WithSkills(skills ...string) CourseOption {
	return func(c *domain.Course) {
		c.Skills = skills
	}
}

func WithFeatured() CourseOption {
	return func(c *domain.Course) {
		c.Featured = true
	}
}

func WithDescription(d string) CourseOption {
	return func(c *domain.Course) {
		c.Description = d
	}
}

func NewTestCourse(title string, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:           NextID(),
		Title:        title,
		Description:  "Test course " + title,
		Instructor:   "Test Instructor",
		Category:     "farming",
		Difficulty:   domain.DifficultyBeginner,
		TotalLessons: 3,
		Duration:     "2 weeks",
		Skills:       []string{"observation"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lesson options
type LessonOption func(*domain.Lesson)

func WithLessonID(id int) LessonOption {
	return func(l *domain.Lesson) {
		l.ID = id
	}
}

func WithDurationMin(m int) LessonOption {
	return func(l *domain.Lesson) {
		l.DurationMin = m
	}
}

func WithSteps(titles ...string) LessonOption {
	return func(l *domain.Lesson) {
		l.Steps = nil
		for _, t := range titles {
			l.Steps = append(l.Steps, domain.Step{Title: t, Content: t + " content", DurationMin: 5})
		}
	}
}

func NewTestLesson(courseID, order int, opts ...LessonOption) *domain.Lesson {
	l := &domain.Lesson{
		ID:          NextID(),
		CourseID:    courseID,
		Title:       fmt.Sprintf("Lesson %d", order),
		Description: "Test lesson",
		Order:       order,
		DurationMin: 30,
		Steps: []domain.Step{
			{Title: "Watch", Content: "Watch the video", DurationMin: 10},
			{Title: "Practice", Content: "Try it yourself", DurationMin: 20},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Assignment options
type AssignmentOption func(*domain.Assignment)

func WithPoints(p int) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Points = p
	}
}

func WithDueDate(d time.Time) AssignmentOption {
	return func(a *domain.Assignment) {
		a.DueDate = &d
	}
}

func NewTestAssignment(lessonID int, title string, opts ...AssignmentOption) *domain.Assignment {
	a := &domain.Assignment{
		ID:          NextID(),
		LessonID:    lessonID,
		Title:       title,
		Description: "Test assignment",
		Points:      10,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// User options
type UserOption func(*domain.User)

func WithUserID(id int) UserOption {
	return func(u *domain.User) {
		u.ID = id
	}
}

func WithSkillCategories(cats ...string) UserOption {
	return func(u *domain.User) {
		u.SkillCategories = cats
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:       NextID(),
		Name:     name,
		Email:    fmt.Sprintf("user%d@example.com", testIDCounter.Load()),
		JoinedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
