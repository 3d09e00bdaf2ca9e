package service

import (
	"context"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
)

type CatalogService interface {
	ListCourses(ctx context.Context, filter progress.CourseFilter) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id int) (*domain.Course, error)
	Categories(ctx context.Context) ([]CategorySummary, error)
}

type LessonService interface {
	GetLesson(ctx context.Context, userID, lessonID int) (*LessonView, error)
	CourseOutline(ctx context.Context, userID, courseID int) (*CourseOutline, error)
	ContinueCourse(ctx context.Context, userID, courseID int) (*LessonView, error)
}

type ProgressService interface {
	CompleteLesson(ctx context.Context, userID, lessonID int) (*CompletionResult, error)
	Overview(ctx context.Context, userID int) (*ProgressOverview, error)
	CoursesByTab(ctx context.Context, userID int, tab progress.Tab) ([]EnrolledCourse, error)
	SkillLevels(ctx context.Context, userID int) (map[string]domain.SkillLevel, error)
	Streaks(ctx context.Context, userID int) (*StreakSummary, error)
}

type AssignmentService interface {
	GetByID(ctx context.Context, id int) (*domain.Assignment, error)
	ListByLesson(ctx context.Context, lessonID int) ([]*domain.Assignment, error)
	Submit(ctx context.Context, assignmentID int, in SubmissionInput) (*domain.Assignment, error)
}

type UserService interface {
	Get(ctx context.Context, id int) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	UpdateSkillCategories(ctx context.Context, id int, categories []string) (*domain.User, error)
	Certificates(ctx context.Context, id int) ([]domain.Certificate, error)
}
