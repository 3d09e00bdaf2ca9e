package repository

import (
	"context"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// Every getter returns a fresh copy; callers may modify results freely.
// Lookups of unknown identifiers return an error wrapping domain.ErrNotFound.

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id int) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Course, error)
	ListFeatured(ctx context.Context) ([]*domain.Course, error)
	Search(ctx context.Context, query string) ([]*domain.Course, error)
}

type LessonRepo interface {
	Create(ctx context.Context, l *domain.Lesson) error
	GetByID(ctx context.Context, id int) (*domain.Lesson, error)
	List(ctx context.Context) ([]*domain.Lesson, error)
	ListByCourse(ctx context.Context, courseID int) ([]*domain.Lesson, error)
	MarkComplete(ctx context.Context, id int, at time.Time) (*domain.Lesson, error)
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id int) (*domain.Assignment, error)
	List(ctx context.Context) ([]*domain.Assignment, error)
	ListByLesson(ctx context.Context, lessonID int) ([]*domain.Assignment, error)
	AppendSubmission(ctx context.Context, assignmentID int, s *domain.Submission) error
	NextSubmissionID(ctx context.Context) (int, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateSkillCategories(ctx context.Context, id int, categories []string) error
	AddCompletedLesson(ctx context.Context, userID, lessonID int) error
	AddCertificate(ctx context.Context, userID int, c domain.Certificate) error
}

type ProgressRepo interface {
	Create(ctx context.Context, userID int, at time.Time) error
	GetByUser(ctx context.Context, userID int) (*domain.UserProgress, error)
	Save(ctx context.Context, up *domain.UserProgress) error
	RecordActivity(ctx context.Context, userID int, day time.Time) error
}
