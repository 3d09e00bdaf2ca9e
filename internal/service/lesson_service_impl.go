package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

type lessonService struct {
	courses     repository.CourseRepo
	lessons     repository.LessonRepo
	assignments repository.AssignmentRepo
	progress    repository.ProgressRepo
}

func NewLessonService(
	courses repository.CourseRepo,
	lessons repository.LessonRepo,
	assignments repository.AssignmentRepo,
	progressRepo repository.ProgressRepo,
) LessonService {
	return &lessonService{
		courses:     courses,
		lessons:     lessons,
		assignments: assignments,
		progress:    progressRepo,
	}
}

// GetLesson returns the lesson with its lock state for the user. Locked
// lessons are returned too; callers decide whether to show them.
func (s *lessonService) GetLesson(ctx context.Context, userID, lessonID int) (*LessonView, error) {
	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, userID, lesson)
}

func (s *lessonService) CourseOutline(ctx context.Context, userID, courseID int) (*CourseOutline, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	cp, enrolled, err := s.courseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		cp = domain.CourseProgress{CourseID: courseID, TotalLessons: course.TotalLessons, Status: domain.CourseNotStarted}
	}
	return &CourseOutline{
		Course:   *course,
		Lessons:  progress.LessonStates(derefLessons(lessons), cp.CompletedSet()),
		Progress: cp,
		Enrolled: enrolled,
	}, nil
}

// ContinueCourse returns the lesson the user should take next in the course.
func (s *lessonService) ContinueCourse(ctx context.Context, userID, courseID int) (*LessonView, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	cp, _, err := s.courseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	next, ok := progress.NextLesson(derefLessons(lessons), cp.CompletedSet())
	if !ok {
		return nil, fmt.Errorf("lessons of course %d: %w", courseID, domain.ErrNotFound)
	}
	return s.view(ctx, userID, &next)
}

func (s *lessonService) view(ctx context.Context, userID int, lesson *domain.Lesson) (*LessonView, error) {
	course, err := s.courses.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	siblings, err := s.lessons.ListByCourse(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	cp, _, err := s.courseProgress(ctx, userID, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListByLesson(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}

	completed := cp.CompletedSet()
	all := derefLessons(siblings)
	v := &LessonView{
		Lesson:      *lesson,
		Course:      *course,
		Locked:      progress.IsLocked(*lesson, all, completed),
		Completed:   completed[lesson.ID],
		Assignments: assignments,
	}
	for i := range all {
		switch all[i].Order {
		case lesson.Order - 1:
			v.Previous = &all[i]
		case lesson.Order + 1:
			v.Next = &all[i]
		}
	}
	return v, nil
}

// courseProgress returns the user's entry for the course. A user without a
// progress record is treated as not enrolled anywhere.
func (s *lessonService) courseProgress(ctx context.Context, userID, courseID int) (domain.CourseProgress, bool, error) {
	up, err := s.progress.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.CourseProgress{}, false, nil
	}
	if err != nil {
		return domain.CourseProgress{}, false, err
	}
	cp, ok := progress.GetCourseProgress(*up, courseID)
	return cp, ok, nil
}
