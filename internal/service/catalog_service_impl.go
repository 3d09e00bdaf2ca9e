package service

import (
	"context"
	"slices"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

type catalogService struct {
	courses repository.CourseRepo
}

func NewCatalogService(courses repository.CourseRepo) CatalogService {
	return &catalogService{courses: courses}
}

// ListCourses narrows the store query by the most selective filter and
// applies the rest in memory.
func (s *catalogService) ListCourses(ctx context.Context, f progress.CourseFilter) ([]*domain.Course, error) {
	if f.Difficulty != "" && !domain.ValidDifficulties[string(f.Difficulty)] {
		return nil, domain.NewValidationError("difficulty", "unknown difficulty %q", f.Difficulty)
	}

	var (
		courses []*domain.Course
		err     error
	)
	switch {
	case f.Query != "":
		courses, err = s.courses.Search(ctx, f.Query)
	case f.Category != "":
		courses, err = s.courses.ListByCategory(ctx, f.Category)
	case f.Featured:
		courses, err = s.courses.ListFeatured(ctx)
	default:
		courses, err = s.courses.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := progress.FilterCourses(derefCourses(courses), f)
	out := make([]*domain.Course, len(filtered))
	for i := range filtered {
		out[i] = &filtered[i]
	}
	return out, nil
}

func (s *catalogService) GetCourse(ctx context.Context, id int) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Categories lists every known category, including empty ones, in the
// catalog's display order.
func (s *catalogService) Categories(ctx context.Context) ([]CategorySummary, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, c := range courses {
		counts[c.Category]++
	}
	out := make([]CategorySummary, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		out = append(out, CategorySummary{Category: cat, CourseCount: counts[cat]})
		delete(counts, cat)
	}
	extra := make([]string, 0, len(counts))
	for cat := range counts {
		extra = append(extra, cat)
	}
	slices.Sort(extra)
	for _, cat := range extra {
		out = append(out, CategorySummary{Category: cat, CourseCount: counts[cat]})
	}
	return out, nil
}

func derefCourses(courses []*domain.Course) []domain.Course {
	out := make([]domain.Course, len(courses))
	for i, c := range courses {
		out[i] = *c
	}
	return out
}

func derefLessons(lessons []*domain.Lesson) []domain.Lesson {
	out := make([]domain.Lesson, len(lessons))
	for i, l := range lessons {
		out[i] = *l
	}
	return out
}
