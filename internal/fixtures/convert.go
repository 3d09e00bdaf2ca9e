package fixtures

import (
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
)

// Seed holds the domain objects produced from a catalog, ready for
// persistence.
type Seed struct {
	Courses     []*domain.Course
	Lessons     []*domain.Lesson
	Assignments []*domain.Assignment
	Users       []*domain.User
	Progress    []domain.UserProgress
}

// Convert transforms a validated Catalog into domain objects.
// Call ValidateCatalog first; Convert assumes the catalog is valid.
func Convert(c *Catalog) (*Seed, error) {
	seed := &Seed{}

	lessonCounts := make(map[int]int)
	for _, l := range c.Lessons {
		lessonCounts[l.CourseID]++
	}

	for _, f := range c.Courses {
		seed.Courses = append(seed.Courses, &domain.Course{
			ID:           f.ID,
			Title:        f.Title,
			Description:  f.Description,
			Instructor:   domain.CoalesceStr(f.Instructor, "SkillHatch Team"),
			Category:     f.Category,
			Difficulty:   domain.Difficulty(f.Difficulty),
			TotalLessons: domain.IntFromPtrWithDefault(lessonCounts[f.ID], f.TotalLessons),
			Duration:     f.Duration,
			Skills:       f.Skills,
			Featured:     domain.BoolFromPtrWithDefault(false, f.Featured),
			Rating:       f.Rating,
			Enrolled:     f.Enrolled,
			Thumbnail:    f.Thumbnail,
		})
	}

	for _, f := range c.Lessons {
		l := &domain.Lesson{
			ID:          f.ID,
			CourseID:    f.CourseID,
			Title:       f.Title,
			Description: f.Description,
			Order:       f.Order,
			DurationMin: f.DurationMin,
			VideoURL:    f.VideoURL,
			Completed:   domain.BoolFromPtrWithDefault(false, f.Completed),
		}
		for _, s := range f.Steps {
			l.Steps = append(l.Steps, domain.Step{
				Title:       s.Title,
				Content:     s.Content,
				DurationMin: domain.IntFromPtrWithDefault(0, s.DurationMin),
			})
		}
		at, err := parseOptional(f.CompletedAt, timestampLayout)
		if err != nil {
			return nil, fmt.Errorf("lesson %d completed_at: %w", f.ID, err)
		}
		l.CompletedAt = at
		if l.CompletedAt != nil {
			l.Completed = true
		}
		seed.Lessons = append(seed.Lessons, l)
	}

	for _, f := range c.Assignments {
		a := &domain.Assignment{
			ID:          f.ID,
			LessonID:    f.LessonID,
			Title:       f.Title,
			Description: f.Description,
			Points:      f.Points,
		}
		due, err := parseOptional(f.DueDate, dateLayout)
		if err != nil {
			return nil, fmt.Errorf("assignment %d due_date: %w", f.ID, err)
		}
		a.DueDate = due
		for _, s := range f.Submissions {
			at, err := time.Parse(timestampLayout, s.SubmittedAt)
			if err != nil {
				return nil, fmt.Errorf("submission %d submitted_at: %w", s.ID, err)
			}
			a.Submissions = append(a.Submissions, domain.Submission{
				ID:          s.ID,
				SubmittedAt: at,
				Content:     s.Content,
				Files:       s.Files,
				Status:      domain.SubmissionStatus(domain.CoalesceStr(s.Status, string(domain.SubmissionSubmitted))),
			})
		}
		seed.Assignments = append(seed.Assignments, a)
	}

	titles := make(map[int]string, len(c.Courses))
	for _, co := range c.Courses {
		titles[co.ID] = co.Title
	}
	for _, f := range c.Users {
		u := &domain.User{
			ID:               f.ID,
			Name:             f.Name,
			Email:            f.Email,
			SkillCategories:  f.SkillCategories,
			CompletedLessons: f.CompletedLessons,
		}
		joined, err := parseOptional(f.JoinedAt, timestampLayout, dateLayout)
		if err != nil {
			return nil, fmt.Errorf("user %d joined_at: %w", f.ID, err)
		}
		if joined != nil {
			u.JoinedAt = *joined
		}
		for _, cf := range f.Certificates {
			issued, err := time.Parse(dateLayout, cf.IssuedDate)
			if err != nil {
				return nil, fmt.Errorf("user %d certificate for course %d: %w", f.ID, cf.CourseID, err)
			}
			u.Certificates = append(u.Certificates, domain.Certificate{
				CourseID:     cf.CourseID,
				CourseName:   domain.CoalesceStr(cf.CourseName, titles[cf.CourseID]),
				IssuedDate:   issued,
				CredentialID: cf.CredentialID,
			})
		}
		seed.Users = append(seed.Users, u)
	}

	totals := make(map[int]int, len(seed.Courses))
	for _, co := range seed.Courses {
		totals[co.ID] = co.TotalLessons
	}
	for _, f := range c.Progress {
		up := domain.UserProgress{UserID: f.UserID, Courses: []domain.CourseProgress{}}
		for _, cp := range f.Courses {
			last, err := time.Parse(timestampLayout, cp.LastAccessed)
			if err != nil {
				return nil, fmt.Errorf("progress for user %d course %d: %w", f.UserID, cp.CourseID, err)
			}
			up.Courses = append(up.Courses, domain.CourseProgress{
				CourseID:         cp.CourseID,
				CompletedLessons: dedupe(cp.CompletedLessons),
				TotalLessons:     totals[cp.CourseID],
				HoursSpent:       cp.HoursSpent,
				LastAccessed:     last,
			})
		}
		for _, d := range f.ActivityDates {
			day, err := time.ParseInLocation(dateLayout, d, time.Local)
			if err != nil {
				return nil, fmt.Errorf("progress for user %d activity date: %w", f.UserID, err)
			}
			up.ActivityDates = append(up.ActivityDates, day)
		}
		seed.Progress = append(seed.Progress, progress.Recalculate(up))
	}

	return seed, nil
}

// parseOptional parses s with the first layout that accepts it.
func parseOptional(s *string, layouts ...string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, err
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
