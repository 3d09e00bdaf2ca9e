package progress

import (
	"fmt"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// CourseCatalog resolves course IDs to catalog entries.
type CourseCatalog interface {
	CourseByID(id int) (domain.Course, bool)
}

// Catalog is an in-memory CourseCatalog keyed by course ID.
type Catalog map[int]domain.Course

// NewCatalog indexes courses by ID.
func NewCatalog(courses []domain.Course) Catalog {
	c := make(Catalog, len(courses))
	for _, course := range courses {
		c[course.ID] = course
	}
	return c
}

func (c Catalog) CourseByID(id int) (domain.Course, bool) {
	course, ok := c[id]
	return course, ok
}

// LevelPolicy maps a category's mean progress to a level label.
type LevelPolicy struct {
	AdvancedThreshold     int
	IntermediateThreshold int
}

// DefaultLevelPolicy is Advanced from 75%, Intermediate from 35%.
func DefaultLevelPolicy() LevelPolicy {
	return LevelPolicy{AdvancedThreshold: 75, IntermediateThreshold: 35}
}

// Validate rejects thresholds outside [0,100] or out of order.
func (p LevelPolicy) Validate() error {
	if p.IntermediateThreshold < 0 || p.AdvancedThreshold > 100 {
		return fmt.Errorf("level thresholds must be within 0-100")
	}
	if p.IntermediateThreshold > p.AdvancedThreshold {
		return fmt.Errorf("intermediate threshold %d exceeds advanced threshold %d",
			p.IntermediateThreshold, p.AdvancedThreshold)
	}
	return nil
}

// Level returns the label for a progress percentage.
func (p LevelPolicy) Level(pct int) domain.SkillLevelLabel {
	switch {
	case pct >= p.AdvancedThreshold:
		return domain.LevelAdvanced
	case pct >= p.IntermediateThreshold:
		return domain.LevelIntermediate
	default:
		return domain.LevelBeginner
	}
}

// ComputeSkillLevels groups the user's enrolled courses by category. Skills
// of completed courses count as completed, skills of partially completed
// courses as in progress. The label comes from the mean course progress of
// the category. Enrollments whose course is missing from the catalog are
// skipped.
func ComputeSkillLevels(up domain.UserProgress, catalog CourseCatalog, policy LevelPolicy) map[string]domain.SkillLevel {
	type acc struct {
		level domain.SkillLevel
		sum   int
	}
	byCategory := make(map[string]*acc)
	for _, cp := range up.Courses {
		course, ok := catalog.CourseByID(cp.CourseID)
		if !ok {
			continue
		}
		a := byCategory[course.Category]
		if a == nil {
			a = &acc{}
			byCategory[course.Category] = a
		}
		skills := len(course.Skills)
		a.level.TotalSkills += skills
		a.level.CoursesCount++
		a.sum += cp.Progress
		switch {
		case cp.Progress >= 100:
			a.level.CompletedSkills += skills
		case cp.Progress > 0:
			a.level.InProgressSkills += skills
		}
	}

	out := make(map[string]domain.SkillLevel, len(byCategory))
	for category, a := range byCategory {
		lvl := a.level
		lvl.Progress = clampPct(roundHalfUp(float64(a.sum) / float64(lvl.CoursesCount)))
		lvl.Level = policy.Level(lvl.Progress)
		out[category] = lvl
	}
	return out
}
