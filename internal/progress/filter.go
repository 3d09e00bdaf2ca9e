package progress

import (
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// CourseFilter narrows the catalog. Empty fields do not filter.
type CourseFilter struct {
	Category   string
	Difficulty domain.Difficulty
	Query      string
	Featured   bool
}

// FilterCourses applies f to courses, preserving order.
func FilterCourses(courses []domain.Course, f CourseFilter) []domain.Course {
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
			continue
		}
		if f.Difficulty != "" && c.Difficulty != f.Difficulty {
			continue
		}
		if f.Featured && !c.Featured {
			continue
		}
		if !c.Matches(f.Query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Tab selects a subset of the user's enrolled courses.
type Tab string

const (
	TabAll        Tab = "all"
	TabInProgress Tab = "in-progress"
	TabCompleted  Tab = "completed"
	TabNotStarted Tab = "not-started"
)

// ParseTab validates a tab name. An empty name means TabAll.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabAll:
		return TabAll, nil
	case TabInProgress, TabCompleted, TabNotStarted:
		return Tab(s), nil
	}
	return "", domain.NewValidationError("tab", "unknown tab %q (want %s)", s,
		strings.Join([]string{string(TabAll), string(TabInProgress), string(TabCompleted), string(TabNotStarted)}, ", "))
}

// FilterByTab keeps the enrolled courses that fall into tab.
func FilterByTab(courses []domain.Course, up domain.UserProgress, tab Tab) []domain.Course {
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		cp, enrolled := GetCourseProgress(up, c.ID)
		if !enrolled {
			continue
		}
		if inTab(cp.Progress, tab) {
			out = append(out, c)
		}
	}
	return out
}

func inTab(pct int, tab Tab) bool {
	switch tab {
	case TabInProgress:
		return pct > 0 && pct < 100
	case TabCompleted:
		return pct == 100
	case TabNotStarted:
		return pct == 0
	default:
		return true
	}
}
