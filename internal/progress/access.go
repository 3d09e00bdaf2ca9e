package progress

import (
	"slices"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// IsLocked reports whether lesson is inaccessible given the lessons of its
// course and the completed lesson IDs. The first lesson is never locked. Any
// later lesson is unlocked only when the lesson ordered directly before it is
// completed. When no such predecessor exists (a gap in the ordering) the
// lesson stays locked.
func IsLocked(lesson domain.Lesson, courseLessons []domain.Lesson, completed map[int]bool) bool {
	if lesson.Order <= 1 {
		return false
	}
	for _, l := range courseLessons {
		if l.Order == lesson.Order-1 {
			return !completed[l.ID]
		}
	}
	return true
}

// LessonState is a lesson annotated with its derived access state.
type LessonState struct {
	Lesson    domain.Lesson
	Locked    bool
	Completed bool
}

// LessonStates returns every lesson of a course sorted by Order with its
// lock and completion state.
func LessonStates(courseLessons []domain.Lesson, completed map[int]bool) []LessonState {
	ordered := sortedByOrder(courseLessons)
	states := make([]LessonState, 0, len(ordered))
	for _, l := range ordered {
		states = append(states, LessonState{
			Lesson:    l,
			Locked:    IsLocked(l, ordered, completed),
			Completed: completed[l.ID],
		})
	}
	return states
}

// NextLesson picks the lesson a learner should continue with: the first
// lesson in order that is not completed, or the first lesson when the course
// is finished. It returns false for a course without lessons.
func NextLesson(courseLessons []domain.Lesson, completed map[int]bool) (domain.Lesson, bool) {
	ordered := sortedByOrder(courseLessons)
	if len(ordered) == 0 {
		return domain.Lesson{}, false
	}
	for _, l := range ordered {
		if !completed[l.ID] {
			return l, true
		}
	}
	return ordered[0], true
}

func sortedByOrder(lessons []domain.Lesson) []domain.Lesson {
	out := slices.Clone(lessons)
	slices.SortStableFunc(out, func(a, b domain.Lesson) int {
		return a.Order - b.Order
	})
	return out
}
