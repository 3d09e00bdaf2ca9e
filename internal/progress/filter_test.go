package progress

import (
	"testing"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseCourses() []domain.Course {
	return []domain.Course{
		{ID: 1, Title: "Organic Vegetable Gardening", Category: "farming", Difficulty: domain.DifficultyBeginner, Featured: true, Instructor: "Maria Santos"},
		{ID: 2, Title: "Small Business Bookkeeping", Description: "Track income and expenses", Category: "finance", Difficulty: domain.DifficultyIntermediate},
		{ID: 3, Title: "Basic First Aid", Category: "health", Difficulty: domain.DifficultyBeginner, Featured: true},
		{ID: 4, Title: "Smartphone Essentials", Category: "technology", Difficulty: domain.DifficultyBeginner},
	}
}

func courseIDs(courses []domain.Course) []int {
	ids := make([]int, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterCourses(t *testing.T) {
	tests := []struct {
		name   string
		filter CourseFilter
		want   []int
	}{
		{"no filter", CourseFilter{}, []int{1, 2, 3, 4}},
		{"category case-insensitive", CourseFilter{Category: "FARMING"}, []int{1}},
		{"difficulty", CourseFilter{Difficulty: domain.DifficultyBeginner}, []int{1, 3, 4}},
		{"query in description", CourseFilter{Query: "EXPENSES"}, []int{2}},
		{"query in category", CourseFilter{Query: "tech"}, []int{4}},
		{"query in instructor", CourseFilter{Query: "santos"}, []int{1}},
		{"featured", CourseFilter{Featured: true}, []int{1, 3}},
		{"combined", CourseFilter{Difficulty: domain.DifficultyBeginner, Query: "first"}, []int{3}},
		{"no match", CourseFilter{Query: "astronomy"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, courseIDs(FilterCourses(browseCourses(), tt.filter)))
		})
	}
}

func TestFilterByTab(t *testing.T) {
	up := domain.UserProgress{Courses: []domain.CourseProgress{
		{CourseID: 1, Progress: 100},
		{CourseID: 2, Progress: 40},
		{CourseID: 3, Progress: 0},
	}}
	courses := browseCourses()

	assert.Equal(t, []int{1, 2, 3}, courseIDs(FilterByTab(courses, up, TabAll)))
	assert.Equal(t, []int{2}, courseIDs(FilterByTab(courses, up, TabInProgress)))
	assert.Equal(t, []int{1}, courseIDs(FilterByTab(courses, up, TabCompleted)))
	assert.Equal(t, []int{3}, courseIDs(FilterByTab(courses, up, TabNotStarted)))
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabAll, tab)

	tab, err = ParseTab("completed")
	require.NoError(t, err)
	assert.Equal(t, TabCompleted, tab)

	_, err = ParseTab("archived")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
