package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/testutil"
)

func TestListCourses_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.addCourse(t, "Phone Repair", testutil.WithCategory("technology"),
		testutil.WithDifficulty(domain.DifficultyIntermediate), testutil.WithFeatured())
	env.addCourse(t, "Solar Dryers", testutil.WithCategory("technology"),
		testutil.WithDescription("Dry crops with sunlight"))
	svc := NewCatalogService(env.courses)
	ctx := context.Background()

	titles := func(f progress.CourseFilter) []string {
		courses, err := svc.ListCourses(ctx, f)
		require.NoError(t, err)
		out := []string{}
		for _, c := range courses {
			out = append(out, c.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Goat Keeping", "Phone Repair", "Solar Dryers"}, titles(progress.CourseFilter{}))
	assert.Equal(t, []string{"Phone Repair", "Solar Dryers"}, titles(progress.CourseFilter{Category: "Technology"}))
	assert.Equal(t, []string{"Phone Repair"}, titles(progress.CourseFilter{Category: "technology", Difficulty: domain.DifficultyIntermediate}))
	assert.Equal(t, []string{"Phone Repair"}, titles(progress.CourseFilter{Featured: true}))
	assert.Equal(t, []string{"Solar Dryers"}, titles(progress.CourseFilter{Query: "CROPS"}))
	assert.Equal(t, []string{"Goat Keeping", "Solar Dryers"}, titles(progress.CourseFilter{Query: "a", Difficulty: domain.DifficultyBeginner}))
	assert.Empty(t, titles(progress.CourseFilter{Category: "health"}))
}

func TestListCourses_UnknownDifficulty(t *testing.T) {
	env := newTestEnv(t)
	_, err := NewCatalogService(env.courses).ListCourses(context.Background(), progress.CourseFilter{Difficulty: "expert"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCategories_IncludesEmptyOnes(t *testing.T) {
	env := newTestEnv(t)
	env.addCourse(t, "Bread", testutil.WithCategory("business"))
	env.addCourse(t, "Pottery", testutil.WithCategory("ceramics"))

	cats, err := NewCatalogService(env.courses).Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, len(domain.Categories)+1)
	assert.Equal(t, CategorySummary{Category: "farming", CourseCount: 1}, cats[0])
	assert.Equal(t, CategorySummary{Category: "health", CourseCount: 0}, cats[1])
	assert.Equal(t, CategorySummary{Category: "business", CourseCount: 1}, cats[4])
	assert.Equal(t, CategorySummary{Category: "ceramics", CourseCount: 1}, cats[len(cats)-1])
}

func TestGetCourse(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.courses)

	c, err := svc.GetCourse(context.Background(), env.course.ID)
	require.NoError(t, err)
	assert.Equal(t, env.course.Title, c.Title)

	_, err = svc.GetCourse(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
