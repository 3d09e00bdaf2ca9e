package progress

import (
	"testing"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return NewCatalog([]domain.Course{
		{ID: 1, Category: "farming", Skills: []string{"soil", "irrigation", "compost"}},
		{ID: 2, Category: "farming", Skills: []string{"pests", "harvest"}},
		{ID: 3, Category: "finance", Skills: []string{"budgeting"}},
		{ID: 4, Category: "crafts", Skills: []string{"weaving", "dyeing"}},
	})
}

func TestComputeSkillLevels_Counts(t *testing.T) {
	up := domain.UserProgress{Courses: []domain.CourseProgress{
		{CourseID: 1, Progress: 100},
		{CourseID: 2, Progress: 40},
		{CourseID: 3, Progress: 0},
	}}

	levels := ComputeSkillLevels(up, testCatalog(), DefaultLevelPolicy())
	require.Len(t, levels, 2)

	farming := levels["farming"]
	assert.Equal(t, 5, farming.TotalSkills)
	assert.Equal(t, 3, farming.CompletedSkills)
	assert.Equal(t, 2, farming.InProgressSkills)
	assert.Equal(t, 2, farming.CoursesCount)
	assert.Equal(t, 70, farming.Progress)
	assert.Equal(t, domain.LevelIntermediate, farming.Level)

	finance := levels["finance"]
	assert.Equal(t, 1, finance.TotalSkills)
	assert.Zero(t, finance.CompletedSkills)
	assert.Zero(t, finance.InProgressSkills)
	assert.Equal(t, domain.LevelBeginner, finance.Level)

	_, ok := levels["crafts"]
	assert.False(t, ok, "categories without enrollments are absent")
}

func TestComputeSkillLevels_SkipsUnknownCourses(t *testing.T) {
	up := domain.UserProgress{Courses: []domain.CourseProgress{
		{CourseID: 42, Progress: 100},
		{CourseID: 4, Progress: 80},
	}}
	levels := ComputeSkillLevels(up, testCatalog(), DefaultLevelPolicy())
	require.Len(t, levels, 1)
	assert.Equal(t, domain.LevelAdvanced, levels["crafts"].Level)
}

func TestComputeSkillLevels_OrderIndependent(t *testing.T) {
	a := domain.UserProgress{Courses: []domain.CourseProgress{
		{CourseID: 1, Progress: 100},
		{CourseID: 2, Progress: 50},
		{CourseID: 3, Progress: 20},
	}}
	b := domain.UserProgress{Courses: []domain.CourseProgress{
		a.Courses[2], a.Courses[0], a.Courses[1],
	}}
	assert.Equal(t,
		ComputeSkillLevels(a, testCatalog(), DefaultLevelPolicy()),
		ComputeSkillLevels(b, testCatalog(), DefaultLevelPolicy()))
}

func TestLevelPolicy(t *testing.T) {
	p := DefaultLevelPolicy()
	assert.Equal(t, domain.LevelBeginner, p.Level(0))
	assert.Equal(t, domain.LevelBeginner, p.Level(34))
	assert.Equal(t, domain.LevelIntermediate, p.Level(35))
	assert.Equal(t, domain.LevelIntermediate, p.Level(74))
	assert.Equal(t, domain.LevelAdvanced, p.Level(75))
	assert.NoError(t, p.Validate())

	custom := LevelPolicy{AdvancedThreshold: 90, IntermediateThreshold: 50}
	assert.Equal(t, domain.LevelIntermediate, custom.Level(75))

	assert.Error(t, LevelPolicy{AdvancedThreshold: 30, IntermediateThreshold: 60}.Validate())
	assert.Error(t, LevelPolicy{AdvancedThreshold: 120, IntermediateThreshold: 60}.Validate())
	assert.Error(t, LevelPolicy{AdvancedThreshold: 70, IntermediateThreshold: -1}.Validate())
}
