package fixtures

import (
	"testing"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Minimal(t *testing.T) {
	seed, err := Convert(validMinimalCatalog())
	require.NoError(t, err)

	require.Len(t, seed.Courses, 1)
	c := seed.Courses[0]
	assert.Equal(t, 2, c.TotalLessons, "total defaults to the number of lessons")
	assert.Equal(t, "SkillHatch Team", c.Instructor)
	assert.Equal(t, domain.DifficultyBeginner, c.Difficulty)
	assert.False(t, c.Featured)

	require.Len(t, seed.Lessons, 2)
	assert.False(t, seed.Lessons[0].Completed)
	assert.Nil(t, seed.Lessons[0].CompletedAt)
}

func TestConvert_ExplicitValuesWin(t *testing.T) {
	cat := validMinimalCatalog()
	featured := true
	cat.Courses[0].TotalLessons = ptrInt(6)
	cat.Courses[0].Featured = &featured
	cat.Lessons[0].CompletedAt = ptrStr("2026-10-01T08:00:00Z")
	cat.Lessons[0].Steps = []StepFixture{{Title: "Measure", DurationMin: ptrInt(7)}, {Title: "Build"}}
	cat.Assignments = []AssignmentFixture{{
		ID: 3, LessonID: 10, Title: "Sketch", DueDate: ptrStr("2026-11-01"),
		Submissions: []SubmissionFixture{{ID: 8, SubmittedAt: "2026-10-02T09:00:00Z", Content: "sketch.png"}},
	}}

	seed, err := Convert(cat)
	require.NoError(t, err)

	assert.Equal(t, 6, seed.Courses[0].TotalLessons)
	assert.True(t, seed.Courses[0].Featured)

	l := seed.Lessons[0]
	assert.True(t, l.Completed, "a completion time implies completed")
	require.NotNil(t, l.CompletedAt)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), *l.CompletedAt)
	assert.Equal(t, []domain.Step{{Title: "Measure", DurationMin: 7}, {Title: "Build"}}, l.Steps)

	a := seed.Assignments[0]
	require.NotNil(t, a.DueDate)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *a.DueDate)
	require.Len(t, a.Submissions, 1)
	assert.Equal(t, domain.SubmissionSubmitted, a.Submissions[0].Status)
}

func TestConvert_CertificateNameFallsBackToCourseTitle(t *testing.T) {
	cat := validMinimalCatalog()
	cat.Users[0].Certificates = []CertificateFixture{{CourseID: 1, IssuedDate: "2026-10-05", CredentialID: "SH-1"}}

	seed, err := Convert(cat)
	require.NoError(t, err)
	require.Len(t, seed.Users[0].Certificates, 1)
	cert := seed.Users[0].Certificates[0]
	assert.Equal(t, "Goat Keeping", cert.CourseName)
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), cert.IssuedDate)
}

func TestConvert_ProgressIsDerived(t *testing.T) {
	cat := validMinimalCatalog()
	cat.Progress = []ProgressFixture{{
		UserID: 1,
		Courses: []CourseProgressFixture{
			{CourseID: 1, CompletedLessons: []int{10, 10}, HoursSpent: 0.3, LastAccessed: "2026-10-01T10:00:00Z"},
		},
		ActivityDates: []string{"2026-10-01"},
	}}

	seed, err := Convert(cat)
	require.NoError(t, err)
	require.Len(t, seed.Progress, 1)

	up := seed.Progress[0]
	require.Len(t, up.Courses, 1)
	assert.Equal(t, []int{10}, up.Courses[0].CompletedLessons, "duplicates collapse")
	assert.Equal(t, 2, up.Courses[0].TotalLessons)
	assert.Equal(t, 50, up.Courses[0].Progress)
	assert.Equal(t, domain.CourseInProgress, up.Courses[0].Status)
	assert.Equal(t, 50, up.OverallProgress)
	assert.Equal(t, []time.Time{time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)}, up.ActivityDates)
}

func TestConvert_DefaultCatalog(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	seed, err := Convert(cat)
	require.NoError(t, err)

	categories := make(map[string]bool)
	for _, c := range seed.Courses {
		categories[c.Category] = true
		assert.Positive(t, c.TotalLessons, c.Title)
	}
	for _, cat := range domain.Categories {
		assert.True(t, categories[cat], "no course in category %s", cat)
	}

	require.NotEmpty(t, seed.Progress)
	up := seed.Progress[0]
	assert.Equal(t, 1, up.UserID)
	assert.Equal(t, 3, up.TotalCourses)
	assert.Equal(t, 1, up.CoursesCompleted)
	assert.Equal(t, 57, up.OverallProgress)
	assert.Equal(t, 3.3, up.TotalHoursLearned)
}

func TestConvert_JoinedAtAcceptsDateOrTimestamp(t *testing.T) {
	cat := validMinimalCatalog()
	cat.Users = append(cat.Users, UserFixture{ID: 2, Name: "Kofi", Email: "kofi@example.com", JoinedAt: ptrStr("2026-01-01T08:30:00Z")})
	cat.Users[0].JoinedAt = ptrStr("2026-01-01")
	require.Empty(t, ValidateCatalog(cat))

	seed, err := Convert(cat)
	require.NoError(t, err)
	require.Len(t, seed.Users, 2)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), seed.Users[0].JoinedAt)
	assert.Equal(t, time.Date(2026, 1, 1, 8, 30, 0, 0, time.UTC), seed.Users[1].JoinedAt)
}
