package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseMatches(t *testing.T) {
	c := Course{Title: "Raising Backyard Chickens", Description: "Coops and feed", Category: "farming", Instructor: "Ada Okafor"}

	assert.True(t, c.Matches(""))
	assert.True(t, c.Matches("  chickens "))
	assert.True(t, c.Matches("FEED"))
	assert.True(t, c.Matches("farm"))
	assert.True(t, c.Matches("okafor"))
	assert.False(t, c.Matches("goats"))
}

func TestCourseClone_IndependentSkills(t *testing.T) {
	c := Course{ID: 1, Skills: []string{"a", "b"}}
	cp := c.Clone()
	cp.Skills[0] = "z"
	assert.Equal(t, "a", c.Skills[0])
}

func TestAssignmentClone_Deep(t *testing.T) {
	due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := Assignment{ID: 1, DueDate: &due, Submissions: []Submission{{ID: 1, Files: []string{"a.pdf"}}}}
	cp := a.Clone()
	cp.Submissions[0].Files[0] = "b.pdf"
	*cp.DueDate = due.AddDate(1, 0, 0)

	assert.Equal(t, "a.pdf", a.Submissions[0].Files[0])
	assert.Equal(t, due, *a.DueDate)
}

func TestAssignmentLatestSubmission(t *testing.T) {
	_, ok := Assignment{}.LatestSubmission()
	assert.False(t, ok)

	a := Assignment{Submissions: []Submission{{ID: 1}, {ID: 2}}}
	s, ok := a.LatestSubmission()
	require.True(t, ok)
	assert.Equal(t, 2, s.ID)
}

func TestUserProgressClone_Deep(t *testing.T) {
	up := UserProgress{
		Courses:     []CourseProgress{{CourseID: 1, CompletedLessons: []int{1}}},
		SkillLevels: map[string]SkillLevel{"farming": {TotalSkills: 2}},
	}
	cp := up.Clone()
	cp.Courses[0].CompletedLessons[0] = 9
	cp.SkillLevels["farming"] = SkillLevel{TotalSkills: 5}

	assert.Equal(t, 1, up.Courses[0].CompletedLessons[0])
	assert.Equal(t, 2, up.SkillLevels["farming"].TotalSkills)
}

func TestUserProgressCourseIndex(t *testing.T) {
	up := UserProgress{Courses: []CourseProgress{{CourseID: 4}, {CourseID: 7}}}
	assert.Equal(t, 1, up.CourseIndex(7))
	assert.Equal(t, -1, up.CourseIndex(8))
}

func TestUserCertificateFor(t *testing.T) {
	u := User{Certificates: []Certificate{{CourseID: 3, CredentialID: "SH-1"}}}
	c, ok := u.CertificateFor(3)
	require.True(t, ok)
	assert.Equal(t, "SH-1", c.CredentialID)

	_, ok = u.CertificateFor(4)
	assert.False(t, ok)
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("submitting: %w", NewValidationError("content", "is required"))
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "submitting: content: is required")
	assert.False(t, IsValidation(ErrNotFound))

	assert.EqualError(t, &ValidationError{Message: "bad input"}, "bad input")
}
