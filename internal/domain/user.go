package domain

import (
	"slices"
	"time"
)

type Certificate struct {
	CourseID     int
	CourseName   string
	IssuedDate   time.Time
	CredentialID string
}

type User struct {
	ID               int
	Name             string
	Email            string
	SkillCategories  []string
	CompletedLessons []int
	Certificates     []Certificate
	JoinedAt         time.Time
}

// HasCompleted reports whether the lesson is in the user's completed set.
func (u User) HasCompleted(lessonID int) bool {
	return slices.Contains(u.CompletedLessons, lessonID)
}

// CertificateFor returns the certificate issued for a course, if any.
func (u User) CertificateFor(courseID int) (Certificate, bool) {
	for _, c := range u.Certificates {
		if c.CourseID == courseID {
			return c, true
		}
	}
	return Certificate{}, false
}
