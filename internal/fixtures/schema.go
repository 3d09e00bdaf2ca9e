package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed catalog.json
var defaultCatalog []byte

// Catalog is the top-level JSON structure of a seed file.
type Catalog struct {
	Courses     []CourseFixture     `json:"courses" validate:"dive"`
	Lessons     []LessonFixture     `json:"lessons" validate:"dive"`
	Assignments []AssignmentFixture `json:"assignments" validate:"dive"`
	Users       []UserFixture       `json:"users" validate:"dive"`
	Progress    []ProgressFixture   `json:"progress" validate:"dive"`
}

// CourseFixture defines a course. TotalLessons defaults to the number of
// lessons in the file that belong to the course.
type CourseFixture struct {
	ID           int      `json:"id" validate:"gt=0"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Instructor   string   `json:"instructor"`
	Category     string   `json:"category" validate:"required,oneof=farming health finance technology business crafts"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	TotalLessons *int     `json:"total_lessons,omitempty" validate:"omitempty,gte=0"`
	Duration     string   `json:"duration"`
	Skills       []string `json:"skills" validate:"dive,required"`
	Featured     *bool    `json:"featured,omitempty"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Enrolled     int      `json:"enrolled" validate:"gte=0"`
	Thumbnail    string   `json:"thumbnail"`
}

type StepFixture struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	DurationMin *int   `json:"duration_min,omitempty" validate:"omitempty,gte=0"`
}

type LessonFixture struct {
	ID          int           `json:"id" validate:"gt=0"`
	CourseID    int           `json:"course_id" validate:"gt=0"`
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Order       int           `json:"order" validate:"gt=0"`
	DurationMin int           `json:"duration_min" validate:"gte=0"`
	VideoURL    string        `json:"video_url" validate:"omitempty,url"`
	Steps       []StepFixture `json:"steps" validate:"dive"`
	Completed   *bool         `json:"completed,omitempty"`
	CompletedAt *string       `json:"completed_at,omitempty"`
}

type SubmissionFixture struct {
	ID          int      `json:"id" validate:"gt=0"`
	SubmittedAt string   `json:"submitted_at" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Files       []string `json:"files"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=submitted reviewed"`
}

type AssignmentFixture struct {
	ID          int                 `json:"id" validate:"gt=0"`
	LessonID    int                 `json:"lesson_id" validate:"gt=0"`
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Points      int                 `json:"points" validate:"gte=0"`
	DueDate     *string             `json:"due_date,omitempty"`
	Submissions []SubmissionFixture `json:"submissions" validate:"dive"`
}

type CertificateFixture struct {
	CourseID     int    `json:"course_id" validate:"gt=0"`
	CourseName   string `json:"course_name"`
	IssuedDate   string `json:"issued_date" validate:"required"`
	CredentialID string `json:"credential_id" validate:"required"`
}

type UserFixture struct {
	ID               int                  `json:"id" validate:"gt=0"`
	Name             string               `json:"name" validate:"required"`
	Email            string               `json:"email" validate:"required,email"`
	SkillCategories  []string             `json:"skill_categories" validate:"dive,oneof=farming health finance technology business crafts"`
	CompletedLessons []int                `json:"completed_lessons" validate:"dive,gt=0"`
	Certificates     []CertificateFixture `json:"certificates" validate:"dive"`
	JoinedAt         *string              `json:"joined_at,omitempty"`
}

type CourseProgressFixture struct {
	CourseID         int     `json:"course_id" validate:"gt=0"`
	CompletedLessons []int   `json:"completed_lessons" validate:"dive,gt=0"`
	HoursSpent       float64 `json:"hours_spent" validate:"gte=0"`
	LastAccessed     string  `json:"last_accessed" validate:"required"`
}

// ProgressFixture seeds one user's progress. Activity dates are calendar
// days (YYYY-MM-DD).
type ProgressFixture struct {
	UserID        int                     `json:"user_id" validate:"gt=0"`
	Courses       []CourseProgressFixture `json:"courses" validate:"dive"`
	ActivityDates []string                `json:"activity_dates"`
}

// LoadCatalog reads a seed file. An empty path returns the embedded default
// catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a seed document, rejecting unknown fields.
func ParseCatalog(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing fixture file: %w", err)
	}
	return &c, nil
}
