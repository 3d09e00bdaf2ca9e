package domain

import "time"

type Step struct {
	Title       string
	Content     string
	DurationMin int
}

type Lesson struct {
	ID          int
	CourseID    int
	Title       string
	Description string
	Order       int
	DurationMin int
	VideoURL    string
	Steps       []Step
	Completed   bool
	CompletedAt *time.Time
}

// Clone returns a copy that shares no slices or pointers with l.
func (l Lesson) Clone() Lesson {
	l.Steps = append([]Step(nil), l.Steps...)
	if l.CompletedAt != nil {
		at := *l.CompletedAt
		l.CompletedAt = &at
	}
	return l
}

// Hours converts the lesson duration to fractional hours.
func (l Lesson) Hours() float64 {
	return float64(l.DurationMin) / 60
}
