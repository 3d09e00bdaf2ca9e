package domain

import "strings"

type Course struct {
	ID           int
	Title        string
	Description  string
	Instructor   string
	Category     string
	Difficulty   Difficulty
	TotalLessons int
	Duration     string
	Skills       []string
	Featured     bool
	Rating       float64
	Enrolled     int
	Thumbnail    string
}

// Clone returns a copy that shares no slices with c.
func (c Course) Clone() Course {
	c.Skills = append([]string(nil), c.Skills...)
	return c
}

// Matches reports whether the lower-cased query appears in the course title,
// description, category or instructor. An empty query matches everything.
func (c Course) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Title, c.Description, c.Category, c.Instructor} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
