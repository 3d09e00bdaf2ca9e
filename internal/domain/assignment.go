package domain

import "time"

type Submission struct {
	ID          int
	SubmittedAt time.Time
	Content     string
	Files       []string
	Status      SubmissionStatus
}

type Assignment struct {
	ID          int
	LessonID    int
	Title       string
	Description string
	Points      int
	DueDate     *time.Time
	Submissions []Submission
}

// Clone returns a deep copy of a, including its submission history.
func (a Assignment) Clone() Assignment {
	subs := make([]Submission, len(a.Submissions))
	for i, s := range a.Submissions {
		s.Files = append([]string(nil), s.Files...)
		subs[i] = s
	}
	a.Submissions = subs
	if a.DueDate != nil {
		due := *a.DueDate
		a.DueDate = &due
	}
	return a
}

// LatestSubmission returns the most recently appended submission.
func (a Assignment) LatestSubmission() (Submission, bool) {
	if len(a.Submissions) == 0 {
		return Submission{}, false
	}
	return a.Submissions[len(a.Submissions)-1], true
}
