package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

// FormatUser renders a learner profile.
func FormatUser(u *domain.User) string {
	var b strings.Builder
	b.WriteString(Bold(u.Name) + " " + Dim("<"+u.Email+">") + "\n")
	b.WriteString(Dim("Joined "+u.JoinedAt.Format("Jan 2, 2006")) + "\n\n")

	cats := Dim("none")
	if len(u.SkillCategories) > 0 {
		labels := make([]string, len(u.SkillCategories))
		for i, c := range u.SkillCategories {
			labels[i] = CategoryBadge(c)
		}
		cats = strings.Join(labels, ", ")
	}
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Interests", cats))
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Lessons completed", Bold(strconv.Itoa(len(u.CompletedLessons)))))
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Certificates", Bold(strconv.Itoa(len(u.Certificates)))))
	return b.String()
}

// FormatCertificates renders issued certificates, oldest first.
func FormatCertificates(certs []domain.Certificate) string {
	if len(certs) == 0 {
		return Dim("No certificates yet. Finish a course to earn one.") + "\n"
	}
	rows := make([][]string, 0, len(certs))
	for _, c := range certs {
		rows = append(rows, []string{
			StyleYellow.Render("🎓 ") + Bold(c.CourseName),
			c.IssuedDate.Format("Jan 2, 2006"),
			Dim(c.CredentialID),
		})
	}
	return RenderTable([]string{"COURSE", "ISSUED", "CREDENTIAL"}, rows)
}

// FormatAssignments renders the assignments of a lesson with their latest
// submission state.
func FormatAssignments(list []*domain.Assignment, now time.Time) string {
	if len(list) == 0 {
		return Dim("No assignments for this lesson.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		state := Dim("not submitted")
		if s, ok := a.LatestSubmission(); ok {
			state = SubmissionPill(s.Status)
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(a.ID)),
			Bold(a.Title),
			strconv.Itoa(a.Points),
			DueStyled(a.DueDate, now),
			state,
		})
	}
	return RenderTable([]string{"ID", "ASSIGNMENT", "POINTS", "DUE", "SUBMISSION"}, rows)
}

// FormatSubmission confirms the latest submission of a.
func FormatSubmission(a *domain.Assignment) string {
	s, ok := a.LatestSubmission()
	if !ok {
		return Dim("Nothing submitted.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Submitted ") + Bold(a.Title) + Dim(fmt.Sprintf(" (submission #%d)", s.ID)) + "\n")
	b.WriteString(Dim(s.SubmittedAt.Local().Format("Jan 2, 2006 15:04")) + "  " + SubmissionPill(s.Status) + "\n")
	if len(s.Files) > 0 {
		b.WriteString(Dim("Files: ") + strings.Join(s.Files, ", ") + "\n")
	}
	return b.String()
}
