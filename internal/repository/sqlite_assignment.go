package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

const assignmentColumns = `id, lesson_id, title, description, points, due_date`

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
// Submissions live in their own table and are appended, never rewritten.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.LessonID,
		a.Title,
		a.Description,
		a.Points,
		nullableTimeToString(a.DueDate, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment %d: %w", a.ID, err)
	}
	for i := range a.Submissions {
		if err := r.AppendSubmission(ctx, a.ID, &a.Submissions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id int) (*domain.Assignment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id = ?`, id)
	a, err := scanAssignment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assignment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assignment %d: %w", id, err)
	}
	if err := r.loadSubmissions(ctx, []*domain.Assignment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAssignmentRepo) List(ctx context.Context) ([]*domain.Assignment, error) {
	return r.query(ctx, "listing assignments",
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY id`)
}

func (r *SQLiteAssignmentRepo) ListByLesson(ctx context.Context, lessonID int) ([]*domain.Assignment, error) {
	return r.query(ctx, "listing assignments by lesson",
		`SELECT `+assignmentColumns+` FROM assignments WHERE lesson_id = ? ORDER BY id`, lessonID)
}

// AppendSubmission stores s as the newest submission of the assignment.
func (r *SQLiteAssignmentRepo) AppendSubmission(ctx context.Context, assignmentID int, s *domain.Submission) error {
	files, err := encodeList(s.Files)
	if err != nil {
		return err
	}
	status := s.Status
	if status == "" {
		status = domain.SubmissionSubmitted
	}
	query := `INSERT INTO submissions (id, assignment_id, submitted_at, content, files, status)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		assignmentID,
		formatTimestamp(s.SubmittedAt),
		s.Content,
		files,
		string(status),
	)
	if err != nil {
		return fmt.Errorf("appending submission to assignment %d: %w", assignmentID, err)
	}
	return nil
}

// NextSubmissionID returns one past the highest identifier in use by either
// an assignment or a submission, so new submissions never collide with
// seeded data.
func (r *SQLiteAssignmentRepo) NextSubmissionID(ctx context.Context) (int, error) {
	query := `SELECT MAX(
		COALESCE((SELECT MAX(id) FROM assignments), 0),
		COALESCE((SELECT MAX(id) FROM submissions), 0)) + 1`
	var next int
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating submission id: %w", err)
	}
	return next, nil
}

func (r *SQLiteAssignmentRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var assignments []*domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		assignments = append(assignments, a)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Rows are closed before the follow-up query; the in-memory store has a
	// single connection.
	if err := r.loadSubmissions(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *SQLiteAssignmentRepo) loadSubmissions(ctx context.Context, assignments []*domain.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	byID := make(map[int]*domain.Assignment, len(assignments))
	for _, a := range assignments {
		byID[a.ID] = a
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, assignment_id, submitted_at, content, files, status
		FROM submissions ORDER BY assignment_id, id`)
	if err != nil {
		return fmt.Errorf("loading submissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Submission
		var assignmentID int
		var submittedAt, files, status string
		if err := rows.Scan(&s.ID, &assignmentID, &submittedAt, &s.Content, &files, &status); err != nil {
			return fmt.Errorf("scanning submission: %w", err)
		}
		a, ok := byID[assignmentID]
		if !ok {
			continue
		}
		if s.SubmittedAt, err = parseTimestamp(submittedAt); err != nil {
			return err
		}
		if s.Files, err = decodeList[string](files); err != nil {
			return err
		}
		s.Status = domain.SubmissionStatus(status)
		a.Submissions = append(a.Submissions, s)
	}
	return rows.Err()
}

func scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var a domain.Assignment
	var due sql.NullString
	if err := row.Scan(&a.ID, &a.LessonID, &a.Title, &a.Description, &a.Points, &due); err != nil {
		return nil, err
	}
	a.DueDate = parseNullableTime(due, dateLayout)
	a.Submissions = []domain.Submission{}
	return &a, nil
}
