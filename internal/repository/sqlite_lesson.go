package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

const lessonColumns = `id, course_id, title, description, order_index, duration_min,
	video_url, steps, completed, completed_at`

// SQLiteLessonRepo implements LessonRepo using a SQLite database.
type SQLiteLessonRepo struct {
	db db.DBTX
}

// NewSQLiteLessonRepo creates a new SQLiteLessonRepo.
func NewSQLiteLessonRepo(conn db.DBTX) *SQLiteLessonRepo {
	return &SQLiteLessonRepo{db: conn}
}

// stepRecord is the stored shape of a lesson step.
type stepRecord struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	DurationMin int    `json:"duration_min"`
}

func (r *SQLiteLessonRepo) Create(ctx context.Context, l *domain.Lesson) error {
	records := make([]stepRecord, len(l.Steps))
	for i, s := range l.Steps {
		records[i] = stepRecord{Title: s.Title, Content: s.Content, DurationMin: s.DurationMin}
	}
	steps, err := encodeList(records)
	if err != nil {
		return err
	}
	query := `INSERT INTO lessons (` + lessonColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		l.ID,
		l.CourseID,
		l.Title,
		l.Description,
		l.Order,
		l.DurationMin,
		l.VideoURL,
		steps,
		boolToInt(l.Completed),
		nullableTimeToString(l.CompletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lesson %d: %w", l.ID, err)
	}
	return nil
}

func (r *SQLiteLessonRepo) GetByID(ctx context.Context, id int) (*domain.Lesson, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+lessonColumns+` FROM lessons WHERE id = ?`, id)
	l, err := scanLesson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning lesson %d: %w", id, err)
	}
	return l, nil
}

func (r *SQLiteLessonRepo) List(ctx context.Context) ([]*domain.Lesson, error) {
	return r.query(ctx, "listing lessons",
		`SELECT `+lessonColumns+` FROM lessons ORDER BY course_id, order_index`)
}

// ListByCourse returns the course's lessons sorted by order.
func (r *SQLiteLessonRepo) ListByCourse(ctx context.Context, courseID int) ([]*domain.Lesson, error) {
	return r.query(ctx, "listing lessons by course",
		`SELECT `+lessonColumns+` FROM lessons WHERE course_id = ? ORDER BY order_index`, courseID)
}

// MarkComplete sets the completed flag. A lesson that is already completed
// keeps its original CompletedAt.
func (r *SQLiteLessonRepo) MarkComplete(ctx context.Context, id int, at time.Time) (*domain.Lesson, error) {
	query := `UPDATE lessons
		SET completed = 1, completed_at = COALESCE(completed_at, ?)
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, formatTimestamp(at), id)
	if err != nil {
		return nil, fmt.Errorf("marking lesson %d complete: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("marking lesson %d complete: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("lesson %d: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteLessonRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lessons []*domain.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lessons, nil
}

func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var l domain.Lesson
	var steps string
	var completed int
	var completedAt sql.NullString
	err := row.Scan(
		&l.ID,
		&l.CourseID,
		&l.Title,
		&l.Description,
		&l.Order,
		&l.DurationMin,
		&l.VideoURL,
		&steps,
		&completed,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Completed = intToBool(completed)
	l.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	records, err := decodeList[stepRecord](steps)
	if err != nil {
		return nil, err
	}
	for _, s := range records {
		l.Steps = append(l.Steps, domain.Step{Title: s.Title, Content: s.Content, DurationMin: s.DurationMin})
	}
	return &l, nil
}
