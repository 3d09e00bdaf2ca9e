package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

const courseColumns = `id, title, description, instructor, category, difficulty,
	total_lessons, duration, skills, featured, rating, enrolled, thumbnail`

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	skills, err := encodeList(c.Skills)
	if err != nil {
		return err
	}
	query := `INSERT INTO courses (` + courseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.Description,
		c.Instructor,
		c.Category,
		string(c.Difficulty),
		c.TotalLessons,
		c.Duration,
		skills,
		boolToInt(c.Featured),
		c.Rating,
		c.Enrolled,
		c.Thumbnail,
	)
	if err != nil {
		return fmt.Errorf("inserting course %d: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning course %d: %w", id, err)
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	return r.query(ctx, "listing courses",
		`SELECT `+courseColumns+` FROM courses ORDER BY id`)
}

func (r *SQLiteCourseRepo) ListByCategory(ctx context.Context, category string) ([]*domain.Course, error) {
	return r.query(ctx, "listing courses by category",
		`SELECT `+courseColumns+` FROM courses WHERE lower(category) = lower(?) ORDER BY id`, category)
}

func (r *SQLiteCourseRepo) ListFeatured(ctx context.Context) ([]*domain.Course, error) {
	return r.query(ctx, "listing featured courses",
		`SELECT `+courseColumns+` FROM courses WHERE featured = 1 ORDER BY id`)
}

// Search matches the query case-insensitively against title, description and
// category.
func (r *SQLiteCourseRepo) Search(ctx context.Context, query string) ([]*domain.Course, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	return r.query(ctx, "searching courses",
		`SELECT `+courseColumns+` FROM courses
		WHERE lower(title) LIKE ? ESCAPE '\'
		   OR lower(description) LIKE ? ESCAPE '\'
		   OR lower(category) LIKE ? ESCAPE '\'
		   OR lower(instructor) LIKE ? ESCAPE '\'
		ORDER BY id`, pattern, pattern, pattern, pattern)
}

func (r *SQLiteCourseRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return courses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	var difficulty, skills string
	var featured int
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Instructor,
		&c.Category,
		&difficulty,
		&c.TotalLessons,
		&c.Duration,
		&skills,
		&featured,
		&c.Rating,
		&c.Enrolled,
		&c.Thumbnail,
	)
	if err != nil {
		return nil, err
	}
	c.Difficulty = domain.Difficulty(difficulty)
	c.Featured = intToBool(featured)
	if c.Skills, err = decodeList[string](skills); err != nil {
		return nil, err
	}
	return &c, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
