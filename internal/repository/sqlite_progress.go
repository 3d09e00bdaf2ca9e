package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// Only raw facts are stored (completed lessons, hours, activity days); the
// derived percentages are recomputed on every read.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// Create opens an empty progress record for the user. Creating it twice is a
// no-op.
func (r *SQLiteProgressRepo) Create(ctx context.Context, userID int, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_progress (user_id, created_at) VALUES (?, ?)`,
		userID, formatTimestamp(at))
	if err != nil {
		return fmt.Errorf("creating progress for user %d: %w", userID, err)
	}
	return nil
}

func (r *SQLiteProgressRepo) GetByUser(ctx context.Context, userID int) (*domain.UserProgress, error) {
	if err := r.requireProgress(ctx, userID); err != nil {
		return nil, err
	}

	up := domain.UserProgress{UserID: userID}
	courses, err := r.loadCourses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := r.loadCompleted(ctx, userID, courses); err != nil {
		return nil, err
	}
	up.Courses = courses

	if up.ActivityDates, err = r.loadActivity(ctx, userID); err != nil {
		return nil, err
	}

	up = progress.Recalculate(up)
	return &up, nil
}

// Save upserts every course entry and adds any newly completed lessons.
// Entries and completed lessons missing from up are left in place, since
// both only ever grow.
func (r *SQLiteProgressRepo) Save(ctx context.Context, up *domain.UserProgress) error {
	if err := r.requireProgress(ctx, up.UserID); err != nil {
		return err
	}
	for i, c := range up.Courses {
		_, err := r.db.ExecContext(ctx, `INSERT INTO course_progress
			(user_id, course_id, position, total_lessons, hours_spent, last_accessed)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id, course_id) DO UPDATE SET
				total_lessons = excluded.total_lessons,
				hours_spent   = excluded.hours_spent,
				last_accessed = excluded.last_accessed`,
			up.UserID, c.CourseID, i+1, c.TotalLessons, c.HoursSpent, formatTimestamp(c.LastAccessed))
		if err != nil {
			return fmt.Errorf("saving progress for course %d: %w", c.CourseID, err)
		}
		for j, lessonID := range c.CompletedLessons {
			_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO course_progress_lessons
				(user_id, course_id, lesson_id, position) VALUES (?, ?, ?, ?)`,
				up.UserID, c.CourseID, lessonID, j+1)
			if err != nil {
				return fmt.Errorf("saving completed lesson %d for course %d: %w", lessonID, c.CourseID, err)
			}
		}
	}
	return nil
}

// RecordActivity marks the calendar day of day (in its own location) as a
// day with learning activity.
func (r *SQLiteProgressRepo) RecordActivity(ctx context.Context, userID int, day time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO learning_activity (user_id, activity_date) VALUES (?, ?)`,
		userID, day.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("recording activity for user %d: %w", userID, err)
	}
	return nil
}

func (r *SQLiteProgressRepo) requireProgress(ctx context.Context, userID int) error {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM user_progress WHERE user_id = ?`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("progress for user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("loading progress for user %d: %w", userID, err)
	}
	return nil
}

func (r *SQLiteProgressRepo) loadCourses(ctx context.Context, userID int) ([]domain.CourseProgress, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT course_id, total_lessons, hours_spent, last_accessed
		FROM course_progress WHERE user_id = ? ORDER BY position, course_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("loading course progress for user %d: %w", userID, err)
	}
	defer rows.Close()

	courses := []domain.CourseProgress{}
	for rows.Next() {
		var c domain.CourseProgress
		var last string
		if err := rows.Scan(&c.CourseID, &c.TotalLessons, &c.HoursSpent, &last); err != nil {
			return nil, fmt.Errorf("scanning course progress: %w", err)
		}
		if c.LastAccessed, err = parseTimestamp(last); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *SQLiteProgressRepo) loadCompleted(ctx context.Context, userID int, courses []domain.CourseProgress) error {
	idx := make(map[int]int, len(courses))
	for i, c := range courses {
		idx[c.CourseID] = i
	}
	rows, err := r.db.QueryContext(ctx, `SELECT course_id, lesson_id FROM course_progress_lessons
		WHERE user_id = ? ORDER BY course_id, position`, userID)
	if err != nil {
		return fmt.Errorf("loading completed lessons for user %d: %w", userID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID, lessonID int
		if err := rows.Scan(&courseID, &lessonID); err != nil {
			return fmt.Errorf("scanning completed lesson: %w", err)
		}
		if i, ok := idx[courseID]; ok {
			courses[i].CompletedLessons = append(courses[i].CompletedLessons, lessonID)
		}
	}
	return rows.Err()
}

// loadActivity returns activity days as midnight in the local time zone, the
// zone the CLI computes streaks in.
func (r *SQLiteProgressRepo) loadActivity(ctx context.Context, userID int) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT activity_date FROM learning_activity
		WHERE user_id = ? ORDER BY activity_date`, userID)
	if err != nil {
		return nil, fmt.Errorf("loading activity for user %d: %w", userID, err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning activity date: %w", err)
		}
		d, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing activity date %q: %w", s, err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
