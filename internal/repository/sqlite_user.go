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

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	cats, err := encodeList(u.SkillCategories)
	if err != nil {
		return err
	}
	joined := u.JoinedAt
	if joined.IsZero() {
		joined = time.Now().UTC()
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, skill_categories, joined_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, cats, formatTimestamp(joined))
	if err != nil {
		return fmt.Errorf("inserting user %d: %w", u.ID, err)
	}
	for _, lessonID := range u.CompletedLessons {
		if err := r.AddCompletedLesson(ctx, u.ID, lessonID); err != nil {
			return err
		}
	}
	for _, c := range u.Certificates {
		if err := r.AddCertificate(ctx, u.ID, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, skill_categories, joined_at FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user %d: %w", id, err)
	}
	if err := r.loadDetails(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Current returns the user with the lowest identifier, which the front end
// treats as the signed-in learner.
func (r *SQLiteUserRepo) Current(ctx context.Context) (*domain.User, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users ORDER BY id LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("current user: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding current user: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, skill_categories, joined_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("listing users: %w", err)
		}
		users = append(users, u)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	for _, u := range users {
		if err := r.loadDetails(ctx, u); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *SQLiteUserRepo) UpdateSkillCategories(ctx context.Context, id int, categories []string) error {
	cats, err := encodeList(categories)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE users SET skill_categories = ? WHERE id = ?`, cats, id)
	if err != nil {
		return fmt.Errorf("updating skill categories for user %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("user %d", id))
}

// AddCompletedLesson records the lesson in the user's completed set. Adding
// the same lesson twice is a no-op.
func (r *SQLiteUserRepo) AddCompletedLesson(ctx context.Context, userID, lessonID int) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO user_completed_lessons (user_id, lesson_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM user_completed_lessons WHERE user_id = ?))`,
		userID, lessonID, userID)
	if err != nil {
		return fmt.Errorf("adding completed lesson %d for user %d: %w", lessonID, userID, err)
	}
	return nil
}

// AddCertificate stores a certificate; a second certificate for the same
// course is ignored.
func (r *SQLiteUserRepo) AddCertificate(ctx context.Context, userID int, c domain.Certificate) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO certificates
		(user_id, course_id, course_name, issued_date, credential_id) VALUES (?, ?, ?, ?, ?)`,
		userID, c.CourseID, c.CourseName, formatTimestamp(c.IssuedDate), c.CredentialID)
	if err != nil {
		return fmt.Errorf("adding certificate for course %d to user %d: %w", c.CourseID, userID, err)
	}
	return nil
}

func (r *SQLiteUserRepo) loadDetails(ctx context.Context, u *domain.User) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT lesson_id FROM user_completed_lessons WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return fmt.Errorf("loading completed lessons for user %d: %w", u.ID, err)
	}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning completed lesson: %w", err)
		}
		u.CompletedLessons = append(u.CompletedLessons, id)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("loading completed lessons for user %d: %w", u.ID, err)
	}

	rows, err = r.db.QueryContext(ctx, `SELECT course_id, course_name, issued_date, credential_id
		FROM certificates WHERE user_id = ? ORDER BY issued_date, course_id`, u.ID)
	if err != nil {
		return fmt.Errorf("loading certificates for user %d: %w", u.ID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Certificate
		var issued string
		if err := rows.Scan(&c.CourseID, &c.CourseName, &issued, &c.CredentialID); err != nil {
			return fmt.Errorf("scanning certificate: %w", err)
		}
		if c.IssuedDate, err = parseTimestamp(issued); err != nil {
			return err
		}
		u.Certificates = append(u.Certificates, c)
	}
	return rows.Err()
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var cats, joined string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &cats, &joined); err != nil {
		return nil, err
	}
	var err error
	if u.SkillCategories, err = decodeList[string](cats); err != nil {
		return nil, err
	}
	if u.JoinedAt, err = parseTimestamp(joined); err != nil {
		return nil, err
	}
	return &u, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
