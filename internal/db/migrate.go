package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id            INTEGER PRIMARY KEY CHECK(id > 0),
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		instructor    TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL,
		difficulty    TEXT NOT NULL DEFAULT 'beginner'
		              CHECK(difficulty IN ('beginner','intermediate','advanced')),
		total_lessons INTEGER NOT NULL DEFAULT 0 CHECK(total_lessons >= 0),
		duration      TEXT NOT NULL DEFAULT '',
		skills        TEXT NOT NULL DEFAULT '[]',
		featured      INTEGER NOT NULL DEFAULT 0,
		rating        REAL NOT NULL DEFAULT 0,
		enrolled      INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_category ON courses(category)`,

	`CREATE TABLE IF NOT EXISTS lessons (
		id           INTEGER PRIMARY KEY CHECK(id > 0),
		course_id    INTEGER NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		order_index  INTEGER NOT NULL CHECK(order_index > 0),
		duration_min INTEGER NOT NULL DEFAULT 0,
		video_url    TEXT NOT NULL DEFAULT '',
		steps        TEXT NOT NULL DEFAULT '[]',
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		UNIQUE(course_id, order_index)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lessons_course ON lessons(course_id)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id          INTEGER PRIMARY KEY CHECK(id > 0),
		lesson_id   INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		points      INTEGER NOT NULL DEFAULT 0,
		due_date    TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_lesson ON assignments(lesson_id)`,

	`CREATE TABLE IF NOT EXISTS submissions (
		id            INTEGER PRIMARY KEY,
		assignment_id INTEGER NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
		submitted_at  TEXT NOT NULL,
		content       TEXT NOT NULL DEFAULT '',
		files         TEXT NOT NULL DEFAULT '[]',
		status        TEXT NOT NULL DEFAULT 'submitted'
		              CHECK(status IN ('submitted','reviewed'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_assignment ON submissions(assignment_id)`,

	`CREATE TABLE IF NOT EXISTS users (
		id               INTEGER PRIMARY KEY CHECK(id > 0),
		name             TEXT NOT NULL,
		email            TEXT NOT NULL DEFAULT '',
		skill_categories TEXT NOT NULL DEFAULT '[]',
		joined_at        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_completed_lessons (
		user_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		lesson_id INTEGER NOT NULL,
		position  INTEGER NOT NULL,
		PRIMARY KEY (user_id, lesson_id)
	)`,
	`CREATE TABLE IF NOT EXISTS certificates (
		user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		course_id     INTEGER NOT NULL,
		course_name   TEXT NOT NULL DEFAULT '',
		issued_date   TEXT NOT NULL,
		credential_id TEXT NOT NULL UNIQUE,
		PRIMARY KEY (user_id, course_id)
	)`,

	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id    INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS course_progress (
		user_id       INTEGER NOT NULL REFERENCES user_progress(user_id) ON DELETE CASCADE,
		course_id     INTEGER NOT NULL,
		position      INTEGER NOT NULL,
		total_lessons INTEGER NOT NULL DEFAULT 0 CHECK(total_lessons >= 0),
		hours_spent   REAL NOT NULL DEFAULT 0,
		last_accessed TEXT NOT NULL,
		PRIMARY KEY (user_id, course_id)
	)`,
	`CREATE TABLE IF NOT EXISTS course_progress_lessons (
		user_id   INTEGER NOT NULL,
		course_id INTEGER NOT NULL,
		lesson_id INTEGER NOT NULL,
		position  INTEGER NOT NULL,
		PRIMARY KEY (user_id, course_id, lesson_id),
		FOREIGN KEY (user_id, course_id)
			REFERENCES course_progress(user_id, course_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS learning_activity (
		user_id       INTEGER NOT NULL REFERENCES user_progress(user_id) ON DELETE CASCADE,
		activity_date TEXT NOT NULL,
		PRIMARY KEY (user_id, activity_date)
	)`,

	// Added after the first release; re-running is tolerated below.
	`ALTER TABLE courses ADD COLUMN thumbnail TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations. It is safe to run on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
