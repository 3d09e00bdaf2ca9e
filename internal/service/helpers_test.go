package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/testutil"
)

// testEnv is a seeded store with one user and one three-lesson course.
type testEnv struct {
	db          *sql.DB
	courses     *repository.SQLiteCourseRepo
	lessons     *repository.SQLiteLessonRepo
	assignments *repository.SQLiteAssignmentRepo
	users       *repository.SQLiteUserRepo
	progress    *repository.SQLiteProgressRepo

	user    *domain.User
	course  *domain.Course
	lessonN []*domain.Lesson // by order, lessonN[0] has order 1
	now     time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:          database,
		courses:     repository.NewSQLiteCourseRepo(database),
		lessons:     repository.NewSQLiteLessonRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		users:       repository.NewSQLiteUserRepo(database),
		progress:    repository.NewSQLiteProgressRepo(database),
		now:         time.Date(2026, 10, 15, 18, 0, 0, 0, time.Local),
	}
	ctx := context.Background()

	env.user = testutil.NewTestUser("Amara")
	require.NoError(t, env.users.Create(ctx, env.user))
	require.NoError(t, env.progress.Create(ctx, env.user.ID, env.now))

	env.course = env.addCourse(t, "Goat Keeping", testutil.WithCategory("farming"))
	return env
}

// addCourse stores a course with one lesson per TotalLessons (default 3).
func (e *testEnv) addCourse(t *testing.T, title string, opts ...testutil.CourseOption) *domain.Course {
	t.Helper()
	ctx := context.Background()
	c := testutil.NewTestCourse(title, opts...)
	require.NoError(t, e.courses.Create(ctx, c))
	var lessons []*domain.Lesson
	for order := 1; order <= c.TotalLessons; order++ {
		l := testutil.NewTestLesson(c.ID, order)
		require.NoError(t, e.lessons.Create(ctx, l))
		lessons = append(lessons, l)
	}
	if e.course == nil {
		e.lessonN = lessons
	}
	return c
}

func (e *testEnv) clock() time.Time { return e.now }

func (e *testEnv) progressService(observers ...UseCaseObserver) ProgressService {
	settings := DefaultProgressSettings()
	settings.Now = e.clock
	return NewProgressService(e.courses, e.lessons, e.users, e.progress, testutil.NewTestUoW(e.db), settings, observers...)
}

func (e *testEnv) lessonService() LessonService {
	return NewLessonService(e.courses, e.lessons, e.assignments, e.progress)
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}
