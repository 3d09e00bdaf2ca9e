package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	seed, err := Load(ctx, testutil.NewTestUoW(db), "")
	require.NoError(t, err)

	courses, err := repository.NewSQLiteCourseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(seed.Courses))

	lessons, err := repository.NewSQLiteLessonRepo(db).ListByCourse(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lessons, 4)
	assert.True(t, lessons[0].Completed)

	a, err := repository.NewSQLiteAssignmentRepo(db).GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, a.Submissions, 1)
	assert.Equal(t, domain.SubmissionReviewed, a.Submissions[0].Status)

	cur, err := repository.NewSQLiteUserRepo(db).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amara Okafor", cur.Name)
	require.Len(t, cur.Certificates, 1)

	up, err := repository.NewSQLiteProgressRepo(db).GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, seed.Progress[0].OverallProgress, up.OverallProgress)
	assert.Len(t, up.ActivityDates, 10)

	other, err := repository.NewSQLiteProgressRepo(db).GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other.Courses)
}

func TestPersist_RollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	seed, err := Convert(validMinimalCatalog())
	require.NoError(t, err)

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 3, Err: boom}
	err = seed.Persist(ctx, uow)
	require.ErrorIs(t, err, boom)

	courses, err := repository.NewSQLiteCourseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestPrepare_InvalidCatalogJoinsErrors(t *testing.T) {
	path := t.TempDir() + "/bad.json"
	require.NoError(t, writeFile(path, `{"courses":[{"id":0,"title":"","category":"farming","difficulty":"beginner"}]}`))

	_, err := Prepare(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courses[0].id: must be gt 0")
	assert.Contains(t, err.Error(), "courses[0].title: is required")
}

func TestShiftActivity_LatestDayBecomesToday(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.Local) }
	seed := &Seed{Progress: []domain.UserProgress{
		{UserID: 1, ActivityDates: []time.Time{day(2026, 3, 1), day(2026, 3, 3), day(2026, 3, 2)}},
		{UserID: 2},
	}}

	seed.ShiftActivity(time.Date(2026, 10, 15, 21, 30, 0, 0, time.Local))

	assert.Equal(t, []time.Time{day(2026, 10, 13), day(2026, 10, 15), day(2026, 10, 14)}, seed.Progress[0].ActivityDates)
	assert.Empty(t, seed.Progress[1].ActivityDates)
}
