package repository

import (
	"context"
	"testing"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLesson creates a course with one lesson and returns the lesson ID.
func seedLesson(t *testing.T, ctx context.Context, conn *SQLiteCourseRepo, lessons *SQLiteLessonRepo) int {
	t.Helper()
	course := testutil.NewTestCourse("Pottery")
	require.NoError(t, conn.Create(ctx, course))
	l := testutil.NewTestLesson(course.ID, 1)
	require.NoError(t, lessons.Create(ctx, l))
	return l.ID
}

func TestAssignmentRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	lessonID := seedLesson(t, ctx, NewSQLiteCourseRepo(db), NewSQLiteLessonRepo(db))
	repo := NewSQLiteAssignmentRepo(db)

	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	a := testutil.NewTestAssignment(lessonID, "Throw a bowl", testutil.WithPoints(25), testutil.WithDueDate(due))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
	assert.Equal(t, 25, got.Points)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	assert.Empty(t, got.Submissions)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignmentRepo_AppendSubmission_PreservesOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	lessonID := seedLesson(t, ctx, NewSQLiteCourseRepo(db), NewSQLiteLessonRepo(db))
	repo := NewSQLiteAssignmentRepo(db)

	a := testutil.NewTestAssignment(lessonID, "Glaze")
	require.NoError(t, repo.Create(ctx, a))

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first try", "second try"} {
		id, err := repo.NextSubmissionID(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.AppendSubmission(ctx, a.ID, &domain.Submission{
			ID:          id,
			SubmittedAt: at.Add(time.Duration(i) * time.Hour),
			Content:     content,
			Files:       []string{"photo.jpg"},
		}))
	}

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Submissions, 2)
	assert.Equal(t, "first try", got.Submissions[0].Content)
	assert.Equal(t, "second try", got.Submissions[1].Content)
	assert.Equal(t, domain.SubmissionSubmitted, got.Submissions[1].Status)
	assert.Equal(t, []string{"photo.jpg"}, got.Submissions[0].Files)
	assert.Greater(t, got.Submissions[1].ID, got.Submissions[0].ID)
	assert.Greater(t, got.Submissions[0].ID, a.ID, "submission ids continue after assignment ids")
}

func TestAssignmentRepo_ListByLesson(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	courses := NewSQLiteCourseRepo(db)
	lessons := NewSQLiteLessonRepo(db)
	repo := NewSQLiteAssignmentRepo(db)

	first := seedLesson(t, ctx, courses, lessons)
	second := seedLesson(t, ctx, courses, lessons)

	a1 := testutil.NewTestAssignment(first, "A1")
	a2 := testutil.NewTestAssignment(first, "A2")
	b1 := testutil.NewTestAssignment(second, "B1")
	for _, a := range []*domain.Assignment{a1, a2, b1} {
		require.NoError(t, repo.Create(ctx, a))
	}
	id, err := repo.NextSubmissionID(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.AppendSubmission(ctx, a2.ID, &domain.Submission{ID: id, SubmittedAt: time.Now(), Content: "x"}))

	got, err := repo.ListByLesson(ctx, first)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].Title)
	assert.Empty(t, got[0].Submissions)
	assert.Len(t, got[1].Submissions, 1)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAssignmentRepo_AppendSubmission_UnknownAssignment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssignmentRepo(db)

	err := repo.AppendSubmission(context.Background(), 4242, &domain.Submission{ID: 1, SubmittedAt: time.Now()})
	assert.Error(t, err, "foreign key rejects submissions for unknown assignments")
}
