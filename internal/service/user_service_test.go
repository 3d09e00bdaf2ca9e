package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
)

func TestUpdateSkillCategories_Normalises(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)

	u, err := svc.UpdateSkillCategories(context.Background(), env.user.ID, []string{" Farming", "crafts", "FARMING"})
	require.NoError(t, err)
	assert.Equal(t, []string{"farming", "crafts"}, u.SkillCategories)
}

func TestUpdateSkillCategories_Rejects(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	_, err := svc.UpdateSkillCategories(ctx, env.user.ID, []string{"poetry"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.UpdateSkillCategories(ctx, 999999, []string{"health"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCurrentAndCertificates(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, env.user.ID, cur.ID)

	for _, l := range env.lessonN {
		_, err := env.progressService().CompleteLesson(ctx, env.user.ID, l.ID)
		require.NoError(t, err)
	}
	certs, err := svc.Certificates(ctx, env.user.ID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, env.course.ID, certs[0].CourseID)

	_, err = svc.Get(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
