package progress

import (
	"testing"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementIDs(list []Achievement) []string {
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestAchievements_None(t *testing.T) {
	assert.Empty(t, Achievements(domain.UserProgress{}, time.Now()))
}

func TestAchievements_All(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	finished := now.AddDate(0, 0, -3)
	up := domain.UserProgress{
		Courses: []domain.CourseProgress{
			{CourseID: 1, Progress: 100, Status: domain.CourseCompleted, LastAccessed: finished},
		},
		CoursesCompleted:  1,
		CurrentStreak:     7,
		TotalHoursLearned: 40,
	}

	got := Achievements(up, now)
	require.Equal(t, []string{"course-completed", "streak-week", "hours-milestone"}, achievementIDs(got))
	assert.Equal(t, finished, got[0].Date)
	assert.Equal(t, "Completed 1 course", got[0].Description)
	assert.Equal(t, "7 day learning streak", got[1].Description)
}

func TestAchievements_Thresholds(t *testing.T) {
	up := domain.UserProgress{CurrentStreak: 6, TotalHoursLearned: 39.9}
	assert.Empty(t, Achievements(up, time.Now()))
}
