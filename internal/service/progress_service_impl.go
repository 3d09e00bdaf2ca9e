package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

// ProgressSettings tunes the derived progress views.
type ProgressSettings struct {
	Levels progress.LevelPolicy
	Streak progress.StreakPolicy
	// Now is the clock used for completions and streaks. Nil means time.Now.
	Now func() time.Time
}

// DefaultProgressSettings uses the default level and streak policies.
func DefaultProgressSettings() ProgressSettings {
	return ProgressSettings{
		Levels: progress.DefaultLevelPolicy(),
		Streak: progress.DefaultStreakPolicy(),
	}
}

type progressService struct {
	courses  repository.CourseRepo
	lessons  repository.LessonRepo
	users    repository.UserRepo
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	settings ProgressSettings
	locks    *keyedMutex[progressKey]
	observer UseCaseObserver
}

func NewProgressService(
	courses repository.CourseRepo,
	lessons repository.LessonRepo,
	users repository.UserRepo,
	progressRepo repository.ProgressRepo,
	uow db.UnitOfWork,
	settings ProgressSettings,
	observers ...UseCaseObserver,
) ProgressService {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &progressService{
		courses:  courses,
		lessons:  lessons,
		users:    users,
		progress: progressRepo,
		uow:      uow,
		settings: settings,
		locks:    newKeyedMutex[progressKey](),
		observer: useCaseObserverOrNoop(observers),
	}
}

// CompleteLesson marks the lesson completed for the user and records the
// completion against the course. The first completion in a course enrolls
// the user. Finishing a course issues its certificate. Completing a lesson
// twice changes nothing. A locked lesson is rejected with domain.ErrLocked.
func (s *progressService) CompleteLesson(ctx context.Context, userID, lessonID int) (result *CompletionResult, err error) {
	fields := map[string]any{"user_id": userID, "lesson_id": lessonID}
	done := observe(ctx, s.observer, "complete-lesson", fields)
	defer func() { done(err) }()

	// Resolve the course outside the transaction so the lock can be taken
	// before any read of the progress snapshot.
	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	fields["course_id"] = lesson.CourseID

	unlock := s.locks.Lock(progressKey{UserID: userID, CourseID: lesson.CourseID})
	defer unlock()

	now := s.settings.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		result, err = completeLessonTx(ctx, tx, userID, lessonID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["already_completed"] = result.AlreadyCompleted
	fields["course_progress"] = result.CourseProgress.Progress
	return result, nil
}

func completeLessonTx(ctx context.Context, tx db.DBTX, userID, lessonID int, now time.Time) (*CompletionResult, error) {
	courses := repository.NewSQLiteCourseRepo(tx)
	lessons := repository.NewSQLiteLessonRepo(tx)
	users := repository.NewSQLiteUserRepo(tx)
	progressRepo := repository.NewSQLiteProgressRepo(tx)

	lesson, err := lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	course, err := courses.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	siblings, err := lessons.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	up, err := progressRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	all := derefLessons(siblings)
	before, enrolled := progress.GetCourseProgress(*up, course.ID)
	completedBefore := before.CompletedSet()
	if progress.IsLocked(*lesson, all, completedBefore) {
		return nil, fmt.Errorf("lesson %d of course %d needs the previous lesson completed first: %w",
			lesson.ID, course.ID, domain.ErrLocked)
	}

	result := &CompletionResult{Course: *course, Enrolled: !enrolled}
	if completedBefore[lesson.ID] {
		result.AlreadyCompleted = true
		result.Lesson = *lesson
		result.CourseProgress = before
		result.OverallProgress = up.OverallProgress
		return result, nil
	}

	next := *up
	if !enrolled {
		next = progress.Enroll(next, *course, now)
	}
	next, err = progress.Record(next, progress.Completion{
		CourseID: course.ID,
		LessonID: lesson.ID,
		At:       now,
		Minutes:  lesson.DurationMin,
	})
	if err != nil {
		return nil, err
	}

	marked, err := lessons.MarkComplete(ctx, lesson.ID, now)
	if err != nil {
		return nil, err
	}
	if err := users.AddCompletedLesson(ctx, userID, lesson.ID); err != nil {
		return nil, err
	}
	if err := progressRepo.Save(ctx, &next); err != nil {
		return nil, err
	}
	if err := progressRepo.RecordActivity(ctx, userID, now.Local()); err != nil {
		return nil, err
	}

	after, _ := progress.GetCourseProgress(next, course.ID)
	if after.Status == domain.CourseCompleted {
		if _, has := user.CertificateFor(course.ID); !has {
			cert := domain.Certificate{
				CourseID:     course.ID,
				CourseName:   course.Title,
				IssuedDate:   now.UTC().Truncate(time.Second),
				CredentialID: "SH-" + uuid.New().String(),
			}
			if err := users.AddCertificate(ctx, userID, cert); err != nil {
				return nil, err
			}
			result.Certificate = &cert
		}
	}

	completedAfter := after.CompletedSet()
	for i := range all {
		if all[i].Order == lesson.Order+1 && !progress.IsLocked(all[i], all, completedAfter) {
			result.Unlocked = &all[i]
		}
	}

	result.Lesson = *marked
	result.CourseProgress = after
	result.OverallProgress = next.OverallProgress
	return result, nil
}

func (s *progressService) Overview(ctx context.Context, userID int) (*ProgressOverview, error) {
	up, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.settings.Now()
	derived := s.derive(*up, catalog, now)
	return &ProgressOverview{
		Progress:     derived,
		Courses:      enrolledCourses(derived, catalog),
		Achievements: progress.Achievements(derived, now),
		Certificates: user.Certificates,
		GeneratedAt:  now,
	}, nil
}

func (s *progressService) CoursesByTab(ctx context.Context, userID int, tab progress.Tab) ([]EnrolledCourse, error) {
	up, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(up.Courses))
	for _, cp := range up.Courses {
		if c, ok := catalog.CourseByID(cp.CourseID); ok {
			courses = append(courses, c)
		}
	}
	filtered := progress.FilterByTab(courses, *up, tab)
	out := make([]EnrolledCourse, 0, len(filtered))
	for _, c := range filtered {
		cp, _ := progress.GetCourseProgress(*up, c.ID)
		out = append(out, EnrolledCourse{Course: c, Progress: cp})
	}
	return out, nil
}

func (s *progressService) SkillLevels(ctx context.Context, userID int) (map[string]domain.SkillLevel, error) {
	up, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progress.ComputeSkillLevels(*up, catalog, s.settings.Levels), nil
}

func (s *progressService) Streaks(ctx context.Context, userID int) (*StreakSummary, error) {
	up, err := s.progress.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.settings.Now()
	days := progress.CalendarDays(up.ActivityDates, now.Location())
	summary := &StreakSummary{
		Streaks:      progress.ComputeStreaks(up.ActivityDates, now, s.settings.Streak),
		ActivityDays: days,
	}
	if n := len(days); n > 0 {
		y, m, d := now.Date()
		ly, lm, ld := days[n-1].Date()
		summary.ActiveToday = y == ly && m == lm && d == ld
	}
	return summary, nil
}

func (s *progressService) load(ctx context.Context, userID int) (*domain.UserProgress, progress.Catalog, error) {
	up, err := s.progress.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return up, progress.NewCatalog(derefCourses(courses)), nil
}

// derive fills in the views recomputed on every read.
func (s *progressService) derive(up domain.UserProgress, catalog progress.CourseCatalog, now time.Time) domain.UserProgress {
	out := progress.Recalculate(up)
	streaks := progress.ComputeStreaks(out.ActivityDates, now, s.settings.Streak)
	out.CurrentStreak = streaks.Current
	out.LongestStreak = streaks.Longest
	out.SkillLevels = progress.ComputeSkillLevels(out, catalog, s.settings.Levels)
	return out
}

func enrolledCourses(up domain.UserProgress, catalog progress.CourseCatalog) []EnrolledCourse {
	out := make([]EnrolledCourse, 0, len(up.Courses))
	for _, cp := range up.Courses {
		c, ok := catalog.CourseByID(cp.CourseID)
		if !ok {
			continue
		}
		out = append(out, EnrolledCourse{Course: c, Progress: cp})
	}
	return out
}
