// Package app wires the store, the fixture catalog and the services into
// the set of use cases the command line drives.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/config"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/fixtures"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
	"github.com/rs/zerolog"
)

// Services is every use case offered to a learner.
type Services struct {
	Catalog     service.CatalogService
	Lessons     service.LessonService
	Progress    service.ProgressService
	Assignments service.AssignmentService
	Users       service.UserService
}

// Options tune New. A nil Now means time.Now.
type Options struct {
	Config *config.Config
	Logger zerolog.Logger
	Now    func() time.Time
}

// New builds the services over database.
func New(database *sql.DB, opts Options) Services {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	courses := repository.NewSQLiteCourseRepo(database)
	lessons := repository.NewSQLiteLessonRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(opts.Logger)

	settings := service.ProgressSettings{
		Levels: cfg.LevelPolicy(),
		Streak: cfg.StreakPolicy(),
		Now:    now,
	}

	return Services{
		Catalog:     service.NewCatalogService(courses),
		Lessons:     service.NewLessonService(courses, lessons, assignments, progressRepo),
		Progress:    service.NewProgressService(courses, lessons, users, progressRepo, uow, settings, observer),
		Assignments: service.NewAssignmentService(assignments, uow, observer),
		Users:       service.NewUserService(users),
	}
}

// Open opens the configured store and seeds it from the fixture catalog
// when it holds no users yet. The caller closes the returned database.
func Open(ctx context.Context, opts Options) (*sql.DB, Services, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
		opts.Config = cfg
	}

	database, err := db.OpenDB(cfg.Store.DSN)
	if err != nil {
		return nil, Services{}, fmt.Errorf("opening store: %w", err)
	}

	if err := Seed(ctx, database, cfg.Store.Fixtures, opts); err != nil {
		database.Close()
		return nil, Services{}, err
	}
	return database, New(database, opts), nil
}

// Seed loads the fixture catalog at path (the bundled one when empty) into
// an empty store. A store that already has users is left untouched. The
// bundled catalog's activity history is moved to end today so its demo
// streak is live.
func Seed(ctx context.Context, database *sql.DB, path string, opts Options) error {
	existing, err := repository.NewSQLiteUserRepo(database).List(ctx)
	if err != nil {
		return fmt.Errorf("checking store: %w", err)
	}
	if len(existing) > 0 {
		opts.Logger.Debug().Int("users", len(existing)).Msg("store already seeded")
		return nil
	}

	seed, err := fixtures.Prepare(path)
	if err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}
	if path == "" {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		seed.ShiftActivity(now())
	}
	if err := seed.Persist(ctx, db.NewSQLiteUnitOfWork(database)); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	opts.Logger.Info().
		Str("fixtures", fixtureName(path)).
		Int("courses", len(seed.Courses)).
		Int("lessons", len(seed.Lessons)).
		Int("users", len(seed.Users)).
		Msg("store seeded")
	return nil
}

func fixtureName(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}
