package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

// Persist writes every object of the seed in a single transaction. Nothing
// is stored when any insert fails.
func (s *Seed) Persist(ctx context.Context, uow db.UnitOfWork) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		courses := repository.NewSQLiteCourseRepo(tx)
		lessons := repository.NewSQLiteLessonRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)
		users := repository.NewSQLiteUserRepo(tx)
		progress := repository.NewSQLiteProgressRepo(tx)

		for _, c := range s.Courses {
			if err := courses.Create(ctx, c); err != nil {
				return err
			}
		}
		for _, l := range s.Lessons {
			if err := lessons.Create(ctx, l); err != nil {
				return err
			}
		}
		for _, a := range s.Assignments {
			if err := assignments.Create(ctx, a); err != nil {
				return err
			}
		}
		for _, u := range s.Users {
			if err := users.Create(ctx, u); err != nil {
				return err
			}
			if err := progress.Create(ctx, u.ID, u.JoinedAt); err != nil {
				return err
			}
		}
		for i := range s.Progress {
			up := &s.Progress[i]
			if err := progress.Save(ctx, up); err != nil {
				return err
			}
			for _, day := range up.ActivityDates {
				if err := progress.RecordActivity(ctx, up.UserID, day); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Prepare reads, validates and converts the catalog at path (the embedded
// default when path is empty).
func Prepare(path string) (*Seed, error) {
	catalog, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateCatalog(catalog); len(errs) > 0 {
		return nil, fmt.Errorf("invalid fixture catalog: %w", errors.Join(errs...))
	}
	return Convert(catalog)
}

// Load prepares the catalog at path and persists it through uow.
func Load(ctx context.Context, uow db.UnitOfWork, path string) (*Seed, error) {
	seed, err := Prepare(path)
	if err != nil {
		return nil, err
	}
	if err := seed.Persist(ctx, uow); err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}
	return seed, nil
}

// ShiftActivity moves every activity date so that the most recent one falls
// on today's date. The bundled catalog uses it to keep its demo streak
// current whenever the program starts.
func (s *Seed) ShiftActivity(now time.Time) {
	for i := range s.Progress {
		dates := s.Progress[i].ActivityDates
		if len(dates) == 0 {
			continue
		}
		latest := dates[0]
		for _, d := range dates[1:] {
			if d.After(latest) {
				latest = d
			}
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, latest.Location())
		days := int(today.Sub(latest).Hours()/24 + 0.5)
		for j, d := range dates {
			dates[j] = d.AddDate(0, 0, days)
		}
	}
}
