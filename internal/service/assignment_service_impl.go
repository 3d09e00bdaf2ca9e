package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
	validate    *validator.Validate
	now         func() time.Time
	observer    UseCaseObserver
}

func NewAssignmentService(assignments repository.AssignmentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		uow:         uow,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         time.Now,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *assignmentService) GetByID(ctx context.Context, id int) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) ListByLesson(ctx context.Context, lessonID int) ([]*domain.Assignment, error) {
	return s.assignments.ListByLesson(ctx, lessonID)
}

// Submit appends a submission to the assignment and returns the updated
// assignment. Blank content is rejected with a *domain.ValidationError.
func (s *assignmentService) Submit(ctx context.Context, assignmentID int, in SubmissionInput) (updated *domain.Assignment, err error) {
	fields := map[string]any{"assignment_id": assignmentID, "files": len(in.Files)}
	done := observe(ctx, s.observer, "submit-assignment", fields)
	defer func() { done(err) }()

	in.Content = strings.TrimSpace(in.Content)
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteAssignmentRepo(tx)
		if _, err := repo.GetByID(ctx, assignmentID); err != nil {
			return err
		}
		id, err := repo.NextSubmissionID(ctx)
		if err != nil {
			return err
		}
		sub := &domain.Submission{
			ID:          id,
			SubmittedAt: s.now().UTC().Truncate(time.Second),
			Content:     in.Content,
			Files:       in.Files,
			Status:      domain.SubmissionSubmitted,
		}
		if err := repo.AppendSubmission(ctx, assignmentID, sub); err != nil {
			return err
		}
		fields["submission_id"] = id
		updated, err = repo.GetByID(ctx, assignmentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// checkInput maps the first failing rule to a ValidationError.
func (s *assignmentService) checkInput(in SubmissionInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating submission: %w", err)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.StructField())
	switch {
	case fe.StructField() == "Content" && fe.Tag() == "required":
		return domain.NewValidationError("content", "submission content must not be blank")
	case fe.StructField() == "Files" && fe.Tag() == "max":
		return domain.NewValidationError("files", "at most %s files may be attached", fe.Param())
	case strings.HasPrefix(fe.StructField(), "Files[") && fe.Tag() == "required":
		return domain.NewValidationError("files", "file names must not be blank")
	case fe.Tag() == "max":
		return domain.NewValidationError(field, "must be at most %s characters", fe.Param())
	}
	return domain.NewValidationError(field, "failed %q", fe.Tag())
}
