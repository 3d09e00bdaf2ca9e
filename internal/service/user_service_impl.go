package service

import (
	"context"
	"slices"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) Current(ctx context.Context) (*domain.User, error) {
	return s.users.Current(ctx)
}

// UpdateSkillCategories replaces the user's interests. Names are matched
// case-insensitively against the known categories and duplicates dropped.
func (s *userService) UpdateSkillCategories(ctx context.Context, id int, categories []string) (*domain.User, error) {
	normalised := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if !slices.Contains(domain.Categories, c) {
			return nil, domain.NewValidationError("categories", "unknown category %q (want one of %s)",
				c, strings.Join(domain.Categories, ", "))
		}
		if !slices.Contains(normalised, c) {
			normalised = append(normalised, c)
		}
	}
	if err := s.users.UpdateSkillCategories(ctx, id, normalised); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *userService) Certificates(ctx context.Context, id int) ([]domain.Certificate, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Certificates, nil
}
