package users

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListVeterinarians devuelve todos los usuarios con rol Veterinarian, sin paginar.
func (s *Service) ListVeterinarians(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, RoleVeterinarian)
}
