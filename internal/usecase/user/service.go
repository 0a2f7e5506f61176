package user

import (
	"context"

	domain "career-path/internal/domain/user"

	"github.com/google/uuid"
)

type Profile struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Skills []string
}

type Service struct {
	users domain.Repository
}

func NewService(users domain.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Me(ctx context.Context, id uuid.UUID) (Profile, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Skills: u.Skills}, nil
}
