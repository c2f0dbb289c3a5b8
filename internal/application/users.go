package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

// NewUserInput carries the plain password across the boundary; the hash is
// produced here before anything touches storage.
type NewUserInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
	Username string  `json:"username"`
	Password string  `json:"password"`
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result, nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (domain.PublicUser, error) {
	if id == 0 {
		return domain.PublicUser{}, errors.New("user id is required")
	}
	u, err := s.repos.Users.Get(ctx, id)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

func (s *Service) CreateUser(ctx context.Context, value NewUserInput) (domain.PublicUser, error) {
	if strings.TrimSpace(value.Username) == "" || value.Password == "" || strings.TrimSpace(value.Name) == "" {
		return domain.PublicUser{}, errors.New("name, username and password are required")
	}

	hash, err := HashPassword(value.Password)
	if err != nil {
		return domain.PublicUser{}, err
	}

	u, err := s.repos.Users.Create(ctx, domain.NewUser{
		Name:         value.Name,
		Email:        value.Email,
		Role:         value.Role,
		Avatar:       value.Avatar,
		Username:     value.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, value domain.UpdateUser) (domain.PublicUser, error) {
	if id == 0 {
		return domain.PublicUser{}, errors.New("user id is required")
	}
	u, err := s.repos.Users.Update(ctx, id, value)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

func (s *Service) SetUserActive(ctx context.Context, id uint, active bool) error {
	if id == 0 {
		return errors.New("user id is required")
	}
	return s.repos.Users.SetActive(ctx, id, active)
}

func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("user id is required")
	}
	return s.repos.Users.Delete(ctx, id)
}
