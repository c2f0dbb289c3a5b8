package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Login resolves the account by username and verifies the password. Every
// verification failure looks the same to the caller; only a disabled
// account is reported distinctly, and only after the user was found.
func (s *Service) Login(ctx context.Context, username, password string) (domain.PublicUser, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.PublicUser{}, domain.ErrInvalidCredentials
	}

	u, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.PublicUser{}, domain.ErrInvalidCredentials
		}
		return domain.PublicUser{}, err
	}
	if !u.IsActive {
		return domain.PublicUser{}, domain.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.PublicUser{}, domain.ErrInvalidCredentials
	}

	s.recordActivity(ctx, &u.ID, "login", "user", &u.ID, "")
	return u.Public(), nil
}

// Logout holds no session state; it only leaves an audit trace when the
// caller says who is leaving.
func (s *Service) Logout(ctx context.Context, userID *uint) error {
	if userID != nil {
		s.recordActivity(ctx, userID, "logout", "user", userID, "")
	}
	return nil
}

// GetCurrentUser returns nil without error when no user id is set or the
// referenced account no longer exists.
func (s *Service) GetCurrentUser(ctx context.Context, userID *uint) (*domain.PublicUser, error) {
	if userID == nil {
		return nil, nil
	}
	u, err := s.repos.Users.Get(ctx, *userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password is required")
	}

	u, err := s.repos.Users.Get(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repos.Users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	s.recordActivity(ctx, &u.ID, "change_password", "user", &u.ID, "")
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.ErrHashFailure
	}
	return string(hash), nil
}
