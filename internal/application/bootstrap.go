package application

import (
	"context"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin"
	seedAdminName     = "Administrator"
	seedAdminEmail    = "admin@spexor.local"
	seedAdminRole     = "admin"
)

// SeedAdmin creates the initial administrator account once. Subsequent
// startups find the account and do nothing.
func (s *Service) SeedAdmin(ctx context.Context) error {
	_, err := s.repos.Users.GetByUsername(ctx, seedAdminUsername)
	if err == nil {
		return nil
	}
	if !domain.IsNotFound(err) {
		return err
	}

	hash, err := HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	u, err := s.repos.Users.Create(ctx, domain.NewUser{
		Name:         seedAdminName,
		Email:        seedAdminEmail,
		Role:         seedAdminRole,
		Username:     seedAdminUsername,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	s.recordActivity(ctx, &u.ID, "seed_admin", "user", &u.ID, "initial administrator created")
	return nil
}
