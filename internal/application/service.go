package application

import (
	"context"
	"log"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

// Service validates inputs and coordinates the repositories. All storage
// access from the boundary goes through it.
type Service struct {
	repos domain.Repositories
}

func NewService(repos domain.Repositories) *Service {
	return &Service{repos: repos}
}

// recordActivity is best effort: a failed audit write never fails the
// operation it describes.
func (s *Service) recordActivity(ctx context.Context, userID *uint, action, targetType string, targetID *uint, details string) {
	var d *string
	if details != "" {
		d = &details
	}
	_, err := s.repos.ActivityLogs.Create(ctx, domain.NewActivityLog{
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    d,
	})
	if err != nil {
		log.Printf("activity log write failed: %v", err)
	}
}
