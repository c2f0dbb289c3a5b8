package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	return s.repos.ActivityLogs.List(ctx)
}

func (s *Service) ListActivityByAction(ctx context.Context, action string) ([]domain.ActivityLog, error) {
	if strings.TrimSpace(action) == "" {
		return nil, errors.New("action is required")
	}
	return s.repos.ActivityLogs.ListByAction(ctx, action)
}

func (s *Service) CreateActivity(ctx context.Context, value domain.NewActivityLog) (domain.ActivityLog, error) {
	if strings.TrimSpace(value.Action) == "" || strings.TrimSpace(value.TargetType) == "" {
		return domain.ActivityLog{}, errors.New("action and target_type are required")
	}
	return s.repos.ActivityLogs.Create(ctx, value)
}

// CleanupActivity deletes entries older than the given number of days and
// returns how many were removed.
func (s *Service) CleanupActivity(ctx context.Context, days int) (int64, error) {
	if days < 0 {
		return 0, errors.New("days must not be negative")
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.repos.ActivityLogs.CleanupOlderThan(ctx, cutoff)
}
