package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.repos.Notifications.List(ctx)
}

func (s *Service) UnreadNotificationCount(ctx context.Context) (int64, error) {
	return s.repos.Notifications.UnreadCount(ctx)
}

func (s *Service) CreateNotification(ctx context.Context, value domain.NewNotification) (domain.Notification, error) {
	if strings.TrimSpace(value.NotificationType) == "" ||
		strings.TrimSpace(value.Action) == "" ||
		strings.TrimSpace(value.Title) == "" {
		return domain.Notification{}, errors.New("notification_type, action and title are required")
	}
	return s.repos.Notifications.Create(ctx, value)
}

func (s *Service) UpdateNotification(ctx context.Context, id uint, value domain.UpdateNotification) (domain.Notification, error) {
	if id == 0 {
		return domain.Notification{}, errors.New("notification id is required")
	}
	return s.repos.Notifications.Update(ctx, id, value)
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	return s.repos.Notifications.MarkAllRead(ctx)
}

func (s *Service) DeleteNotification(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("notification id is required")
	}
	return s.repos.Notifications.Delete(ctx, id)
}
