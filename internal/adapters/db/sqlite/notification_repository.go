package sqlite

import (
	"context"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func notificationFromModel(m NotificationModel) domain.Notification {
	return domain.Notification{
		ID:               m.ID,
		NotificationType: m.NotificationType,
		Action:           m.Action,
		Title:            m.Title,
		Message:          m.Message,
		EntityType:       m.EntityType,
		EntityID:         m.EntityID,
		IsRead:           m.IsRead,
		IsImportant:      m.IsImportant,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	rows := make([]NotificationModel, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		result = append(result, notificationFromModel(m))
	}
	return result, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&NotificationModel{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (r *NotificationRepository) Create(ctx context.Context, value domain.NewNotification) (domain.Notification, error) {
	m := NotificationModel{
		NotificationType: value.NotificationType,
		Action:           value.Action,
		Title:            value.Title,
		Message:          value.Message,
		EntityType:       value.EntityType,
		EntityID:         value.EntityID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Notification{}, err
	}
	return notificationFromModel(m), nil
}

func (r *NotificationRepository) Update(ctx context.Context, id uint, value domain.UpdateNotification) (domain.Notification, error) {
	updates := map[string]any{}
	if value.IsRead != nil {
		updates["is_read"] = *value.IsRead
	}
	if value.IsImportant != nil {
		updates["is_important"] = *value.IsImportant
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&NotificationModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return domain.Notification{}, err
		}
	}
	var m NotificationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Notification{}, translateGetError(err, "notification", id)
	}
	return notificationFromModel(m), nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &NotificationModel{}, "notification", id)
}
