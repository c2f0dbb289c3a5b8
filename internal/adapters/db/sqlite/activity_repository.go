package sqlite

import (
	"context"
	"time"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

const (
	activityListLimit     = 100
	activityByActionLimit = 50
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func activityLogFromModel(m ActivityLogModel) domain.ActivityLog {
	return domain.ActivityLog{
		ID:         m.ID,
		UserID:     m.UserID,
		Action:     m.Action,
		TargetType: m.TargetType,
		TargetID:   m.TargetID,
		Details:    m.Details,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *ActivityLogRepository) List(ctx context.Context) ([]domain.ActivityLog, error) {
	rows := make([]ActivityLogModel, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(activityListLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.ActivityLog, 0, len(rows))
	for _, m := range rows {
		result = append(result, activityLogFromModel(m))
	}
	return result, nil
}

func (r *ActivityLogRepository) ListByAction(ctx context.Context, action string) ([]domain.ActivityLog, error) {
	rows := make([]ActivityLogModel, 0)
	err := r.db.WithContext(ctx).
		Where("action = ?", action).
		Order("created_at DESC, id DESC").
		Limit(activityByActionLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.ActivityLog, 0, len(rows))
	for _, m := range rows {
		result = append(result, activityLogFromModel(m))
	}
	return result, nil
}

func (r *ActivityLogRepository) Create(ctx context.Context, value domain.NewActivityLog) (domain.ActivityLog, error) {
	m := ActivityLogModel{
		UserID:     value.UserID,
		Action:     value.Action,
		TargetType: value.TargetType,
		TargetID:   value.TargetID,
		Details:    value.Details,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.ActivityLog{}, err
	}
	return activityLogFromModel(m), nil
}

func (r *ActivityLogRepository) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&ActivityLogModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
