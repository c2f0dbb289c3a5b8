package sqlite

import (
	"context"
	"time"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func caseFromModel(m CaseModel) domain.Case {
	return domain.Case{
		ID:          m.ID,
		Code:        m.Code,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *CaseRepository) List(ctx context.Context) ([]domain.Case, error) {
	rows := make([]CaseModel, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Case, 0, len(rows))
	for _, m := range rows {
		result = append(result, caseFromModel(m))
	}
	return result, nil
}

func (r *CaseRepository) Get(ctx context.Context, id uint) (domain.Case, error) {
	var m CaseModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Case{}, translateGetError(err, "case", id)
	}
	return caseFromModel(m), nil
}

func (r *CaseRepository) Create(ctx context.Context, value domain.NewCase) (domain.Case, error) {
	m := CaseModel{Code: value.Code, Title: value.Title, Description: value.Description}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Case{}, err
	}
	return caseFromModel(m), nil
}

func (r *CaseRepository) Update(ctx context.Context, id uint, value domain.UpdateCase) (domain.Case, error) {
	updates := map[string]any{}
	if value.Code != nil {
		updates["code"] = *value.Code
	}
	if value.Title != nil {
		updates["title"] = *value.Title
	}
	if value.Description != nil {
		updates["description"] = *value.Description
	}
	// updated_at is touched even when no field changes, so every update
	// call leaves a visible mutation timestamp.
	updates["updated_at"] = time.Now()
	if err := r.db.WithContext(ctx).Model(&CaseModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return domain.Case{}, err
	}
	return r.Get(ctx, id)
}

func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &CaseModel{}, "case", id)
}
