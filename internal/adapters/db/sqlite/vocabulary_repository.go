package sqlite

import (
	"context"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type AlertWordRepository struct {
	db *gorm.DB
}

func NewAlertWordRepository(db *gorm.DB) *AlertWordRepository {
	return &AlertWordRepository{db: db}
}

func alertWordFromModel(m AlertWordModel) domain.AlertWord {
	return domain.AlertWord{
		ID:          m.ID,
		Keyword:     m.Keyword,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *AlertWordRepository) List(ctx context.Context, category string) ([]domain.AlertWord, error) {
	q := r.db.WithContext(ctx).Model(&AlertWordModel{})
	if strings.TrimSpace(category) != "" {
		q = q.Where("category = ?", strings.TrimSpace(category))
	}
	rows := make([]AlertWordModel, 0)
	if err := q.Order("keyword ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.AlertWord, 0, len(rows))
	for _, m := range rows {
		result = append(result, alertWordFromModel(m))
	}
	return result, nil
}

func (r *AlertWordRepository) Create(ctx context.Context, value domain.NewAlertWord) (domain.AlertWord, error) {
	m := AlertWordModel{Keyword: value.Keyword, Category: value.Category, Description: value.Description}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.AlertWord{}, err
	}
	return alertWordFromModel(m), nil
}

func (r *AlertWordRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &AlertWordModel{}, "alert word", id)
}

type ReplacementWordRepository struct {
	db *gorm.DB
}

func NewReplacementWordRepository(db *gorm.DB) *ReplacementWordRepository {
	return &ReplacementWordRepository{db: db}
}

func replacementWordFromModel(m ReplacementWordModel) domain.ReplacementWord {
	return domain.ReplacementWord{
		ID:        m.ID,
		Original:  m.Original,
		Correct:   m.Correct,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ReplacementWordRepository) List(ctx context.Context) ([]domain.ReplacementWord, error) {
	rows := make([]ReplacementWordModel, 0)
	if err := r.db.WithContext(ctx).Order("original ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.ReplacementWord, 0, len(rows))
	for _, m := range rows {
		result = append(result, replacementWordFromModel(m))
	}
	return result, nil
}

func (r *ReplacementWordRepository) Create(ctx context.Context, value domain.NewReplacementWord) (domain.ReplacementWord, error) {
	m := ReplacementWordModel{Original: value.Original, Correct: value.Correct, Category: value.Category}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.ReplacementWord{}, err
	}
	return replacementWordFromModel(m), nil
}

func (r *ReplacementWordRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &ReplacementWordModel{}, "replacement word", id)
}
