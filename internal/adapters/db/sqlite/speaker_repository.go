package sqlite

import (
	"context"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type SpeakerRepository struct {
	db *gorm.DB
}

func NewSpeakerRepository(db *gorm.DB) *SpeakerRepository {
	return &SpeakerRepository{db: db}
}

func speakerFromModel(m SpeakerModel) domain.Speaker {
	return domain.Speaker{
		ID:          m.ID,
		Name:        m.Name,
		Alias:       m.Alias,
		Gender:      m.Gender,
		AgeEstimate: m.AgeEstimate,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *SpeakerRepository) List(ctx context.Context) ([]domain.Speaker, error) {
	rows := make([]SpeakerModel, 0)
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Speaker, 0, len(rows))
	for _, m := range rows {
		result = append(result, speakerFromModel(m))
	}
	return result, nil
}

func (r *SpeakerRepository) Get(ctx context.Context, id uint) (domain.Speaker, error) {
	var m SpeakerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Speaker{}, translateGetError(err, "speaker", id)
	}
	return speakerFromModel(m), nil
}

func (r *SpeakerRepository) Create(ctx context.Context, value domain.NewSpeaker) (domain.Speaker, error) {
	m := SpeakerModel{
		Name:        value.Name,
		Alias:       value.Alias,
		Gender:      value.Gender,
		AgeEstimate: value.AgeEstimate,
		Notes:       value.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Speaker{}, err
	}
	return speakerFromModel(m), nil
}

func (r *SpeakerRepository) Update(ctx context.Context, id uint, value domain.UpdateSpeaker) (domain.Speaker, error) {
	updates := map[string]any{}
	if value.Name != nil {
		updates["name"] = *value.Name
	}
	if value.Alias != nil {
		updates["alias"] = *value.Alias
	}
	if value.Gender != nil {
		updates["gender"] = *value.Gender
	}
	if value.AgeEstimate != nil {
		updates["age_estimate"] = *value.AgeEstimate
	}
	if value.Notes != nil {
		updates["notes"] = *value.Notes
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&SpeakerModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return domain.Speaker{}, err
		}
	}
	return r.Get(ctx, id)
}

func (r *SpeakerRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &SpeakerModel{}, "speaker", id)
}

type VoiceSampleRepository struct {
	db *gorm.DB
}

func NewVoiceSampleRepository(db *gorm.DB) *VoiceSampleRepository {
	return &VoiceSampleRepository{db: db}
}

func voiceSampleFromModel(m VoiceSampleModel) domain.VoiceSample {
	return domain.VoiceSample{
		ID:        m.ID,
		SpeakerID: m.SpeakerID,
		FileName:  m.FileName,
		FilePath:  m.FilePath,
		Duration:  m.Duration,
		CreatedAt: m.CreatedAt,
	}
}

func (r *VoiceSampleRepository) ListBySpeaker(ctx context.Context, speakerID uint) ([]domain.VoiceSample, error) {
	rows := make([]VoiceSampleModel, 0)
	err := r.db.WithContext(ctx).
		Where("speaker_id = ?", speakerID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.VoiceSample, 0, len(rows))
	for _, m := range rows {
		result = append(result, voiceSampleFromModel(m))
	}
	return result, nil
}

func (r *VoiceSampleRepository) Create(ctx context.Context, value domain.NewVoiceSample) (domain.VoiceSample, error) {
	m := VoiceSampleModel{
		SpeakerID: value.SpeakerID,
		FileName:  value.FileName,
		FilePath:  value.FilePath,
		Duration:  value.Duration,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.VoiceSample{}, err
	}
	return voiceSampleFromModel(m), nil
}

func (r *VoiceSampleRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &VoiceSampleModel{}, "voice sample", id)
}
