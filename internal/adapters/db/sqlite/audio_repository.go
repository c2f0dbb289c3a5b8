package sqlite

import (
	"context"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type AudioFileRepository struct {
	db *gorm.DB
}

func NewAudioFileRepository(db *gorm.DB) *AudioFileRepository {
	return &AudioFileRepository{db: db}
}

func audioFileFromModel(m AudioFileModel) domain.AudioFile {
	return domain.AudioFile{
		ID:        m.ID,
		CaseID:    m.CaseID,
		FileName:  m.FileName,
		FilePath:  m.FilePath,
		Duration:  m.Duration,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func (r *AudioFileRepository) ListByCase(ctx context.Context, caseID uint) ([]domain.AudioFile, error) {
	rows := make([]AudioFileModel, 0)
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.AudioFile, 0, len(rows))
	for _, m := range rows {
		result = append(result, audioFileFromModel(m))
	}
	return result, nil
}

func (r *AudioFileRepository) Get(ctx context.Context, id uint) (domain.AudioFile, error) {
	var m AudioFileModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.AudioFile{}, translateGetError(err, "audio file", id)
	}
	return audioFileFromModel(m), nil
}

func (r *AudioFileRepository) Create(ctx context.Context, value domain.NewAudioFile) (domain.AudioFile, error) {
	m := AudioFileModel{
		CaseID:   value.CaseID,
		FileName: value.FileName,
		FilePath: value.FilePath,
		Status:   "pending",
	}
	if value.Duration != nil {
		m.Duration = *value.Duration
	}
	if value.Status != nil && *value.Status != "" {
		m.Status = *value.Status
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.AudioFile{}, err
	}
	return audioFileFromModel(m), nil
}

func (r *AudioFileRepository) Update(ctx context.Context, id uint, value domain.UpdateAudioFile) (domain.AudioFile, error) {
	updates := map[string]any{}
	if value.FileName != nil {
		updates["file_name"] = *value.FileName
	}
	if value.Duration != nil {
		updates["duration"] = *value.Duration
	}
	if value.Status != nil {
		updates["status"] = *value.Status
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&AudioFileModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return domain.AudioFile{}, err
		}
	}
	return r.Get(ctx, id)
}

func (r *AudioFileRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &AudioFileModel{}, "audio file", id)
}
