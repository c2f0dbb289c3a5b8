package sqlite

import (
	"context"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type TranscriptSegmentRepository struct {
	db *gorm.DB
}

func NewTranscriptSegmentRepository(db *gorm.DB) *TranscriptSegmentRepository {
	return &TranscriptSegmentRepository{db: db}
}

func segmentFromModel(m TranscriptSegmentModel) domain.TranscriptSegment {
	return domain.TranscriptSegment{
		ID:          m.ID,
		AudioFileID: m.AudioFileID,
		SpeakerID:   m.SpeakerID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Text:        m.Text,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *TranscriptSegmentRepository) ListByAudioFile(ctx context.Context, audioFileID uint) ([]domain.TranscriptSegment, error) {
	rows := make([]TranscriptSegmentModel, 0)
	err := r.db.WithContext(ctx).
		Where("audio_file_id = ?", audioFileID).
		Order("start_time ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.TranscriptSegment, 0, len(rows))
	for _, m := range rows {
		result = append(result, segmentFromModel(m))
	}
	return result, nil
}

func (r *TranscriptSegmentRepository) Create(ctx context.Context, value domain.NewTranscriptSegment) (domain.TranscriptSegment, error) {
	m := TranscriptSegmentModel{
		AudioFileID: value.AudioFileID,
		SpeakerID:   value.SpeakerID,
		StartTime:   value.StartTime,
		EndTime:     value.EndTime,
		Text:        value.Text,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.TranscriptSegment{}, err
	}
	return segmentFromModel(m), nil
}

// BulkCreate writes one transcription result as a single transaction so a
// failed import never leaves a partial transcript behind.
func (r *TranscriptSegmentRepository) BulkCreate(ctx context.Context, audioFileID uint, values []domain.NewTranscriptSegment) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}
	rows := make([]TranscriptSegmentModel, 0, len(values))
	for _, value := range values {
		rows = append(rows, TranscriptSegmentModel{
			AudioFileID: audioFileID,
			SpeakerID:   value.SpeakerID,
			StartTime:   value.StartTime,
			EndTime:     value.EndTime,
			Text:        value.Text,
		})
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *TranscriptSegmentRepository) Update(ctx context.Context, id uint, value domain.UpdateTranscriptSegment) (domain.TranscriptSegment, error) {
	updates := map[string]any{}
	if value.SpeakerID != nil {
		updates["speaker_id"] = *value.SpeakerID
	}
	if value.Text != nil {
		updates["text"] = *value.Text
	}
	if value.IsDeleted != nil {
		updates["is_deleted"] = *value.IsDeleted
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&TranscriptSegmentModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return domain.TranscriptSegment{}, err
		}
	}
	var m TranscriptSegmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.TranscriptSegment{}, translateGetError(err, "transcript segment", id)
	}
	return segmentFromModel(m), nil
}

func (r *TranscriptSegmentRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &TranscriptSegmentModel{}, "transcript segment", id)
}
