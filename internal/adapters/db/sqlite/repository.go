package sqlite

import (
	"context"
	"errors"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

// NewRepositories wires every table repository over the shared handle.
func NewRepositories(db *gorm.DB) domain.Repositories {
	return domain.Repositories{
		Cases:            NewCaseRepository(db),
		AudioFiles:       NewAudioFileRepository(db),
		Speakers:         NewSpeakerRepository(db),
		VoiceSamples:     NewVoiceSampleRepository(db),
		Transcripts:      NewTranscriptSegmentRepository(db),
		AlertWords:       NewAlertWordRepository(db),
		ReplacementWords: NewReplacementWordRepository(db),
		Notifications:    NewNotificationRepository(db),
		ActivityLogs:     NewActivityLogRepository(db),
		Users:            NewUserRepository(db),
	}
}

func translateGetError(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// deleteByID removes one row and reports NotFoundError when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model any, entity string, id uint) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}
