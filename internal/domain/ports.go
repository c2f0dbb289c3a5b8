package domain

import (
	"context"
	"time"
)

// Each repository exclusively owns reads and writes of its table.

type CaseRepository interface {
	List(ctx context.Context) ([]Case, error)
	Get(ctx context.Context, id uint) (Case, error)
	Create(ctx context.Context, value NewCase) (Case, error)
	Update(ctx context.Context, id uint, value UpdateCase) (Case, error)
	Delete(ctx context.Context, id uint) error
}

type AudioFileRepository interface {
	ListByCase(ctx context.Context, caseID uint) ([]AudioFile, error)
	Get(ctx context.Context, id uint) (AudioFile, error)
	Create(ctx context.Context, value NewAudioFile) (AudioFile, error)
	Update(ctx context.Context, id uint, value UpdateAudioFile) (AudioFile, error)
	Delete(ctx context.Context, id uint) error
}

type SpeakerRepository interface {
	List(ctx context.Context) ([]Speaker, error)
	Get(ctx context.Context, id uint) (Speaker, error)
	Create(ctx context.Context, value NewSpeaker) (Speaker, error)
	Update(ctx context.Context, id uint, value UpdateSpeaker) (Speaker, error)
	Delete(ctx context.Context, id uint) error
}

type VoiceSampleRepository interface {
	ListBySpeaker(ctx context.Context, speakerID uint) ([]VoiceSample, error)
	Create(ctx context.Context, value NewVoiceSample) (VoiceSample, error)
	Delete(ctx context.Context, id uint) error
}

type TranscriptSegmentRepository interface {
	ListByAudioFile(ctx context.Context, audioFileID uint) ([]TranscriptSegment, error)
	Create(ctx context.Context, value NewTranscriptSegment) (TranscriptSegment, error)
	// BulkCreate inserts all segments for one audio file in a single
	// transaction and returns the number inserted.
	BulkCreate(ctx context.Context, audioFileID uint, values []NewTranscriptSegment) (int, error)
	Update(ctx context.Context, id uint, value UpdateTranscriptSegment) (TranscriptSegment, error)
	Delete(ctx context.Context, id uint) error
}

type AlertWordRepository interface {
	// List returns alert words ordered by keyword; a non-empty category
	// restricts the result to that category.
	List(ctx context.Context, category string) ([]AlertWord, error)
	Create(ctx context.Context, value NewAlertWord) (AlertWord, error)
	Delete(ctx context.Context, id uint) error
}

type ReplacementWordRepository interface {
	List(ctx context.Context) ([]ReplacementWord, error)
	Create(ctx context.Context, value NewReplacementWord) (ReplacementWord, error)
	Delete(ctx context.Context, id uint) error
}

type NotificationRepository interface {
	List(ctx context.Context) ([]Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	Create(ctx context.Context, value NewNotification) (Notification, error)
	Update(ctx context.Context, id uint, value UpdateNotification) (Notification, error)
	// MarkAllRead flips every unread notification in one statement and
	// returns the number of rows it changed.
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type ActivityLogRepository interface {
	List(ctx context.Context) ([]ActivityLog, error)
	ListByAction(ctx context.Context, action string) ([]ActivityLog, error)
	Create(ctx context.Context, value NewActivityLog) (ActivityLog, error)
	// CleanupOlderThan deletes entries created before now minus the given
	// number of days and returns the number deleted.
	CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id uint) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, value NewUser) (User, error)
	Update(ctx context.Context, id uint, value UpdateUser) (User, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

// Repositories bundles the ports handed to the application service.
type Repositories struct {
	Cases            CaseRepository
	AudioFiles       AudioFileRepository
	Speakers         SpeakerRepository
	VoiceSamples     VoiceSampleRepository
	Transcripts      TranscriptSegmentRepository
	AlertWords       AlertWordRepository
	ReplacementWords ReplacementWordRepository
	Notifications    NotificationRepository
	ActivityLogs     ActivityLogRepository
	Users            UserRepository
}
