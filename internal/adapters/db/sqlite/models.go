package sqlite

import "time"

// Table shapes mirror the migration set in migrations/. Referential rules
// (cascades, SET NULL) live in the SQL schema; the tags here document them
// for readers of this package.

type CaseModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CaseModel) TableName() string { return "cases" }

type AudioFileModel struct {
	ID        uint   `gorm:"primaryKey"`
	CaseID    uint   `gorm:"not null;index"`
	FileName  string `gorm:"not null"`
	FilePath  string `gorm:"not null"`
	Duration  float64
	Status    string `gorm:"not null;default:'pending'"`
	CreatedAt time.Time
}

func (AudioFileModel) TableName() string { return "audio_files" }

type SpeakerModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	Alias       *string
	Gender      *string
	AgeEstimate *string
	Notes       *string
	CreatedAt   time.Time
}

func (SpeakerModel) TableName() string { return "speakers" }

type VoiceSampleModel struct {
	ID        uint   `gorm:"primaryKey"`
	SpeakerID uint   `gorm:"not null;index"`
	FileName  string `gorm:"not null"`
	FilePath  string `gorm:"not null"`
	Duration  float64
	CreatedAt time.Time
}

func (VoiceSampleModel) TableName() string { return "voice_samples" }

type TranscriptSegmentModel struct {
	ID          uint `gorm:"primaryKey"`
	AudioFileID uint `gorm:"not null;index"`
	SpeakerID   *uint
	StartTime   float64 `gorm:"not null"`
	EndTime     float64 `gorm:"not null"`
	Text        string  `gorm:"not null"`
	IsDeleted   bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (TranscriptSegmentModel) TableName() string { return "transcript_segments" }

type AlertWordModel struct {
	ID          uint   `gorm:"primaryKey"`
	Keyword     string `gorm:"not null"`
	Category    string `gorm:"not null;index"`
	Description *string
	CreatedAt   time.Time
}

func (AlertWordModel) TableName() string { return "alert_words" }

type ReplacementWordModel struct {
	ID        uint   `gorm:"primaryKey"`
	Original  string `gorm:"not null"`
	Correct   string `gorm:"not null"`
	Category  string `gorm:"not null"`
	CreatedAt time.Time
}

func (ReplacementWordModel) TableName() string { return "replacement_words" }

type NotificationModel struct {
	ID               uint   `gorm:"primaryKey"`
	NotificationType string `gorm:"not null"`
	Action           string `gorm:"not null"`
	Title            string `gorm:"not null"`
	Message          *string
	EntityType       *string
	EntityID         *uint
	IsRead           bool `gorm:"not null;default:false;index"`
	IsImportant      bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

func (NotificationModel) TableName() string { return "notifications" }

type ActivityLogModel struct {
	ID         uint `gorm:"primaryKey"`
	UserID     *uint
	Action     string `gorm:"not null;index"`
	TargetType string `gorm:"not null"`
	TargetID   *uint
	Details    *string
	CreatedAt  time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Role         string `gorm:"not null"`
	Avatar       *string
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }
