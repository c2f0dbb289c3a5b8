package domain

import "time"

type Case struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewCase struct {
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateCase carries a partial update; nil fields keep their stored value.
type UpdateCase struct {
	Code        *string `json:"code"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type AudioFile struct {
	ID        uint      `json:"id"`
	CaseID    uint      `json:"case_id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	Duration  float64   `json:"duration"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type NewAudioFile struct {
	CaseID   uint     `json:"case_id"`
	FileName string   `json:"file_name"`
	FilePath string   `json:"file_path"`
	Duration *float64 `json:"duration"`
	Status   *string  `json:"status"`
}

type UpdateAudioFile struct {
	FileName *string  `json:"file_name"`
	Duration *float64 `json:"duration"`
	Status   *string  `json:"status"`
}

type Speaker struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Alias       *string   `json:"alias"`
	Gender      *string   `json:"gender"`
	AgeEstimate *string   `json:"age_estimate"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewSpeaker struct {
	Name        string  `json:"name"`
	Alias       *string `json:"alias"`
	Gender      *string `json:"gender"`
	AgeEstimate *string `json:"age_estimate"`
	Notes       *string `json:"notes"`
}

type UpdateSpeaker struct {
	Name        *string `json:"name"`
	Alias       *string `json:"alias"`
	Gender      *string `json:"gender"`
	AgeEstimate *string `json:"age_estimate"`
	Notes       *string `json:"notes"`
}

type VoiceSample struct {
	ID        uint      `json:"id"`
	SpeakerID uint      `json:"speaker_id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	Duration  float64   `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

type NewVoiceSample struct {
	SpeakerID uint    `json:"speaker_id"`
	FileName  string  `json:"file_name"`
	FilePath  string  `json:"file_path"`
	Duration  float64 `json:"duration"`
}

type TranscriptSegment struct {
	ID          uint      `json:"id"`
	AudioFileID uint      `json:"audio_file_id"`
	SpeakerID   *uint     `json:"speaker_id"`
	StartTime   float64   `json:"start_time"`
	EndTime     float64   `json:"end_time"`
	Text        string    `json:"text"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewTranscriptSegment struct {
	AudioFileID uint    `json:"audio_file_id"`
	SpeakerID   *uint   `json:"speaker_id"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
	Text        string  `json:"text"`
}

// UpdateTranscriptSegment covers reassigning a speaker, correcting text and
// toggling the soft-delete flag. Hard removal goes through Delete.
type UpdateTranscriptSegment struct {
	SpeakerID *uint   `json:"speaker_id"`
	Text      *string `json:"text"`
	IsDeleted *bool   `json:"is_deleted"`
}

type AlertWord struct {
	ID          uint      `json:"id"`
	Keyword     string    `json:"keyword"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewAlertWord struct {
	Keyword     string  `json:"keyword"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

type ReplacementWord struct {
	ID        uint      `json:"id"`
	Original  string    `json:"original"`
	Correct   string    `json:"correct"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type NewReplacementWord struct {
	Original string `json:"original"`
	Correct  string `json:"correct"`
	Category string `json:"category"`
}

type Notification struct {
	ID               uint      `json:"id"`
	NotificationType string    `json:"notification_type"`
	Action           string    `json:"action"`
	Title            string    `json:"title"`
	Message          *string   `json:"message"`
	EntityType       *string   `json:"entity_type"`
	EntityID         *uint     `json:"entity_id"`
	IsRead           bool      `json:"is_read"`
	IsImportant      bool      `json:"is_important"`
	CreatedAt        time.Time `json:"created_at"`
}

type NewNotification struct {
	NotificationType string  `json:"notification_type"`
	Action           string  `json:"action"`
	Title            string  `json:"title"`
	Message          *string `json:"message"`
	EntityType       *string `json:"entity_type"`
	EntityID         *uint   `json:"entity_id"`
}

type UpdateNotification struct {
	IsRead      *bool `json:"is_read"`
	IsImportant *bool `json:"is_important"`
}

type ActivityLog struct {
	ID         uint      `json:"id"`
	UserID     *uint     `json:"user_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   *uint     `json:"target_id"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewActivityLog struct {
	UserID     *uint   `json:"user_id"`
	Action     string  `json:"action"`
	TargetType string  `json:"target_type"`
	TargetID   *uint   `json:"target_id"`
	Details    *string `json:"details"`
}

// User is the stored account record. The password hash never crosses the
// boundary: it is excluded from JSON and callers above the repositories see
// PublicUser instead.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Avatar       *string   `json:"avatar"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type NewUser struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Avatar       *string `json:"avatar"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
}

type UpdateUser struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Avatar *string `json:"avatar"`
}

// PublicUser is the caller-facing view of an account.
type PublicUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
