package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestCaseLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	first, err := repos.Cases.Create(ctx, domain.NewCase{Code: "C-001", Title: "Wiretap alpha"})
	if err != nil {
		t.Fatalf("create case: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	second, err := repos.Cases.Create(ctx, domain.NewCase{Code: "C-002", Title: "Wiretap beta", Description: strPtr("follow-up")})
	if err != nil {
		t.Fatalf("create second case: %v", err)
	}

	cases, err := repos.Cases.List(ctx)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].ID != second.ID {
		t.Fatalf("expected newest case first, got id %d", cases[0].ID)
	}

	time.Sleep(10 * time.Millisecond)
	touched, err := repos.Cases.Update(ctx, first.ID, domain.UpdateCase{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if !touched.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("empty update should refresh updated_at: %v vs %v", touched.UpdatedAt, first.UpdatedAt)
	}

	updated, err := repos.Cases.Update(ctx, first.ID, domain.UpdateCase{Title: strPtr("Wiretap alpha (renamed)")})
	if err != nil {
		t.Fatalf("update case: %v", err)
	}
	if updated.Title != "Wiretap alpha (renamed)" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Code != "C-001" {
		t.Fatalf("code should be untouched, got %q", updated.Code)
	}
	if updated.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}

	if err := repos.Cases.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete case: %v", err)
	}
	if _, err := repos.Cases.Get(ctx, first.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repos.Cases.Delete(ctx, first.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDeletingCaseCascadesToAudioAndTranscript(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	c, err := repos.Cases.Create(ctx, domain.NewCase{Code: "C-010", Title: "Cascade"})
	if err != nil {
		t.Fatalf("create case: %v", err)
	}
	audio, err := repos.AudioFiles.Create(ctx, domain.NewAudioFile{CaseID: c.ID, FileName: "rec.wav", FilePath: "/tmp/rec.wav"})
	if err != nil {
		t.Fatalf("create audio: %v", err)
	}
	if audio.Status != "pending" {
		t.Fatalf("expected default status pending, got %q", audio.Status)
	}
	if _, err := repos.Transcripts.Create(ctx, domain.NewTranscriptSegment{AudioFileID: audio.ID, StartTime: 0, EndTime: 2.5, Text: "hello"}); err != nil {
		t.Fatalf("create segment: %v", err)
	}

	if err := repos.Cases.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete case: %v", err)
	}
	if _, err := repos.AudioFiles.Get(ctx, audio.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected audio to cascade, got %v", err)
	}
	segments, err := repos.Transcripts.ListByAudioFile(ctx, audio.ID)
	if err != nil {
		t.Fatalf("list segments: %v", err)
	}
	if len(segments) != 0 {
		t.Fatalf("expected transcript to cascade, got %d segments", len(segments))
	}
}

func TestDeletingSpeakerCascadesSamplesAndClearsSegments(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	c, _ := repos.Cases.Create(ctx, domain.NewCase{Code: "C-020", Title: "Speakers"})
	audio, _ := repos.AudioFiles.Create(ctx, domain.NewAudioFile{CaseID: c.ID, FileName: "a.wav", FilePath: "/tmp/a.wav"})
	speaker, err := repos.Speakers.Create(ctx, domain.NewSpeaker{Name: "Unknown male"})
	if err != nil {
		t.Fatalf("create speaker: %v", err)
	}
	if _, err := repos.VoiceSamples.Create(ctx, domain.NewVoiceSample{SpeakerID: speaker.ID, FileName: "s.wav", FilePath: "/tmp/s.wav", Duration: 3.2}); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	segment, err := repos.Transcripts.Create(ctx, domain.NewTranscriptSegment{AudioFileID: audio.ID, SpeakerID: &speaker.ID, StartTime: 1, EndTime: 2, Text: "tagged"})
	if err != nil {
		t.Fatalf("create segment: %v", err)
	}

	if err := repos.Speakers.Delete(ctx, speaker.ID); err != nil {
		t.Fatalf("delete speaker: %v", err)
	}
	samples, err := repos.VoiceSamples.ListBySpeaker(ctx, speaker.ID)
	if err != nil {
		t.Fatalf("list samples: %v", err)
	}
	if len(samples) != 0 {
		t.Fatalf("expected samples to cascade, got %d", len(samples))
	}
	segments, err := repos.Transcripts.ListByAudioFile(ctx, audio.ID)
	if err != nil {
		t.Fatalf("list segments: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("segment should survive speaker deletion")
	}
	if segments[0].ID == segment.ID && segments[0].SpeakerID != nil {
		t.Fatalf("expected speaker link to be cleared, got %v", segments[0].SpeakerID)
	}
}

func TestTranscriptBulkCreateAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	c, _ := repos.Cases.Create(ctx, domain.NewCase{Code: "C-030", Title: "Transcript"})
	audio, _ := repos.AudioFiles.Create(ctx, domain.NewAudioFile{CaseID: c.ID, FileName: "long.wav", FilePath: "/tmp/long.wav"})

	count, err := repos.Transcripts.BulkCreate(ctx, audio.ID, []domain.NewTranscriptSegment{
		{StartTime: 4.0, EndTime: 6.0, Text: "second"},
		{StartTime: 0.0, EndTime: 3.5, Text: "first"},
		{StartTime: 7.0, EndTime: 9.0, Text: "third"},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 inserted, got %d", count)
	}

	zero, err := repos.Transcripts.BulkCreate(ctx, audio.ID, nil)
	if err != nil {
		t.Fatalf("empty bulk create: %v", err)
	}
	if zero != 0 {
		t.Fatalf("expected 0 inserted for empty input, got %d", zero)
	}

	segments, err := repos.Transcripts.ListByAudioFile(ctx, audio.ID)
	if err != nil {
		t.Fatalf("list segments: %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[0].Text != "first" || segments[2].Text != "third" {
		t.Fatalf("expected start_time ordering, got %q ... %q", segments[0].Text, segments[2].Text)
	}

	deleted := true
	updated, err := repos.Transcripts.Update(ctx, segments[1].ID, domain.UpdateTranscriptSegment{IsDeleted: &deleted})
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !updated.IsDeleted {
		t.Fatalf("expected is_deleted set")
	}
	if updated.Text != "second" {
		t.Fatalf("text should be untouched, got %q", updated.Text)
	}

	after, _ := repos.Transcripts.ListByAudioFile(ctx, audio.ID)
	if len(after) != 3 {
		t.Fatalf("soft delete must keep the row, got %d", len(after))
	}
}

func TestAlertWordCategoryFilterAndOrdering(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	for _, w := range []domain.NewAlertWord{
		{Keyword: "zulu", Category: "code"},
		{Keyword: "alpha", Category: "code"},
		{Keyword: "mike", Category: "name"},
	} {
		if _, err := repos.AlertWords.Create(ctx, w); err != nil {
			t.Fatalf("create alert word: %v", err)
		}
	}

	all, err := repos.AlertWords.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].Keyword != "alpha" {
		t.Fatalf("expected keyword ordering, got %+v", all)
	}

	code, err := repos.AlertWords.List(ctx, "code")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(code) != 2 {
		t.Fatalf("expected 2 code words, got %d", len(code))
	}
}

func TestNotificationUnreadCountAndMarkAllRead(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	for i := 0; i < 3; i++ {
		if _, err := repos.Notifications.Create(ctx, domain.NewNotification{NotificationType: "system", Action: "created", Title: "hello"}); err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	count, err := repos.Notifications.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 unread, got %d", count)
	}

	read := true
	list, _ := repos.Notifications.List(ctx)
	if _, err := repos.Notifications.Update(ctx, list[0].ID, domain.UpdateNotification{IsRead: &read}); err != nil {
		t.Fatalf("mark one read: %v", err)
	}

	changed, err := repos.Notifications.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if changed != 2 {
		t.Fatalf("expected 2 rows changed, got %d", changed)
	}

	count, _ = repos.Notifications.UnreadCount(ctx)
	if count != 0 {
		t.Fatalf("expected 0 unread, got %d", count)
	}

	again, err := repos.Notifications.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("second mark all read: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected idempotent mark-all-read, got %d", again)
	}
}

func TestActivityCleanup(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	for i := 0; i < 3; i++ {
		if _, err := repos.ActivityLogs.Create(ctx, domain.NewActivityLog{Action: "login", TargetType: "user"}); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	kept, err := repos.ActivityLogs.CleanupOlderThan(ctx, time.Now().AddDate(-100, 0, 0))
	if err != nil {
		t.Fatalf("cleanup distant past: %v", err)
	}
	if kept != 0 {
		t.Fatalf("nothing should be older than 100 years, deleted %d", kept)
	}

	deleted, err := repos.ActivityLogs.CleanupOlderThan(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("cleanup future cutoff: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected all 3 deleted, got %d", deleted)
	}

	rest, _ := repos.ActivityLogs.List(ctx)
	if len(rest) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(rest))
	}
}

func TestActivityListByActionFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	for _, action := range []string{"login", "login", "case_created"} {
		if _, err := repos.ActivityLogs.Create(ctx, domain.NewActivityLog{Action: action, TargetType: "user"}); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	logins, err := repos.ActivityLogs.ListByAction(ctx, "login")
	if err != nil {
		t.Fatalf("list by action: %v", err)
	}
	if len(logins) != 2 {
		t.Fatalf("expected 2 login entries, got %d", len(logins))
	}
}

func TestUserUsernameUniqueAndLookup(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	u, err := repos.Users.Create(ctx, domain.NewUser{Name: "Analyst", Email: "A@Example.COM", Role: "investigator", Username: "analyst", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Email != "a@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if !u.IsActive {
		t.Fatalf("new users start active")
	}

	if _, err := repos.Users.Create(ctx, domain.NewUser{Name: "Dup", Role: "investigator", Username: "analyst", PasswordHash: "y"}); err == nil {
		t.Fatalf("expected unique username violation")
	}

	found, err := repos.Users.GetByUsername(ctx, "  analyst ")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if found.ID != u.ID {
		t.Fatalf("wrong user returned")
	}
	if _, err := repos.Users.GetByUsername(ctx, "ghost"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := repos.Users.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	found, _ = repos.Users.Get(ctx, u.ID)
	if found.IsActive {
		t.Fatalf("expected disabled account")
	}
	if err := repos.Users.SetActive(ctx, 9999, false); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing user, got %v", err)
	}
}

func TestDeletingUserKeepsActivityWithNullUser(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	u, _ := repos.Users.Create(ctx, domain.NewUser{Name: "Temp", Role: "investigator", Username: "temp", PasswordHash: "x"})
	if _, err := repos.ActivityLogs.Create(ctx, domain.NewActivityLog{UserID: &u.ID, Action: "login", TargetType: "user", TargetID: &u.ID}); err != nil {
		t.Fatalf("create activity: %v", err)
	}

	if err := repos.Users.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	entries, _ := repos.ActivityLogs.List(ctx)
	if len(entries) != 1 {
		t.Fatalf("activity must survive user deletion")
	}
	if entries[0].UserID != nil {
		t.Fatalf("expected cleared user link, got %v", entries[0].UserID)
	}
}
