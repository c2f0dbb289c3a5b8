package application

import (
	"context"
	"testing"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCaseValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateCase(ctx, domain.NewCase{Code: "", Title: "No code"})
	assert.Error(t, err)
	_, err = svc.CreateCase(ctx, domain.NewCase{Code: "C-1", Title: "  "})
	assert.Error(t, err)

	c, err := svc.CreateCase(ctx, domain.NewCase{Code: "C-1", Title: "Valid"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	_, err = svc.GetCase(ctx, 0)
	assert.Error(t, err)
	err = svc.DeleteCase(ctx, c.ID)
	assert.NoError(t, err)
}

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateUser(ctx, NewUserInput{Name: "X", Username: "x"})
	assert.Error(t, err, "password is required")

	u, err := svc.CreateUser(ctx, NewUserInput{
		Name:     "Field Analyst",
		Email:    "analyst@spexor.local",
		Role:     "investigator",
		Username: "analyst",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.True(t, u.IsActive)

	logged, err := svc.Login(ctx, "analyst", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
}

func TestBulkTranscriptValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	c, err := svc.CreateCase(ctx, domain.NewCase{Code: "C-2", Title: "Audio"})
	require.NoError(t, err)
	audio, err := svc.CreateAudioFile(ctx, domain.NewAudioFile{CaseID: c.ID, FileName: "r.wav", FilePath: "/tmp/r.wav"})
	require.NoError(t, err)

	_, err = svc.BulkCreateTranscript(ctx, 0, nil)
	assert.Error(t, err)

	_, err = svc.BulkCreateTranscript(ctx, audio.ID, []domain.NewTranscriptSegment{
		{StartTime: 5, EndTime: 1, Text: "inverted"},
	})
	assert.Error(t, err)

	count, err := svc.BulkCreateTranscript(ctx, audio.ID, []domain.NewTranscriptSegment{
		{StartTime: 0, EndTime: 1, Text: "ok"},
		{StartTime: 1, EndTime: 2, Text: "also ok"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCleanupActivity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CleanupActivity(ctx, -1)
	assert.Error(t, err)

	deleted, err := svc.CleanupActivity(ctx, 36500)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	for _, action := range []string{"export", "import", "review"} {
		_, err := svc.CreateActivity(ctx, domain.NewActivityLog{Action: action, TargetType: "case"})
		require.NoError(t, err)
	}

	// days=0 places the cutoff at now, so everything written so far goes.
	deleted, err = svc.CleanupActivity(ctx, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	entries, err := svc.ListActivity(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
