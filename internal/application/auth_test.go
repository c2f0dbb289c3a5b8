package application

import (
	"context"
	"testing"

	sqliteadapter "github.com/vuminhieu/spexor-client/internal/adapters/db/sqlite"
	"github.com/vuminhieu/spexor-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := sqliteadapter.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sqliteadapter.RunMigrations(context.Background(), db))
	return NewService(sqliteadapter.NewRepositories(db))
}

func seededService(t *testing.T) *Service {
	t.Helper()
	svc := newTestService(t)
	require.NoError(t, svc.SeedAdmin(context.Background()))
	return svc
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	require.NoError(t, svc.SeedAdmin(ctx))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "Administrator", users[0].Name)
	assert.Equal(t, "admin@spexor.local", users[0].Email)
	assert.Equal(t, "admin", users[0].Role)
	assert.True(t, users[0].IsActive)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	u, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.NotZero(t, u.ID)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	u, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.NoError(t, svc.SetUserActive(ctx, u.ID, false))

	_, err = svc.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)

	require.NoError(t, svc.SetUserActive(ctx, u.ID, true))
	_, err = svc.Login(ctx, "admin", "admin")
	assert.NoError(t, err)
}

func TestLoginLeavesActivityTrace(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	_, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	entries, err := svc.ListActivityByAction(ctx, "login")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user", entries[0].TargetType)
	require.NotNil(t, entries[0].UserID)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	u, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, u.ID, "wrong", "next")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, u.ID, "admin", "")
	assert.Error(t, err)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "admin", "s3cret"))

	_, err = svc.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "admin", "s3cret")
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, 9999, "s3cret", "other")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	u, err := svc.GetCurrentUser(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, u)

	missing := uint(9999)
	u, err = svc.GetCurrentUser(ctx, &missing)
	require.NoError(t, err)
	assert.Nil(t, u)

	admin, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	u, err = svc.GetCurrentUser(ctx, &admin.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)
}

func TestLogoutIsAlwaysFine(t *testing.T) {
	ctx := context.Background()
	svc := seededService(t)

	assert.NoError(t, svc.Logout(ctx, nil))

	id := uint(42)
	assert.NoError(t, svc.Logout(ctx, &id))
}
