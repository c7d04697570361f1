package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/models"
	"github.com/dmitrijs2005/showcase/internal/repositories/records"
	"github.com/dmitrijs2005/showcase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(records.NewSQLiteRepository(setupDB(t)), logging.NewDefault("error"))
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

const avatarBase = "https://avatars.example/api/"

func TestLogin_SeedAdmin_Succeeds(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	u, err := svc.Login(ctx, "demo_admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, u.Role)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)
}

func TestLogin_WrongPassword_NoSessionNoMutation(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	before, err := s.LoadUsers(ctx)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "demo_user", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	after, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLogin_CaseSensitiveUsername(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)

	_, err := svc.Login(context.Background(), "Demo_User", "user123")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_BannedAccount_Rejected(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	for i := range users {
		if users[i].Username == "demo_user" {
			users[i].Status = models.StatusBanned
		}
	}
	require.NoError(t, s.SaveUsers(ctx, users))

	_, err = svc.Login(ctx, "demo_user", "user123")
	require.ErrorIs(t, err, common.ErrAccountBanned)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestRegister_ThenLogin_SameID(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	created, err := svc.Register(ctx, "grace", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Contains(t, created.Avatar, "grace")

	// Registration auto-logs in.
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, created.ID, current.ID)

	require.NoError(t, svc.Logout(ctx))

	logged, err := svc.Login(ctx, "grace", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestRegister_EmptyFields_Rejected(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	require.ErrorIs(t, err, common.ErrEmptyCredentials)

	_, err = svc.Register(ctx, "heidi", "")
	require.ErrorIs(t, err, common.ErrEmptyCredentials)
}

func TestRegister_DuplicateUsername_Rejected(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	_, err := svc.Register(ctx, "demo_user", "anything")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2, "no record appended")
}

func TestRegister_IDsDoNotCollide(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	a, err := svc.Register(ctx, "ivan", "pw")
	require.NoError(t, err)
	b, err := svc.Register(ctx, "judy", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	s := setupStore(t)
	svc := NewSessionService(s, avatarBase)
	ctx := context.Background()

	_, err := svc.Login(ctx, "demo_user", "user123")
	require.NoError(t, err)

	before, err := s.LoadUsers(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	after, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "users collection untouched")
}
