package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccounts(t *testing.T) (*AccountRepository, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	repo := NewAccountRepository(store,
		WithAccountClock(func() time.Time { return fixedNow }),
		WithHashCost(bcrypt.MinCost),
	)
	return repo, store
}

func TestAccountRepository_RegisterStartsSession(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)

	user, err := repo.Register(ctx, "  Ada Lovelace ", "  Ada@Example.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "2026-10-18", user.CreatedAt)
	assert.Empty(t, user.Projects)
	assert.Regexp(t, `^user-\d+-[0-9a-f]{9}$`, user.ID)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	session, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, fixedNow.UnixMilli(), session.LoginTime)
	assert.True(t, session.IsLoggedIn)
}

func TestAccountRepository_RegisterValidationOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		user     string
		email    string
		password string
		want     string
	}{
		{"short name first", "Al", "bad", "123", "Name must be at least 3 characters"},
		{"email before password", "Alan", "not-an-email", "123", "Invalid email address"},
		{"email without dot", "Alan", "alan@host", "secret1", "Invalid email address"},
		{"short password", "Alan", "alan@example.com", "12345", "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestAccounts(t)
			_, err := repo.Register(ctx, tt.user, tt.email, tt.password)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.want, verr.First())

			users, err := repo.Users(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
			_, err = repo.CurrentUser(ctx)
			assert.ErrorIs(t, err, ErrNoSession)
		})
	}
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)

	_, err := repo.Register(ctx, "Grace", "grace@navy.mil", "cobol1")
	require.NoError(t, err)
	before, err := repo.Users(ctx)
	require.NoError(t, err)

	// Duplicate check runs before the other rules.
	_, err = repo.Register(ctx, "G", "GRACE@navy.mil", "1")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.EqualError(t, err, "Email already registered")

	after, err := repo.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAccountRepository_Login(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)
	_, err := repo.Register(ctx, "Linus", "linus@kernel.org", "penguin")
	require.NoError(t, err)
	require.NoError(t, repo.Logout(ctx))

	t.Run("right password", func(t *testing.T) {
		session, err := repo.Login(ctx, "Linus@Kernel.org", "penguin")
		require.NoError(t, err)
		assert.Equal(t, "linus@kernel.org", session.Email)

		current, err := repo.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, current.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := repo.Login(ctx, "linus@kernel.org", "tux")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.EqualError(t, err, "Invalid email or password")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.Login(ctx, "nobody@kernel.org", "penguin")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAccountRepository_LoginRejectsMalformedHash(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestAccounts(t)
	require.NoError(t, store.Set(ctx, UsersKey, []byte(`[{"id":"u1","name":"Old","email":"old@example.com","password":"c2VjcmV0MQ=="}]`)))

	_, err := repo.Login(ctx, "old@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountRepository_Logout(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)
	_, err := repo.Register(ctx, "Margaret", "margaret@nasa.gov", "apollo11")
	require.NoError(t, err)

	require.NoError(t, repo.Logout(ctx))
	_, err = repo.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	assert.NoError(t, repo.Logout(ctx), "logging out twice")
}

func TestAccountRepository_CurrentUserMalformed(t *testing.T) {
	ctx := context.Background()

	for name, raw := range map[string]string{
		"not json":      `{oops`,
		"not logged in": `{"userId":"u1","isLoggedIn":false}`,
	} {
		t.Run(name, func(t *testing.T) {
			repo, store := newTestAccounts(t)
			require.NoError(t, store.Set(ctx, SessionKey, []byte(raw)))
			_, err := repo.CurrentUser(ctx)
			assert.ErrorIs(t, err, ErrNoSession)
		})
	}
}

func TestAccountRepository_LinkProject(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)
	user, err := repo.Register(ctx, "Hedy", "hedy@example.com", "frequency")
	require.NoError(t, err)

	require.NoError(t, repo.LinkProject(ctx, user.ID, "RB-1001"))
	require.NoError(t, repo.LinkProject(ctx, user.ID, "RB-1001"))
	require.NoError(t, repo.LinkProject(ctx, user.ID, "RB-1002"))
	require.NoError(t, repo.LinkProject(ctx, "user-missing", "RB-1003"))

	got, err := repo.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"RB-1001", "RB-1002"}, got.Projects)

	_, err = repo.UserByID(ctx, "user-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountRepository_ForProfileIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestAccounts(t)
	alice := repo.ForProfile("alice")
	bob := repo.ForProfile("bob")

	_, err := alice.Register(ctx, "Alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	session, err := alice.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)

	_, err = bob.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = repo.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Users are shared between profiles.
	_, err = bob.Login(ctx, "alice@example.com", "wonderland")
	require.NoError(t, err)
	require.NoError(t, alice.Logout(ctx))
	_, err = bob.CurrentUser(ctx)
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{UsersKey, "profile:bob:" + SessionKey}, store.Keys())
}

func TestAccountRepository_LoginExternal(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestAccounts(t)

	_, err := repo.LoginExternal(ctx, "new@example.com", "Newcomer", false)
	assert.ErrorIs(t, err, ErrUserNotFound)

	session, err := repo.LoginExternal(ctx, "New@Example.com", "Newcomer", true)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", session.Email)
	assert.Equal(t, "Newcomer", session.Name)

	_, err = repo.LoginExternal(ctx, "new@example.com", "Newcomer", true)
	assert.ErrorIs(t, err, ErrEmailTaken)

	again, err := repo.LoginExternal(ctx, "new@example.com", "", false)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, again.UserID)

	// Provider accounts have no password to log in with.
	_, err = repo.Login(ctx, "new@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
