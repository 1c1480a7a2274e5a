package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hypehouse-backend/internal/domains/auth/model"
	"hypehouse-backend/pkg/cache"
	"hypehouse-backend/pkg/jwt"
)

const testPassword = "correct-horse-battery"

type testEnv struct {
	svc   ServiceInterface
	repo  *fakeRepo
	cache *cache.MemoryCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newFakeRepo()
	mc := cache.NewMemoryCache()
	svc := NewAuthService(repo, mc, jwt.NewManager("test-secret", time.Hour), Config{
		MaxFailedLogins: 3,
		LockoutWindow:   time.Minute,
	})
	return &testEnv{svc: svc, repo: repo, cache: mc}
}

func (e *testEnv) addUser(t *testing.T, email string, roles ...model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := e.repo.Create(context.Background(), email, string(hash))
	require.NoError(t, err)
	for _, r := range roles {
		require.NoError(t, e.repo.GrantRole(context.Background(), u.ID, r))
	}
	return u
}

func TestLogin_AdminGetsVerifiableToken(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@hypehouse.test", model.RoleAdmin)
	ctx := context.Background()

	res, err := env.svc.Login(ctx, model.LoginRequest{Email: "Admin@HypeHouse.test", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, admin.ID, res.Session.UserID)
	assert.Equal(t, 1, env.repo.lastLogin[admin.ID])

	caller, err := env.svc.VerifyAccessToken(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, caller.UserID)
	assert.NotEmpty(t, caller.TokenID)
}

func TestLogin_FailuresLookIdentical(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "fan@hypehouse.test", model.RoleUser)
	env.addUser(t, "admin@hypehouse.test", model.RoleAdmin)
	ctx := context.Background()

	cases := []model.LoginRequest{
		{Email: "nobody@hypehouse.test", Password: testPassword},
		{Email: "admin@hypehouse.test", Password: "wrong-password"},
		{Email: "fan@hypehouse.test", Password: testPassword},
	}
	for _, req := range cases {
		_, err := env.svc.Login(ctx, req)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials, req.Email)
	}
}

func TestLogin_LocksOutAfterRepeatedFailures(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@hypehouse.test", model.RoleAdmin)
	ctx := context.Background()
	bad := model.LoginRequest{Email: "admin@hypehouse.test", Password: "nope"}

	for i := 0; i < 3; i++ {
		_, err := env.svc.Login(ctx, bad)
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	}

	// Đúng password vẫn bị chặn trong cửa sổ lockout
	_, err := env.svc.Login(ctx, model.LoginRequest{Email: "admin@hypehouse.test", Password: testPassword})
	assert.ErrorIs(t, err, model.ErrTooManyAttempts)

	ttl, err := env.cache.TTL(ctx, failedLoginKeyPrefix+"admin@hypehouse.test")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@hypehouse.test", model.RoleAdmin)
	ctx := context.Background()

	_, _ = env.svc.Login(ctx, model.LoginRequest{Email: "admin@hypehouse.test", Password: "nope"})
	_, err := env.svc.Login(ctx, model.LoginRequest{Email: "admin@hypehouse.test", Password: testPassword})
	require.NoError(t, err)

	exists, err := env.cache.Exists(ctx, failedLoginKeyPrefix+"admin@hypehouse.test")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLogout_RevokesToken(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@hypehouse.test", model.RoleAdmin)
	ctx := context.Background()

	res, err := env.svc.Login(ctx, model.LoginRequest{Email: "admin@hypehouse.test", Password: testPassword})
	require.NoError(t, err)
	caller, err := env.svc.VerifyAccessToken(ctx, res.AccessToken)
	require.NoError(t, err)

	require.NoError(t, env.svc.Logout(ctx, caller))

	_, err = env.svc.VerifyAccessToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestVerifyAccessToken_RejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.VerifyAccessToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestIsAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@hypehouse.test", model.RoleAdmin, model.RoleUser)
	fan := env.addUser(t, "fan@hypehouse.test", model.RoleUser)
	bare := env.addUser(t, "bare@hypehouse.test")
	ctx := context.Background()

	tests := []struct {
		name string
		id   uuid.UUID
		want bool
	}{
		{"admin row", admin.ID, true},
		{"user row only", fan.ID, false},
		{"no rows", bare.ID, false},
		{"anonymous", uuid.Nil, false},
		{"unknown id", uuid.New(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.svc.IsAdmin(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	env.repo.roleErr = errors.New("connection reset")
	_, err := env.svc.IsAdmin(ctx, admin.ID)
	assert.Error(t, err)
}

func TestCreateUserAndRoles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateUser(ctx, model.CreateUserRequest{Email: "ops@hypehouse.test", Password: "short"})
	assert.Error(t, err)

	u, err := env.svc.CreateUser(ctx, model.CreateUserRequest{Email: "Ops@HypeHouse.test", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "ops@hypehouse.test", u.Email)

	_, err = env.svc.CreateUser(ctx, model.CreateUserRequest{Email: "ops@hypehouse.test", Password: testPassword})
	assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)

	assert.ErrorIs(t, env.svc.GrantRole(ctx, u.Email, "owner"), model.ErrInvalidRole)
	require.NoError(t, env.svc.GrantRole(ctx, u.Email, model.RoleAdmin))

	isAdmin, err := env.svc.IsAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	removed, err := env.svc.RevokeRole(ctx, u.Email, model.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, removed)

	isAdmin, err = env.svc.IsAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
