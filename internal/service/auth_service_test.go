package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/repository"
)

func setupAuth(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	sessions, _ := setupSessionStore(t)
	return NewAuthService(userRepo, sessions), userRepo
}

func TestAuthService_EnsureAdminIdempotent(t *testing.T) {
	auth, userRepo := setupAuth(t)
	ctx := context.Background()

	require.NoError(t, auth.EnsureAdmin(ctx, "admin", "admin123"))
	admin, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.Online)
	assert.NotEqual(t, "admin123", admin.PasswordHash)

	// 二次执行不动已有账号
	require.NoError(t, auth.EnsureAdmin(ctx, "admin", "other-password"))
	again, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.PasswordHash, again.PasswordHash)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	auth, userRepo := setupAuth(t)
	ctx := context.Background()
	require.NoError(t, auth.EnsureAdmin(ctx, "admin", "admin123"))

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	admin, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.Online)
	require.NotNil(t, admin.LastSeen)
	assert.WithinDuration(t, time.Now(), *admin.LastSeen, 5*time.Second)

	userID, err := auth.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, userID)
}

func TestAuthService_LoginFailureIsGeneric(t *testing.T) {
	auth, userRepo := setupAuth(t)
	ctx := context.Background()
	require.NoError(t, auth.EnsureAdmin(ctx, "admin", "admin123"))
	require.NoError(t, userRepo.MarkOffline(ctx, 1))

	// 密码错和用户不存在返回同一个错误
	_, err := auth.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	admin, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, admin.Online)
}

func TestAuthService_Logout(t *testing.T) {
	auth, userRepo := setupAuth(t)
	ctx := context.Background()
	require.NoError(t, auth.EnsureAdmin(ctx, "admin", "admin123"))

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, token))

	admin, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, admin.Online)

	_, err = auth.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrSessionInvalid)

	// 二次登出：会话已不存在
	assert.ErrorIs(t, auth.Logout(ctx, token), ErrSessionInvalid)
}
