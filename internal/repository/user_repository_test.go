package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "admin", PasswordHash: "h"}))
	err := repo.Create(ctx, &model.User{Username: "admin", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_MarkOnlineOffline(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "admin", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	at := time.Now()
	require.NoError(t, repo.MarkOnline(ctx, user.ID, at))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Online)
	require.NotNil(t, got.LastSeen)
	assert.WithinDuration(t, at, *got.LastSeen, time.Second)

	require.NoError(t, repo.MarkOffline(ctx, user.ID))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, got.Online)
	// 登出不刷新 last_seen
	require.NotNil(t, got.LastSeen)

	cnt, err := repo.CountOnline(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, cnt)
}

func TestUserRepository_MarkOnlineMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.MarkOnline(context.Background(), 42, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}
