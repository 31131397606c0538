package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateValidateRevoke(t *testing.T) {
	store, _ := setupSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Validate(ctx, token)
	require.NoError(t, err)
	assert.EqualValues(t, 1, userID)

	require.NoError(t, store.Revoke(ctx, token))
	_, err = store.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionStore_RejectsTamperedToken(t *testing.T) {
	store, _ := setupSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	require.NoError(t, err)

	_, err = store.Validate(ctx, token+"x")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	_, err = store.Validate(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionStore_ServerSideExpiry(t *testing.T) {
	store, mr := setupSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	require.NoError(t, err)

	// 服务端记录过期后，签名仍有效的 token 也要被拒绝
	mr.FastForward(2 * time.Hour)
	_, err = store.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}
