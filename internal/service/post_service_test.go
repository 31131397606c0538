package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/repository"
)

func setupPosts(t *testing.T) PostService {
	t.Helper()
	db := setupTestDB(t)
	return NewPostService(repository.NewPostRepository(db))
}

func TestPostService_CreateValidation(t *testing.T) {
	svc := setupPosts(t)
	ctx := context.Background()

	var ve *ValidationError
	_, err := svc.Create(ctx, 1, "", "content", "")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.Create(ctx, 1, "   ", "content", "")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.Create(ctx, 1, "title", "", "")
	assert.ErrorAs(t, err, &ve)
}

func TestPostService_CreateStatus(t *testing.T) {
	svc := setupPosts(t)
	ctx := context.Background()

	published, err := svc.Create(ctx, 1, "a", "c", "")
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	draft, err := svc.Create(ctx, 1, "b", "c", PostStatusDraft)
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)

	explicit, err := svc.Create(ctx, 1, "c", "c", PostStatusPublished)
	require.NoError(t, err)
	assert.True(t, explicit.IsPublished)
}

func TestPostService_DetailHidesDrafts(t *testing.T) {
	svc := setupPosts(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, 1, "draft", "c", PostStatusDraft)
	require.NoError(t, err)

	// 匿名访问视同不存在
	_, err = svc.Detail(ctx, draft.ID, false)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// 管理员可见
	got, err := svc.Detail(ctx, draft.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Title)
}

func TestPostService_PublicFeedExcludesDrafts(t *testing.T) {
	svc := setupPosts(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "live", "c", PostStatusPublished)
	require.NoError(t, err)
	draft, err := svc.Create(ctx, 1, "hidden", "c", PostStatusDraft)
	require.NoError(t, err)

	feed, err := svc.PublicFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "live", feed[0].Title)

	// 翻转后进入信息流
	require.NoError(t, svc.TogglePublished(ctx, draft.ID))
	feed, err = svc.PublicFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
