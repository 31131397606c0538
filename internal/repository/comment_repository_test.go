package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func int64ptr(v int64) *int64 { return &v }

func TestCommentRepository_ListApprovedTopLevel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	approved := &model.Comment{PostID: 1, Name: "a", Email: "a@x.com", Content: "visible", IsApproved: true, CreatedAt: base}
	pending := &model.Comment{PostID: 1, Name: "b", Email: "b@x.com", Content: "pending", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, approved))
	require.NoError(t, repo.Create(ctx, pending))
	// 已审核的回复也不进详情页
	reply := &model.Comment{PostID: 1, ParentID: int64ptr(approved.ID), Name: "c", Email: "c@x.com", Content: "reply", IsApproved: true, CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, repo.Create(ctx, reply))
	otherPost := &model.Comment{PostID: 2, Name: "d", Email: "d@x.com", Content: "other", IsApproved: true, CreatedAt: base.Add(3 * time.Minute)}
	require.NoError(t, repo.Create(ctx, otherPost))

	visible, err := repo.ListApprovedTopLevel(ctx, 1)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "visible", visible[0].Content)
}

func TestCommentRepository_DoubleToggleRestoresState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &model.Comment{PostID: 1, Name: "a", Email: "a@x.com", Content: "hi"}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.ToggleApproved(ctx, comment.ID))
	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)

	require.NoError(t, repo.ToggleApproved(ctx, comment.ID))
	got, err = repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)
}

func TestCommentRepository_ToggleMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	assert.ErrorIs(t, repo.ToggleApproved(context.Background(), 11), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), 11), ErrNotFound)
}

func TestCommentRepository_CountPendingAndRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		c := &model.Comment{PostID: 1, Name: "n", Email: "e@x.com", Content: "c", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, c))
	}
	approved := &model.Comment{PostID: 1, Name: "n", Email: "e@x.com", Content: "ok", IsApproved: true, CreatedAt: base.Add(10 * time.Minute)}
	require.NoError(t, repo.Create(ctx, approved))

	pending, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, pending)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "ok", recent[0].Content)
}
