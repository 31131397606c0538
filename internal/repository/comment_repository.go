package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListApprovedTopLevel 文章详情页可见的评论：已审核且非回复，created_at 倒序
	ListApprovedTopLevel(ctx context.Context, postID int64) ([]*model.Comment, error)
	// ListAll 后台列表：全部评论，created_at 倒序
	ListAll(ctx context.Context) ([]*model.Comment, error)
	Recent(ctx context.Context, limit int) ([]*model.Comment, error)
	CountPending(ctx context.Context) (int64, error)
	// ToggleApproved 翻转审核位，单条 UPDATE，两次调用回到原状态
	ToggleApproved(ctx context.Context, id int64) error
	// Delete 硬删除
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListApprovedTopLevel(ctx context.Context, postID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND parent_id IS NULL AND is_approved = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, translate(err)
}

func (r *commentRepository) ListAll(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&comments).Error
	return comments, translate(err)
}

func (r *commentRepository) Recent(ctx context.Context, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&comments).Error
	return comments, translate(err)
}

func (r *commentRepository) CountPending(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("is_approved = ?", false).Count(&cnt).Error
	return cnt, translate(err)
}

func (r *commentRepository) ToggleApproved(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Update("is_approved", gorm.Expr("NOT is_approved"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
