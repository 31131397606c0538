package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// ListPublished 公共信息流：只含已发布，created_at 倒序
	ListPublished(ctx context.Context) ([]*model.Post, error)
	// ListAll 后台列表：全部文章，created_at 倒序
	ListAll(ctx context.Context) ([]*model.Post, error)
	Recent(ctx context.Context, limit int) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
	// TogglePublished 翻转发布位，单条 UPDATE，两次调用回到原状态
	TogglePublished(ctx context.Context, id int64) error
	// Delete 硬删除，不级联评论
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, translate(err)
}

func (r *postRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, translate(err)
}

func (r *postRepository) Recent(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, translate(err)
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, translate(err)
}

func (r *postRepository) TogglePublished(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Update("is_published", gorm.Expr("NOT is_published"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
