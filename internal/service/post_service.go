package service

import (
	"context"
	"strings"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// 发布状态的表单取值
const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

// PostService 文章的可见性规则与后台操作
type PostService interface {
	// PublicFeed 匿名可见的信息流：仅已发布，created_at 倒序
	PublicFeed(ctx context.Context) ([]*model.Post, error)
	// Detail 文章详情。未发布的文章只有管理员可见，匿名访问视同不存在。
	Detail(ctx context.Context, id int64, admin bool) (*model.Post, error)
	// Create 新建文章，status 缺省按 published 处理
	Create(ctx context.Context, authorID int64, title, content, status string) (*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	TogglePublished(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) PublicFeed(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListPublished(ctx)
}

func (s *postService) Detail(ctx context.Context, id int64, admin bool) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished && !admin {
		return nil, repository.ErrNotFound
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, authorID int64, title, content, status string) (*model.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationErrorf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationErrorf("content is required")
	}
	if status == "" {
		status = PostStatusPublished
	}
	post := &model.Post{
		Title:       title,
		Content:     content,
		AuthorID:    authorID,
		IsPublished: status == PostStatusPublished,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) ListAll(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postService) TogglePublished(ctx context.Context, id int64) error {
	return s.postRepo.TogglePublished(ctx, id)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	// 不级联评论：被删文章的评论保留为孤儿行
	return s.postRepo.Delete(ctx, id)
}
