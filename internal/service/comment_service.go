package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// SubmitCommentInput 匿名访客提交的评论
type SubmitCommentInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Content  string `validate:"required"`
	PostID   int64  `validate:"required"`
	ParentID *int64
}

// CommentService 评论提交与审核
type CommentService interface {
	// Submit 创建评论，总是未审核状态。校验与写入在同一事务里：
	// 文章必须存在，parent 必须存在且挂在同一篇文章下。
	Submit(ctx context.Context, in SubmitCommentInput) (int64, error)
	// ApprovedTopLevel 详情页可见的评论（已审核的顶层评论）
	ApprovedTopLevel(ctx context.Context, postID int64) ([]*model.Comment, error)
	ListAll(ctx context.Context) ([]*model.Comment, error)
	ToggleApproved(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	db          *gorm.DB
	commentRepo repository.CommentRepository
	validate    *validator.Validate
}

func NewCommentService(db *gorm.DB, commentRepo repository.CommentRepository) CommentService {
	return &commentService{db: db, commentRepo: commentRepo, validate: validator.New()}
}

func (s *commentService) Submit(ctx context.Context, in SubmitCommentInput) (int64, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, validationErrorf("missing required fields")
	}

	var id int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		posts := repository.NewPostRepository(tx)
		comments := repository.NewCommentRepository(tx)

		if _, err := posts.GetByID(ctx, in.PostID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return validationErrorf("post not found")
			}
			return err
		}
		if in.ParentID != nil {
			parent, err := comments.GetByID(ctx, *in.ParentID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return validationErrorf("parent comment not found")
				}
				return err
			}
			if parent.PostID != in.PostID {
				return validationErrorf("parent comment belongs to a different post")
			}
		}

		comment := &model.Comment{
			PostID:     in.PostID,
			ParentID:   in.ParentID,
			Name:       in.Name,
			Email:      in.Email,
			Content:    in.Content,
			IsApproved: false,
		}
		if err := comments.Create(ctx, comment); err != nil {
			return err
		}
		id = comment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *commentService) ApprovedTopLevel(ctx context.Context, postID int64) ([]*model.Comment, error) {
	return s.commentRepo.ListApprovedTopLevel(ctx, postID)
}

func (s *commentService) ListAll(ctx context.Context) ([]*model.Comment, error) {
	return s.commentRepo.ListAll(ctx)
}

func (s *commentService) ToggleApproved(ctx context.Context, id int64) error {
	return s.commentRepo.ToggleApproved(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}
