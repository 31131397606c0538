package service

import (
	"context"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

const recentLimit = 5

// DashboardStats 后台首页的汇总计数
type DashboardStats struct {
	TotalPosts      int64 `json:"total_posts"`
	PendingComments int64 `json:"pending_comments"`
	OnlineUsers     int64 `json:"online_users"`
}

// DashboardOverview 汇总计数 + 最近的文章和评论
type DashboardOverview struct {
	Stats          DashboardStats   `json:"stats"`
	RecentPosts    []*model.Post    `json:"recent_posts"`
	RecentComments []*model.Comment `json:"recent_comments"`
}

type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}

type dashboardService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewDashboardService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) DashboardService {
	return &dashboardService{postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo}
}

func (s *dashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	totalPosts, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.commentRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	online, err := s.userRepo.CountOnline(ctx)
	if err != nil {
		return nil, err
	}
	recentPosts, err := s.postRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentComments, err := s.commentRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &DashboardOverview{
		Stats:          DashboardStats{TotalPosts: totalPosts, PendingComments: pending, OnlineUsers: online},
		RecentPosts:    recentPosts,
		RecentComments: recentComments,
	}, nil
}
