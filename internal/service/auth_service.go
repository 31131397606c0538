package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// AuthService 管理员登录、登出与会话校验
type AuthService interface {
	// Login 校验凭证，成功时置在线、刷新 last_seen 并发放会话 token。
	// 用户不存在和密码错误返回同一个 ErrInvalidCredentials。
	Login(ctx context.Context, username, password string) (string, error)
	// Logout 置离线并吊销会话
	Logout(ctx context.Context, token string) error
	// CurrentUser 按会话 token 返回用户 id
	CurrentUser(ctx context.Context, token string) (int64, error)
	// EnsureAdmin 启动时保证 admin 账号存在，已存在则不动
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	sessions SessionStore
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if err := s.userRepo.MarkOnline(ctx, user.ID, time.Now()); err != nil {
		return "", err
	}
	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", err
	}
	logger.Info("admin login", zap.String("username", username))
	return token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	userID, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.userRepo.MarkOffline(ctx, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return s.sessions.Revoke(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (int64, error) {
	return s.sessions.Validate(ctx, token)
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	// 与旧系统一致：种子账号初始即在线
	admin := &model.User{Username: username, PasswordHash: string(hash), Online: true}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// 并发启动时另一个实例可能先建好了
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}
	logger.Info("seeded admin user", zap.String("username", username))
	return nil
}
