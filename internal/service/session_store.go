package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore 管理员会话存储。token 是带签名的 JWT，
// 同时在 Redis 里按 jti 记一条服务端状态，登出立即失效。
type SessionStore interface {
	Create(ctx context.Context, userID int64) (string, error)
	// Validate 校验 token，返回会话绑定的用户 id
	Validate(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
}

type redisSessionStore struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, secret string, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisSessionStore{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

func (s *redisSessionStore) Create(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+claims.ID, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisSessionStore) Validate(ctx context.Context, token string) (int64, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, ErrSessionInvalid
	}
	// 服务端状态不在了（已登出或过期）就拒绝，即使签名仍有效
	if err := s.rdb.Get(ctx, sessionKeyPrefix+claims.ID).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionInvalid
		}
		return 0, err
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrSessionInvalid
	}
	return userID, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return ErrSessionInvalid
	}
	return s.rdb.Del(ctx, sessionKeyPrefix+claims.ID).Err()
}

func (s *redisSessionStore) parse(token string) (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return &claims, nil
}
