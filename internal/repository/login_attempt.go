package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/medical_dispatch/internal/service"
)

// LoginAttemptStore считает неудачные входы в Redis с истечением по окну блокировки
type LoginAttemptStore struct {
	redisClient *redis.Client
}

func NewLoginAttemptStore(redisClient *redis.Client) service.LoginAttemptStore {
	return &LoginAttemptStore{redisClient: redisClient}
}

func loginAttemptsKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

func (s *LoginAttemptStore) Count(ctx context.Context, username string) (int, error) {
	count, err := s.redisClient.Get(ctx, loginAttemptsKey(username)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return count, nil
}

// Increment увеличивает счетчик; окно отсчитывается от первой неудачи
func (s *LoginAttemptStore) Increment(ctx context.Context, username string, window time.Duration) (int, error) {
	key := loginAttemptsKey(username)

	pipe := s.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record login attempt: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *LoginAttemptStore) Reset(ctx context.Context, username string) error {
	if err := s.redisClient.Del(ctx, loginAttemptsKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
