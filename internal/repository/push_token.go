package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/medical_dispatch/internal/service"
)

const pushTokensKey = "push_tokens"

// PushTokenStore хранит адреса push-уведомлений в множестве Redis
type PushTokenStore struct {
	redisClient *redis.Client
}

func NewPushTokenStore(redisClient *redis.Client) service.PushTokenStore {
	return &PushTokenStore{redisClient: redisClient}
}

// Add добавляет адрес; SADD не создает дубликатов
func (s *PushTokenStore) Add(ctx context.Context, token string) (bool, error) {
	added, err := s.redisClient.SAdd(ctx, pushTokensKey, token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add push token: %w", err)
	}
	return added > 0, nil
}

func (s *PushTokenStore) List(ctx context.Context) ([]string, error) {
	tokens, err := s.redisClient.SMembers(ctx, pushTokensKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list push tokens: %w", err)
	}
	return tokens, nil
}
