package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_notifications"
)

// Message - одно push-уведомление в формате Expo push API
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Publisher - интерфейс для постановки уведомлений на доставку
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// RedisPublisher - реализация Publisher поверх списка Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push message to Redis: %w", err)
	}
	return nil
}
