package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker забирает уведомления из очереди и отправляет их на push-шлюз.
// Каждое уведомление отправляется ровно один раз, ошибки только логируются.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// Start запускает горутину обработки очереди, остановка через отмену ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop push message from Redis")
					time.Sleep(w.cfg.PushTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var msg Message
				if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push message from Redis")
					continue
				}

				w.process(ctx, msg)
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, msg Message) {
	log := w.logger.WithFields(logrus.Fields{
		"push_to":     msg.To,
		"dispatch_id": msg.Data["dispatch_id"],
	})
	if err := w.Deliver(ctx, msg); err != nil {
		log.WithError(err).Warn("Push notification was not delivered")
		return
	}
	log.Info("Push notification delivered")
}

// Deliver выполняет один POST на push-шлюз без повторов
func (w *Worker) Deliver(ctx context.Context, msg Message) error {
	if w.cfg.PushURL == "" {
		return errors.New("push URL is not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.PushURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if w.cfg.PushAccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+w.cfg.PushAccessToken)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push endpoint returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
