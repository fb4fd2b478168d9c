package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/push"
	"github.com/sirupsen/logrus"
)

const (
	newDispatchTitle = "New dispatch"
	newDispatchBody  = "A new dispatch has been assigned to your team."
)

// NotificationService - рассылка push-уведомлений о новых вызовах
type NotificationService interface {
	RegisterPushToken(ctx context.Context, token string) error
	NotifyNewDispatch(ctx context.Context, team *models.Team, dispatch *models.Dispatch)
}

type notificationService struct {
	tokens    PushTokenStore
	publisher push.Publisher
	logger    *logrus.Logger
}

func NewNotificationService(tokens PushTokenStore, publisher push.Publisher, logger *logrus.Logger) NotificationService {
	return &notificationService{
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterPushToken добавляет адрес в набор; повторная регистрация ничего не меняет
func (s *notificationService) RegisterPushToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("push token is required: %w", ErrInvalidArgument)
	}

	added, err := s.tokens.Add(ctx, token)
	if err != nil {
		s.logger.WithError(err).Error("Failed to register push token")
		return fmt.Errorf("service: could not register push token: %w", ErrUnavailable)
	}

	s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "RegisterPushToken",
		"added":   added,
	}).Info("Push token registered")
	return nil
}

// NotifyNewDispatch ставит уведомление в очередь для адреса бригады и всех
// зарегистрированных адресов. Ошибки только логируются.
func (s *notificationService) NotifyNewDispatch(ctx context.Context, team *models.Team, dispatch *models.Dispatch) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "notification",
		"method":      "NotifyNewDispatch",
		"dispatch_id": dispatch.ID,
	})

	registered, err := s.tokens.List(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load registered push tokens")
	}

	var recipients []string
	if team != nil && team.NotificationAddress != nil {
		recipients = append(recipients, *team.NotificationAddress)
	}
	recipients = lo.Uniq(lo.Compact(append(recipients, registered...)))

	data := map[string]string{
		"type":        "new_dispatch",
		"dispatch_id": dispatch.ID.String(),
		"team_id":     dispatch.TeamID.String(),
		"address":     dispatch.Address,
		"caller_name": dispatch.CallerName,
	}

	for _, to := range recipients {
		msg := push.Message{
			To:    to,
			Title: newDispatchTitle,
			Body:  newDispatchBody,
			Data:  data,
		}
		if err := s.publisher.Publish(ctx, msg); err != nil {
			log.WithError(err).WithField("push_to", to).Warn("Failed to enqueue push notification")
		}
	}

	log.WithField("recipients", len(recipients)).Info("New dispatch notification enqueued")
}
