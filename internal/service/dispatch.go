package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// DispatchService определяет контракт журнала вызовов
type DispatchService interface {
	CreateDispatch(ctx context.Context, requester *models.User, dispatch *models.Dispatch) error
	ListDispatches(ctx context.Context, requester *models.User, page, pageSize int) ([]*models.Dispatch, error)
	GetDispatch(ctx context.Context, requester *models.User, id uuid.UUID) (*models.Dispatch, error)
	DeleteDispatch(ctx context.Context, requester *models.User, id uuid.UUID) error
}

type dispatchService struct {
	tx         Transactor
	dispatches DispatchRepository
	teams      TeamRepository
	notifier   NotificationService
	logger     *logrus.Logger
	now        func() time.Time
}

func NewDispatchService(tx Transactor, dispatches DispatchRepository, teams TeamRepository, notifier NotificationService, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		tx:         tx,
		dispatches: dispatches,
		teams:      teams,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateDispatch создает вызов для свободной бригады и переводит ее в busy.
// Блокировка бригады, вставка и смена статуса выполняются в одной транзакции,
// уведомление отправляется после фиксации и не влияет на результат.
func (s *dispatchService) CreateDispatch(ctx context.Context, requester *models.User, dispatch *models.Dispatch) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "CreateDispatch",
		"team_id": dispatch.TeamID,
	})
	log.Info("Attempting to create a new dispatch")

	if !Authorize(requester, models.RoleDispatcher) {
		log.Warn("Only a dispatcher can create dispatches")
		return fmt.Errorf("only a dispatcher can create dispatches: %w", ErrForbidden)
	}

	var team *models.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		team, err = s.teams.GetByIDForUpdate(ctx, dispatch.TeamID)
		if err != nil {
			return fmt.Errorf("team %s: %w", dispatch.TeamID, err)
		}

		switch team.Status {
		case models.TeamStatusAvailable:
		case models.TeamStatusBusy:
			return ErrTeamBusy
		default:
			return fmt.Errorf("team %s has unknown status %q", team.ID, team.Status)
		}

		dispatch.Status = models.DispatchStatusPending
		dispatch.CreatedAt = s.now().UTC()
		dispatch.CompletedAt = nil
		if err := s.dispatches.Create(ctx, dispatch); err != nil {
			return err
		}

		return s.teams.SetStatus(ctx, team.ID, models.TeamStatusBusy)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			log.WithError(err).Warn("Dispatch rejected")
		} else {
			log.WithError(err).Error("Failed to create dispatch")
		}
		return fmt.Errorf("service: could not create dispatch: %w", err)
	}

	log.WithField("dispatch_id", dispatch.ID).Info("Dispatch created successfully")
	s.notifier.NotifyNewDispatch(ctx, team, dispatch)
	return nil
}

// ListDispatches: диспетчер видит все вызовы, член бригады - только вызовы своей бригады
func (s *dispatchService) ListDispatches(ctx context.Context, requester *models.User, page, pageSize int) ([]*models.Dispatch, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "ListDispatches",
		"page":      page,
		"page_size": pageSize,
	})

	filter := models.DispatchFilter{Page: page, PageSize: pageSize}
	if !Authorize(requester, models.RoleDispatcher) {
		team, err := memberTeam(ctx, s.teams, requester)
		if err != nil {
			log.WithError(err).Error("Failed to resolve requester team")
			return nil, fmt.Errorf("service: could not list dispatches: %w", err)
		}
		if team == nil {
			return []*models.Dispatch{}, nil
		}
		filter.TeamID = &team.ID
	}

	dispatches, err := s.dispatches.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from repository")
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}

	log.WithField("count", len(dispatches)).Info("Dispatches listed successfully")
	return dispatches, nil
}

// GetDispatch получает вызов с проверкой принадлежности бригаде
func (s *dispatchService) GetDispatch(ctx context.Context, requester *models.User, id uuid.UUID) (*models.Dispatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "GetDispatch",
		"dispatch_id": id,
	})

	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get dispatch from repository")
		return nil, fmt.Errorf("service: could not get dispatch: %w", err)
	}

	if err := canAccessDispatch(ctx, s.teams, requester, dispatch); err != nil {
		log.WithError(err).Warn("Access to dispatch denied")
		return nil, err
	}
	return dispatch, nil
}

// DeleteDispatch удаляет вызов без восстановления статуса бригады
func (s *dispatchService) DeleteDispatch(ctx context.Context, requester *models.User, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "DeleteDispatch",
		"dispatch_id": id,
	})
	log.Info("Attempting to delete dispatch")

	if !Authorize(requester, models.RoleDispatcher) {
		log.Warn("Only a dispatcher can delete dispatches")
		return fmt.Errorf("only a dispatcher can delete dispatches: %w", ErrForbidden)
	}

	if err := s.dispatches.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete dispatch in repository")
		return fmt.Errorf("service: could not delete dispatch: %w", err)
	}

	log.Info("Dispatch deleted successfully")
	return nil
}

// memberTeam ищет бригаду, в составе которой числится пользователь; nil - если такой нет
func memberTeam(ctx context.Context, teams TeamRepository, user *models.User) (*models.Team, error) {
	if user == nil {
		return nil, nil
	}
	team, err := teams.FindByMember(ctx, user.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return team, nil
}

// canAccessDispatch: диспетчер - всегда, медик - только вызовы своей бригады
func canAccessDispatch(ctx context.Context, teams TeamRepository, user *models.User, dispatch *models.Dispatch) error {
	if user == nil || user.Disabled {
		return fmt.Errorf("no access to this dispatch: %w", ErrForbidden)
	}
	switch user.Role {
	case models.RoleDispatcher:
		return nil
	case models.RoleMedic:
		team, err := memberTeam(ctx, teams, user)
		if err != nil {
			return fmt.Errorf("service: could not resolve team: %w", err)
		}
		if team == nil || team.ID != dispatch.TeamID {
			return fmt.Errorf("no access to this dispatch: %w", ErrForbidden)
		}
		return nil
	}
	return fmt.Errorf("no access to this dispatch: %w", ErrForbidden)
}
