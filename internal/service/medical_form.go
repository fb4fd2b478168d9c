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

// MedicalFormService определяет контракт хранилища карт вызова
type MedicalFormService interface {
	CreateMedicalForm(ctx context.Context, requester *models.User, form *models.MedicalForm) error
	GetMedicalForm(ctx context.Context, requester *models.User, dispatchID uuid.UUID) (*models.MedicalForm, error)
}

type medicalFormService struct {
	tx         Transactor
	forms      MedicalFormRepository
	dispatches DispatchRepository
	teams      TeamRepository
	logger     *logrus.Logger
	now        func() time.Time
}

func NewMedicalFormService(tx Transactor, forms MedicalFormRepository, dispatches DispatchRepository, teams TeamRepository, logger *logrus.Logger) MedicalFormService {
	return &medicalFormService{
		tx:         tx,
		forms:      forms,
		dispatches: dispatches,
		teams:      teams,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateMedicalForm сохраняет карту, завершает вызов и освобождает бригаду в одной транзакции
func (s *medicalFormService) CreateMedicalForm(ctx context.Context, requester *models.User, form *models.MedicalForm) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "medical_form",
		"method":      "CreateMedicalForm",
		"dispatch_id": form.DispatchID,
	})
	log.Info("Attempting to file a medical form")

	if !Authorize(requester, models.RoleMedic) {
		log.Warn("Only a medic can file medical forms")
		return fmt.Errorf("only a medic can file medical forms: %w", ErrForbidden)
	}

	dispatch, err := s.dispatches.GetByID(ctx, form.DispatchID)
	if err != nil {
		log.WithError(err).Warn("Dispatch for medical form not found")
		return fmt.Errorf("service: could not get dispatch: %w", err)
	}

	team, err := memberTeam(ctx, s.teams, requester)
	if err != nil {
		log.WithError(err).Error("Failed to resolve requester team")
		return fmt.Errorf("service: could not resolve team: %w", err)
	}
	if team == nil || team.ID != dispatch.TeamID {
		log.Warn("Medic is not on the assigned team")
		return fmt.Errorf("no access to this dispatch: %w", ErrForbidden)
	}

	switch dispatch.Status {
	case models.DispatchStatusPending:
	case models.DispatchStatusCompleted:
		log.Warn("Dispatch already completed")
		return fmt.Errorf("dispatch %s is already completed: %w", dispatch.ID, ErrConflict)
	default:
		return fmt.Errorf("dispatch %s has unknown status %q", dispatch.ID, dispatch.Status)
	}

	now := s.now().UTC()
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		form.CreatedAt = now
		if err := s.forms.Create(ctx, form); err != nil {
			return err
		}
		if err := s.dispatches.MarkCompleted(ctx, dispatch.ID, now); err != nil {
			return err
		}
		return s.teams.SetStatus(ctx, dispatch.TeamID, models.TeamStatusAvailable)
	})
	if err != nil {
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) {
			log.WithError(err).Warn("Medical form rejected")
		} else {
			log.WithError(err).Error("Failed to file medical form")
		}
		return fmt.Errorf("service: could not create medical form: %w", err)
	}

	log.WithField("form_id", form.ID).Info("Medical form filed, dispatch completed")
	return nil
}

// GetMedicalForm возвращает карту вызова; права как у GetDispatch
func (s *medicalFormService) GetMedicalForm(ctx context.Context, requester *models.User, dispatchID uuid.UUID) (*models.MedicalForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "medical_form",
		"method":      "GetMedicalForm",
		"dispatch_id": dispatchID,
	})

	form, err := s.forms.GetByDispatchID(ctx, dispatchID)
	if err != nil {
		log.WithError(err).Warn("Failed to get medical form from repository")
		return nil, fmt.Errorf("service: could not get medical form: %w", err)
	}

	if !Authorize(requester, models.RoleDispatcher) {
		dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("no access to this medical form: %w", ErrForbidden)
			}
			return nil, fmt.Errorf("service: could not get dispatch: %w", err)
		}
		if err := canAccessDispatch(ctx, s.teams, requester, dispatch); err != nil {
			log.WithError(err).Warn("Access to medical form denied")
			return nil, err
		}
	}
	return form, nil
}
