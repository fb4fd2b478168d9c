package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// TeamService определяет контракт реестра бригад
type TeamService interface {
	CreateTeam(ctx context.Context, requester *models.User, team *models.Team) error
	ListTeams(ctx context.Context, page, pageSize int) ([]*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	UpdateTeam(ctx context.Context, requester *models.User, id uuid.UUID, update models.TeamUpdate) (*models.Team, error)
	SetTeamStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteTeam(ctx context.Context, requester *models.User, id uuid.UUID) error
}

type teamService struct {
	repo   TeamRepository
	logger *logrus.Logger
}

func NewTeamService(repo TeamRepository, logger *logrus.Logger) TeamService {
	return &teamService{
		repo:   repo,
		logger: logger,
	}
}

// CreateTeam создает бригаду в статусе available
func (s *teamService) CreateTeam(ctx context.Context, requester *models.User, team *models.Team) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "team",
		"method":  "CreateTeam",
		"name":    team.Name,
	})
	log.Info("Attempting to create a new team")

	if !Authorize(requester, models.RoleDispatcher) {
		log.Warn("Only a dispatcher can create teams")
		return fmt.Errorf("only a dispatcher can create teams: %w", ErrForbidden)
	}

	team.Status = models.TeamStatusAvailable
	if team.Members == nil {
		team.Members = []string{}
	}
	if err := s.repo.Create(ctx, team); err != nil {
		log.WithError(err).Warn("Failed to create team in repository")
		return fmt.Errorf("service: could not create team: %w", err)
	}

	log.WithField("team_id", team.ID).Info("Team created successfully")
	return nil
}

// ListTeams возвращает список бригад с пагинацией
func (s *teamService) ListTeams(ctx context.Context, page, pageSize int) ([]*models.Team, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "team",
		"method":    "ListTeams",
		"page":      page,
		"page_size": pageSize,
	})

	teams, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list teams from repository")
		return nil, fmt.Errorf("service: could not list teams: %w", err)
	}

	log.WithField("count", len(teams)).Info("Teams listed successfully")
	return teams, nil
}

// GetTeam получает бригаду по ID
func (s *teamService) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "team",
			"method":  "GetTeam",
			"team_id": id,
		}).WithError(err).Warn("Failed to get team from repository")
		return nil, fmt.Errorf("service: could not get team: %w", err)
	}
	return team, nil
}

// UpdateTeam применяет частичное обновление
func (s *teamService) UpdateTeam(ctx context.Context, requester *models.User, id uuid.UUID, update models.TeamUpdate) (*models.Team, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "team",
		"method":  "UpdateTeam",
		"team_id": id,
	})
	log.Info("Attempting to update team")

	if !Authorize(requester, models.RoleDispatcher) {
		log.Warn("Only a dispatcher can update teams")
		return nil, fmt.Errorf("only a dispatcher can update teams: %w", ErrForbidden)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent team")
		return nil, fmt.Errorf("service: team %s not found for update: %w", id, err)
	}

	update.Apply(existing)
	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Warn("Failed to update team in repository")
		return nil, fmt.Errorf("service: could not update team: %w", err)
	}
	if update.Status != nil {
		if err := s.repo.SetStatus(ctx, id, *update.Status); err != nil {
			log.WithError(err).Warn("Failed to update team status in repository")
			return nil, fmt.Errorf("service: could not update team status: %w", err)
		}
	}

	log.Info("Team updated successfully")
	return existing, nil
}

// SetTeamStatus переключает статус бригады между available и busy
func (s *teamService) SetTeamStatus(ctx context.Context, id uuid.UUID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "team",
		"method":  "SetTeamStatus",
		"team_id": id,
		"status":  status,
	})

	parsed, err := models.ParseTeamStatus(status)
	if err != nil {
		log.WithError(err).Warn("Rejected team status")
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}

	if err := s.repo.SetStatus(ctx, id, parsed); err != nil {
		log.WithError(err).Warn("Failed to set team status in repository")
		return fmt.Errorf("service: could not set team status: %w", err)
	}

	log.Info("Team status updated")
	return nil
}

// DeleteTeam удаляет бригаду; вызовы этой бригады остаются
func (s *teamService) DeleteTeam(ctx context.Context, requester *models.User, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "team",
		"method":  "DeleteTeam",
		"team_id": id,
	})
	log.Info("Attempting to delete team")

	if !Authorize(requester, models.RoleDispatcher) {
		log.Warn("Only a dispatcher can delete teams")
		return fmt.Errorf("only a dispatcher can delete teams: %w", ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete team in repository")
		return fmt.Errorf("service: could not delete team: %w", err)
	}

	log.Info("Team deleted successfully")
	return nil
}
