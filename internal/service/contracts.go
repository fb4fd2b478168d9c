package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks/contracts.go -package=mocks

// Transactor выполняет fn в одной транзакции хранилища
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository определяет контракт для хранилища пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// LoginAttemptStore считает неудачные попытки входа
type LoginAttemptStore interface {
	Count(ctx context.Context, username string) (int, error)
	Increment(ctx context.Context, username string, window time.Duration) (int, error)
	Reset(ctx context.Context, username string) error
}

// TeamRepository определяет контракт для хранилища бригад
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Team, error)
	FindByMember(ctx context.Context, username string) (*models.Team, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	SetStatus(ctx context.Context, id uuid.UUID, status models.TeamStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DispatchRepository определяет контракт для хранилища вызовов
type DispatchRepository interface {
	Create(ctx context.Context, dispatch *models.Dispatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error)
	List(ctx context.Context, filter models.DispatchFilter) ([]*models.Dispatch, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MedicalFormRepository определяет контракт для хранилища карт вызова
type MedicalFormRepository interface {
	Create(ctx context.Context, form *models.MedicalForm) error
	GetByDispatchID(ctx context.Context, dispatchID uuid.UUID) (*models.MedicalForm, error)
}

// PushTokenStore хранит зарегистрированные адреса push-уведомлений
type PushTokenStore interface {
	// Add возвращает true, если адрес был добавлен впервые
	Add(ctx context.Context, token string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
