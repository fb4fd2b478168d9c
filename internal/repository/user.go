package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Create создает пользователя; username уникален
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, full_name, hashed_password, role, disabled)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		user.Username,
		user.FullName,
		user.HashedPassword,
		user.Role,
		user.Disabled,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translate(err, "user "+user.Username)
	}
	return nil
}

// GetByUsername возвращает пользователя по логину
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, full_name, hashed_password, role, disabled, created_at
		FROM users
		WHERE username = $1;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.HashedPassword,
		&user.Role,
		&user.Disabled,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "user "+username)
	}
	return user, nil
}
