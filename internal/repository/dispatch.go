package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service"
)

const dispatchColumns = `id, team_id, caller_name, caller_phone, address, description, status, created_at, completed_at`

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

func scanDispatch(row pgx.Row) (*models.Dispatch, error) {
	dispatch := &models.Dispatch{}
	var status string
	err := row.Scan(
		&dispatch.ID,
		&dispatch.TeamID,
		&dispatch.CallerName,
		&dispatch.CallerPhone,
		&dispatch.Address,
		&dispatch.Description,
		&status,
		&dispatch.CreatedAt,
		&dispatch.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if dispatch.Status, err = models.ParseDispatchStatus(status); err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", dispatch.ID, err)
	}
	return dispatch, nil
}

// Create создает запись о вызове
func (r *DispatchRepository) Create(ctx context.Context, dispatch *models.Dispatch) error {
	query := `
		INSERT INTO dispatches (team_id, caller_name, caller_phone, address, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		dispatch.TeamID,
		dispatch.CallerName,
		dispatch.CallerPhone,
		dispatch.Address,
		dispatch.Description,
		dispatch.Status,
		dispatch.CreatedAt,
	).Scan(&dispatch.ID)
	if err != nil {
		return translate(err, "dispatch")
	}
	return nil
}

// GetByID возвращает вызов по UUID
func (r *DispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1;`
	dispatch, err := scanDispatch(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("dispatch %s", id))
	}
	return dispatch, nil
}

// List возвращает вызовы, новые первыми
func (r *DispatchRepository) List(ctx context.Context, filter models.DispatchFilter) ([]*models.Dispatch, error) {
	offset := (filter.Page - 1) * filter.PageSize

	query := `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE ($1::uuid IS NULL OR team_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, filter.TeamID, filter.PageSize, offset)
	if err != nil {
		return nil, translate(err, "list dispatches")
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, translate(err, "scan dispatch row")
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list dispatches")
	}
	return dispatches, nil
}

// MarkCompleted переводит pending-вызов в completed; completed_at ставится один раз
func (r *DispatchRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	query := `
		UPDATE dispatches SET
			status = 'completed',
			completed_at = $2
		WHERE id = $1 AND status = 'pending';
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, id, completedAt)
	if err != nil {
		return translate(err, fmt.Sprintf("complete dispatch %s", id))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch %s is missing or already completed: %w", id, service.ErrConflict)
	}
	return nil
}

// Delete удаляет вызов вместе с картой вызова (ON DELETE CASCADE)
func (r *DispatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM dispatches WHERE id = $1;`, id)
	if err != nil {
		return translate(err, fmt.Sprintf("delete dispatch %s", id))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch %s: %w", id, service.ErrNotFound)
	}
	return nil
}
