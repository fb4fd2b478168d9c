package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service"
)

const teamColumns = `id, name, members, vehicle_id, status, notification_address, created_at, updated_at`

type TeamRepository struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) service.TeamRepository {
	return &TeamRepository{db: db}
}

func scanTeam(row pgx.Row) (*models.Team, error) {
	team := &models.Team{}
	var status string
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Members,
		&team.VehicleID,
		&status,
		&team.NotificationAddress,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if team.Status, err = models.ParseTeamStatus(status); err != nil {
		return nil, fmt.Errorf("team %s: %w", team.ID, err)
	}
	return team, nil
}

// Create создает бригаду; имя уникально
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, members, vehicle_id, status, notification_address)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		team.Name,
		team.Members,
		team.VehicleID,
		team.Status,
		team.NotificationAddress,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return translate(err, fmt.Sprintf("team %q", team.Name))
	}
	return nil
}

// GetByID возвращает бригаду по UUID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1;`
	team, err := scanTeam(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("team %s", id))
	}
	return team, nil
}

// GetByIDForUpdate блокирует строку бригады до конца текущей транзакции
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1 FOR UPDATE;`
	team, err := scanTeam(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("team %s", id))
	}
	return team, nil
}

// FindByMember находит бригаду, в составе которой есть пользователь
func (r *TeamRepository) FindByMember(ctx context.Context, username string) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE $1 = ANY(members) ORDER BY created_at LIMIT 1;`
	team, err := scanTeam(conn(ctx, r.db).QueryRow(ctx, query, username))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("team of member %q", username))
	}
	return team, nil
}

// List возвращает список бригад с пагинацией
func (r *TeamRepository) List(ctx context.Context, page, pageSize int) ([]*models.Team, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := conn(ctx, r.db).Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, translate(err, "list teams")
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, translate(err, "scan team row")
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list teams")
	}
	return teams, nil
}

// Update сохраняет описание бригады; статус меняется только через SetStatus
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams SET
			name = $1,
			members = $2,
			vehicle_id = $3,
			notification_address = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		team.Name,
		team.Members,
		team.VehicleID,
		team.NotificationAddress,
		team.ID,
	).Scan(&team.UpdatedAt)
	if err != nil {
		return translate(err, fmt.Sprintf("team %q", team.Name))
	}
	return nil
}

// SetStatus меняет только статус бригады
func (r *TeamRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.TeamStatus) error {
	query := `UPDATE teams SET status = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, status, id)
	if err != nil {
		return translate(err, fmt.Sprintf("set status of team %s", id))
	}

	// RowsAffected() == 0 значит бригады с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("team %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM teams WHERE id = $1;`, id)
	if err != nil {
		return translate(err, fmt.Sprintf("delete team %s", id))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("team %s: %w", id, service.ErrNotFound)
	}
	return nil
}
