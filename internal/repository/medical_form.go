package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service"
)

type MedicalFormRepository struct {
	db *pgxpool.Pool
}

func NewMedicalFormRepository(db *pgxpool.Pool) service.MedicalFormRepository {
	return &MedicalFormRepository{db: db}
}

// Create сохраняет карту вызова; UNIQUE(dispatch_id) не дает создать вторую
func (r *MedicalFormRepository) Create(ctx context.Context, form *models.MedicalForm) error {
	query := `
		INSERT INTO medical_forms (
			dispatch_id, patient_name, patient_age, symptoms, vital_signs,
			procedures, medications, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		form.DispatchID,
		form.PatientName,
		form.PatientAge,
		form.Symptoms,
		form.VitalSigns,
		form.Procedures,
		form.Medications,
		form.Notes,
		form.CreatedAt,
	).Scan(&form.ID)
	if err != nil {
		return translate(err, fmt.Sprintf("medical form for dispatch %s", form.DispatchID))
	}
	return nil
}

// GetByDispatchID возвращает карту вызова по id вызова
func (r *MedicalFormRepository) GetByDispatchID(ctx context.Context, dispatchID uuid.UUID) (*models.MedicalForm, error) {
	form := &models.MedicalForm{}
	query := `
		SELECT id, dispatch_id, patient_name, patient_age, symptoms, vital_signs,
			procedures, medications, notes, created_at
		FROM medical_forms
		WHERE dispatch_id = $1;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query, dispatchID).Scan(
		&form.ID,
		&form.DispatchID,
		&form.PatientName,
		&form.PatientAge,
		&form.Symptoms,
		&form.VitalSigns,
		&form.Procedures,
		&form.Medications,
		&form.Notes,
		&form.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("medical form for dispatch %s", dispatchID))
	}
	return form, nil
}
