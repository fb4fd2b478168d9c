package models

import (
	"time"

	"github.com/google/uuid"
)

type VitalSigns struct {
	BloodPressure string  `json:"blood_pressure"`
	Pulse         int     `json:"pulse"`
	Temperature   float64 `json:"temperature"`
	Saturation    int     `json:"saturation"`
}

// MedicalForm - карта вызова, одна на каждый dispatch
type MedicalForm struct {
	ID          uuid.UUID  `json:"id"`
	DispatchID  uuid.UUID  `json:"dispatch_id"`
	PatientName string     `json:"patient_name"`
	PatientAge  int        `json:"patient_age"`
	Symptoms    []string   `json:"symptoms"`
	VitalSigns  VitalSigns `json:"vital_signs"`
	Procedures  []string   `json:"procedures"`
	Medications []string   `json:"medications"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
