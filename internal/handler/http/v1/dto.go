package v1

import (
	"time"

	"github.com/google/uuid"
)

// TokenRequest - форма входа (application/x-www-form-urlencoded)
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse DTO с токеном доступа
// @Description DTO с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse DTO текущего пользователя
// @Description DTO текущего пользователя
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name,omitempty"`
	Role     string    `json:"role"`
	Disabled bool      `json:"disabled"`
}

// CreateTeamRequest DTO для создания бригады
// @Description DTO для создания бригады
type CreateTeamRequest struct {
	Name                string   `json:"name" validate:"required,max=255"`
	Members             []string `json:"members" validate:"dive,required"`
	VehicleID           string   `json:"vehicle_id" validate:"required"`
	NotificationAddress *string  `json:"notification_address,omitempty" validate:"omitempty,min=1"`
}

// UpdateTeamRequest DTO для частичного обновления бригады
// @Description DTO для частичного обновления бригады
type UpdateTeamRequest struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Members             []string `json:"members,omitempty" validate:"omitempty,dive,required"`
	VehicleID           *string  `json:"vehicle_id,omitempty" validate:"omitempty,min=1"`
	Status              *string  `json:"status,omitempty" validate:"omitempty,oneof=available busy"`
	NotificationAddress *string  `json:"notification_address,omitempty" validate:"omitempty,min=1"`
}

// TeamStatusRequest DTO для смены статуса бригады
// @Description DTO для смены статуса бригады
type TeamStatusRequest struct {
	Status string `json:"status"`
}

// TeamResponse DTO для ответа с информацией о бригаде
// @Description DTO для ответа с информацией о бригаде
type TeamResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Members             []string  `json:"members"`
	VehicleID           string    `json:"vehicle_id"`
	Status              string    `json:"status"`
	NotificationAddress *string   `json:"notification_address,omitempty"`
}

// CreateDispatchRequest DTO для создания вызова
// @Description DTO для создания вызова
type CreateDispatchRequest struct {
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	CallerName  string    `json:"caller_name" validate:"required,max=255"`
	CallerPhone string    `json:"caller_phone" validate:"required,max=64"`
	Address     string    `json:"address" validate:"required"`
	Description string    `json:"description,omitempty"`
}

// DispatchResponse DTO для ответа с информацией о вызове
// @Description DTO для ответа с информацией о вызове
type DispatchResponse struct {
	ID          uuid.UUID  `json:"id"`
	TeamID      uuid.UUID  `json:"team_id"`
	CallerName  string     `json:"caller_name"`
	CallerPhone string     `json:"caller_phone"`
	Address     string     `json:"address"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// VitalSignsDTO - основные показатели пациента
type VitalSignsDTO struct {
	BloodPressure string  `json:"blood_pressure" validate:"required"`
	Pulse         int     `json:"pulse" validate:"gte=0,lte=300"`
	Temperature   float64 `json:"temperature" validate:"gte=0,lte=50"`
	Saturation    int     `json:"saturation" validate:"gte=0,lte=100"`
}

// CreateMedicalFormRequest DTO карты вызова
// @Description DTO карты вызова
type CreateMedicalFormRequest struct {
	PatientName string        `json:"patient_name" validate:"required,max=255"`
	PatientAge  int           `json:"patient_age" validate:"gte=0,lte=150"`
	Symptoms    []string      `json:"symptoms" validate:"dive,required"`
	VitalSigns  VitalSignsDTO `json:"vital_signs"`
	Procedures  []string      `json:"procedures" validate:"dive,required"`
	Medications []string      `json:"medications" validate:"dive,required"`
	Notes       *string       `json:"notes,omitempty"`
}

// MedicalFormResponse DTO для ответа с картой вызова
// @Description DTO для ответа с картой вызова
type MedicalFormResponse struct {
	ID          uuid.UUID     `json:"id"`
	DispatchID  uuid.UUID     `json:"dispatch_id"`
	PatientName string        `json:"patient_name"`
	PatientAge  int           `json:"patient_age"`
	Symptoms    []string      `json:"symptoms"`
	VitalSigns  VitalSignsDTO `json:"vital_signs"`
	Procedures  []string      `json:"procedures"`
	Medications []string      `json:"medications"`
	Notes       *string       `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PushTokenRequest DTO регистрации push-адреса
// @Description DTO регистрации push-адреса
type PushTokenRequest struct {
	ExpoPushToken string `json:"expoPushToken"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
