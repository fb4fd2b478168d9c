package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TeamStatus - доступность бригады
type TeamStatus string

const (
	TeamStatusAvailable TeamStatus = "available"
	TeamStatusBusy      TeamStatus = "busy"
)

// ParseTeamStatus допускает только available и busy
func ParseTeamStatus(s string) (TeamStatus, error) {
	switch st := TeamStatus(s); st {
	case TeamStatusAvailable, TeamStatusBusy:
		return st, nil
	}
	return "", fmt.Errorf("invalid team status %q, allowed values: available, busy", s)
}

func (s TeamStatus) String() string { return string(s) }

type Team struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Members             []string   `json:"members"`
	VehicleID           string     `json:"vehicle_id"`
	Status              TeamStatus `json:"status"`
	NotificationAddress *string    `json:"notification_address,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TeamUpdate - частичное обновление бригады, nil означает "не менять"
type TeamUpdate struct {
	Name                *string
	Members             []string
	VehicleID           *string
	Status              *TeamStatus
	NotificationAddress *string
}

// Apply переносит заданные поля в бригаду
func (u TeamUpdate) Apply(t *Team) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Members != nil {
		t.Members = u.Members
	}
	if u.VehicleID != nil {
		t.VehicleID = *u.VehicleID
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.NotificationAddress != nil {
		t.NotificationAddress = u.NotificationAddress
	}
}
