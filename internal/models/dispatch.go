package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DispatchStatus - состояние вызова, переход только pending -> completed
type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "pending"
	DispatchStatusCompleted DispatchStatus = "completed"
)

func ParseDispatchStatus(s string) (DispatchStatus, error) {
	switch st := DispatchStatus(s); st {
	case DispatchStatusPending, DispatchStatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("invalid dispatch status %q", s)
}

type Dispatch struct {
	ID          uuid.UUID      `json:"id"`
	TeamID      uuid.UUID      `json:"team_id"`
	CallerName  string         `json:"caller_name"`
	CallerPhone string         `json:"caller_phone"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Status      DispatchStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// DispatchFilter ограничивает выборку вызовов; TeamID == nil означает все бригады
type DispatchFilter struct {
	TeamID   *uuid.UUID
	Page     int
	PageSize int
}
