package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя в системе
type Role string

const (
	RoleDispatcher Role = "dispatcher"
	RoleMedic      Role = "medic"
)

// ParseRole преобразует строку в роль, неизвестные значения отклоняются
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleDispatcher, RoleMedic:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name,omitempty"`
	Role           Role      `json:"role"`
	HashedPassword string    `json:"-"`
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
}

// Token - выданный токен доступа
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
