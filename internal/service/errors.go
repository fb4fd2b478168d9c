package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("service unavailable")

	ErrInvalidCredentials   = fmt.Errorf("incorrect username or password: %w", ErrUnauthorized)
	ErrTooManyLoginAttempts = fmt.Errorf("too many failed login attempts: %w", ErrUnauthorized)
	ErrTeamBusy             = fmt.Errorf("team is already busy: %w", ErrConflict)
)
