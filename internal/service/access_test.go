package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newDispatcher() *models.User {
	return &models.User{ID: uuid.New(), Username: "disp", Role: models.RoleDispatcher}
}

func newMedic(username string) *models.User {
	return &models.User{ID: uuid.New(), Username: username, Role: models.RoleMedic}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		required models.Role
		want     bool
	}{
		{"dispatcher as dispatcher", newDispatcher(), models.RoleDispatcher, true},
		{"medic as dispatcher", newMedic("m1"), models.RoleDispatcher, false},
		{"medic as medic", newMedic("m1"), models.RoleMedic, true},
		{"dispatcher as medic", newDispatcher(), models.RoleMedic, false},
		{"nil user", nil, models.RoleDispatcher, false},
		{"disabled dispatcher", &models.User{Role: models.RoleDispatcher, Disabled: true}, models.RoleDispatcher, false},
		{"unknown required role", newDispatcher(), models.Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.user, tt.required))
		})
	}
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 50, size)

	page, size = normalizePage(3, 5000)
	assert.Equal(t, 3, page)
	assert.Equal(t, 1000, size)

	page, size = normalizePage(-2, 20)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)
}
