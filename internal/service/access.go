package service

import "github.com/shenikar/medical_dispatch/internal/models"

// Authorize - чистый предикат доступа: есть ли у пользователя требуемая роль
func Authorize(user *models.User, required models.Role) bool {
	if user == nil || user.Disabled {
		return false
	}
	switch required {
	case models.RoleDispatcher:
		return user.Role == models.RoleDispatcher
	case models.RoleMedic:
		return user.Role == models.RoleMedic
	}
	return false
}

// normalizePage приводит параметры пагинации к допустимым значениям
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	if pageSize > 1000 {
		pageSize = 1000
	}
	return page, pageSize
}
