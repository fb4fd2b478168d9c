package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(root *gin.RouterGroup) {
	root.GET("/", h.root)
	root.GET("/health", h.healthCheck)

	// Вход по форме, токен в ответе
	root.POST("/token", h.login)

	// Регистрация push-адреса без аутентификации
	root.POST("/api/push-token", h.registerPushToken)

	authed := root.Group("", BearerAuthMiddleware(h.authService, h.logger))
	authed.GET("/users/me", h.me)

	teams := authed.Group("/api/teams")
	{
		teams.POST("", h.createTeam)
		teams.GET("", h.listTeams)
		teams.GET("/:id", h.getTeam)
		teams.PUT("/:id", h.updateTeam)
		teams.PATCH("/:id/status", h.setTeamStatus)
		teams.DELETE("/:id", h.deleteTeam)
	}

	dispatches := authed.Group("/api/dispatches")
	{
		dispatches.POST("", h.createDispatch)
		dispatches.GET("", h.listDispatches)
		dispatches.GET("/:id", h.getDispatch)
		dispatches.DELETE("/:id", h.deleteDispatch)
		dispatches.POST("/:id/medical-form", h.createMedicalForm)
		dispatches.GET("/:id/medical-form", h.getMedicalForm)
	}
}
