package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

const currentUserKey = "current_user"

// BearerAuthMiddleware - middleware для аутентификации по токену доступа
func BearerAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			log.Debug("Bearer token missing from request")
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.WithError(err).Warn("Rejected access token")
				c.Header("WWW-Authenticate", "Bearer")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
				return
			}
			log.WithError(err).Error("Failed to authenticate request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser достает пользователя, положенного BearerAuthMiddleware
func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// @Summary Log in
// @Description Exchange username and password for a bearer access token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Missing credentials"
// @Failure 401 {object} map[string]string "Incorrect username or password"
// @Failure 503 {object} map[string]string "Login attempts store unavailable"
// @Router /token [post]
func (h *Handler) login(c *gin.Context) {
	var input TokenRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind login form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
		}
		h.respondError(c, log, err, "user")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token.AccessToken, TokenType: token.TokenType})
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/me [get]
func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
