package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/medical_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// respondError переводит ошибку сервиса в HTTP-ответ.
// ErrTeamBusy проверяется раньше ErrConflict: занятая бригада - это 400.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, resource string) {
	switch {
	case errors.Is(err, service.ErrTeamBusy):
		log.WithError(err).Warn("Team is busy")
		c.JSON(http.StatusBadRequest, gin.H{"error": "team is already busy"})
	case errors.Is(err, service.ErrTooManyLoginAttempts):
		log.WithError(err).Warn("Login locked out")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "too many failed login attempts, try again later"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
	case errors.Is(err, service.ErrForbidden):
		log.WithError(err).Warn("Operation not permitted")
		c.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Conflicting request")
		c.JSON(http.StatusConflict, gin.H{"error": resource + " already exists or is in a conflicting state"})
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn("Invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidArgumentMessage(err)})
	case errors.Is(err, service.ErrUnavailable):
		log.WithError(err).Error("Dependency unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func invalidArgumentMessage(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+service.ErrInvalidArgument.Error())
	if msg == "" || msg == err.Error() {
		return "invalid argument"
	}
	return msg
}

// RecoveryMiddleware отвечает 500 без деталей вместо паники
func RecoveryMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
