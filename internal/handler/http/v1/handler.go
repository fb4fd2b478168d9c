package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/shenikar/medical_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	serviceName    = "Medical Dispatch API"
	serviceVersion = "1.0.0"
)

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Auth         service.AuthService
	Teams        service.TeamService
	Dispatches   service.DispatchService
	MedicalForms service.MedicalFormService
	Notification service.NotificationService
}

type Handler struct {
	authService         service.AuthService
	teamService         service.TeamService
	dispatchService     service.DispatchService
	medicalFormService  service.MedicalFormService
	notificationService service.NotificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
	now                 func() time.Time
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:         services.Auth,
		teamService:         services.Teams,
		dispatchService:     services.Dispatches,
		medicalFormService:  services.MedicalForms,
		notificationService: services.Notification,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
		now:                 time.Now,
	}
}

// pagination читает page и pageSize; границы нормализует сервис
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	return page, pageSize
}

// @Summary Service info
// @Description Get service name, version and status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": serviceVersion,
		"status":  "running",
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status healthy"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// @Summary Register push token
// @Description Register a device push address that receives new dispatch notifications
// @Tags Notifications
// @Accept json
// @Produce json
// @Param token body PushTokenRequest true "Push token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Missing push token"
// @Failure 503 {object} map[string]string "Token store unavailable"
// @Router /api/push-token [post]
func (h *Handler) registerPushToken(c *gin.Context) {
	var input PushTokenRequest
	log := h.logger.WithField("method", "registerPushToken")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(input.ExpoPushToken) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing push token"})
		return
	}

	if err := h.notificationService.RegisterPushToken(c.Request.Context(), input.ExpoPushToken); err != nil {
		h.respondError(c, log, err, "push token")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "push token registered"})
}
