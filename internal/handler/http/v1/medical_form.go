package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary File a medical form
// @Description File the completion form for a dispatch. Completes the dispatch and frees the team. Medic on the assigned team only.
// @Tags Medical forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispatch ID"
// @Param form body CreateMedicalFormRequest true "Medical form"
// @Success 201 {object} MedicalFormResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a medic on the assigned team"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Failure 409 {object} map[string]string "Dispatch already completed"
// @Router /api/dispatches/{id}/medical-form [post]
func (h *Handler) createMedicalForm(c *gin.Context) {
	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "createMedicalForm").WithField("dispatch_id", dispatchID)

	var input CreateMedicalFormRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMedicalFormModel(input)
	model.DispatchID = dispatchID
	if err := h.medicalFormService.CreateMedicalForm(c.Request.Context(), currentUser(c), model); err != nil {
		h.respondError(c, log, err, "medical form")
		return
	}
	c.JSON(http.StatusCreated, ModelToMedicalFormResponse(model))
}

// @Summary Get the medical form of a dispatch
// @Tags Medical forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispatch ID"
// @Success 200 {object} MedicalFormResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Dispatch belongs to another team"
// @Failure 404 {object} map[string]string "Medical form not found"
// @Router /api/dispatches/{id}/medical-form [get]
func (h *Handler) getMedicalForm(c *gin.Context) {
	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "getMedicalForm").WithField("dispatch_id", dispatchID)

	form, err := h.medicalFormService.GetMedicalForm(c.Request.Context(), currentUser(c), dispatchID)
	if err != nil {
		h.respondError(c, log, err, "medical form")
		return
	}
	c.JSON(http.StatusOK, ModelToMedicalFormResponse(form))
}
