package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a new dispatch
// @Description Assign a new dispatch to an available team; the team becomes busy. Dispatcher only.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dispatch body CreateDispatchRequest true "Dispatch creation request"
// @Success 201 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or team is busy"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a dispatcher"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dispatches [post]
func (h *Handler) createDispatch(c *gin.Context) {
	var input CreateDispatchRequest
	log := h.logger.WithField("method", "createDispatch")

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

	model := DTOToDispatchModel(input)
	if err := h.dispatchService.CreateDispatch(c.Request.Context(), currentUser(c), model); err != nil {
		h.respondError(c, log, err, "team")
		return
	}
	c.JSON(http.StatusCreated, ModelToDispatchResponse(model))
}

// @Summary Get a list of dispatches
// @Description Dispatchers see every dispatch, team members only those of their own team. Newest first.
// @Tags Dispatches
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(50)
// @Success 200 {array} DispatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dispatches [get]
func (h *Handler) listDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "listDispatches")
	page, pageSize := pagination(c)

	dispatches, err := h.dispatchService.ListDispatches(c.Request.Context(), currentUser(c), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "dispatch")
		return
	}

	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}

// @Summary Get dispatch by ID
// @Tags Dispatches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispatch ID"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Dispatch belongs to another team"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Router /api/dispatches/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	dispatch, err := h.dispatchService.GetDispatch(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.respondError(c, log, err, "dispatch")
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(dispatch))
}

// @Summary Delete a dispatch
// @Description Delete a dispatch and its medical form. The team status is not restored. Dispatcher only.
// @Tags Dispatches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispatch ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a dispatcher"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Router /api/dispatches/{id} [delete]
func (h *Handler) deleteDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "deleteDispatch").WithField("id", id)

	if err := h.dispatchService.DeleteDispatch(c.Request.Context(), currentUser(c), id); err != nil {
		h.respondError(c, log, err, "dispatch")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "dispatch deleted"})
}
