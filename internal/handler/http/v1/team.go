package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a new team
// @Description Create a new ambulance team. Dispatcher only.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a dispatcher"
// @Failure 409 {object} map[string]string "Team name already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/teams [post]
func (h *Handler) createTeam(c *gin.Context) {
	var input CreateTeamRequest
	log := h.logger.WithField("method", "createTeam")

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

	model := DTOToTeamModel(input)
	if err := h.teamService.CreateTeam(c.Request.Context(), currentUser(c), model); err != nil {
		h.respondError(c, log, err, "team")
		return
	}
	c.JSON(http.StatusCreated, ModelToTeamResponse(model))
}

// @Summary Get a list of teams
// @Description Get a paginated list of teams ordered by name
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(50)
// @Success 200 {array} TeamResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/teams [get]
func (h *Handler) listTeams(c *gin.Context) {
	log := h.logger.WithField("method", "listTeams")
	page, pageSize := pagination(c)

	teams, err := h.teamService.ListTeams(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "team")
		return
	}

	c.JSON(http.StatusOK, ModelsToTeamResponses(teams))
}

// @Summary Get team by ID
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} map[string]string "Invalid team ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/teams/{id} [get]
func (h *Handler) getTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	log := h.logger.WithField("method", "getTeam").WithField("id", id)

	team, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "team")
		return
	}
	c.JSON(http.StatusOK, ModelToTeamResponse(team))
}

// @Summary Update a team
// @Description Partially update a team; omitted fields stay unchanged. Dispatcher only.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param team body UpdateTeamRequest true "Team update request"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} map[string]string "Invalid team ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a dispatcher"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 409 {object} map[string]string "Team name already taken"
// @Router /api/teams/{id} [put]
func (h *Handler) updateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	log := h.logger.WithField("method", "updateTeam").WithField("id", id)

	var input UpdateTeamRequest
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

	team, err := h.teamService.UpdateTeam(c.Request.Context(), currentUser(c), id, DTOToTeamUpdate(input))
	if err != nil {
		h.respondError(c, log, err, "team")
		return
	}
	c.JSON(http.StatusOK, ModelToTeamResponse(team))
}

// @Summary Set team status
// @Description Switch team status between available and busy. The status is read from the JSON body or the status query parameter.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param status query string false "New status" Enums(available, busy)
// @Param body body TeamStatusRequest false "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/teams/{id}/status [patch]
func (h *Handler) setTeamStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	log := h.logger.WithField("method", "setTeamStatus").WithField("id", id)

	status := c.Query("status")
	if c.Request.ContentLength != 0 {
		var input TeamStatusRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if input.Status != "" {
			status = input.Status
		}
	}

	if err := h.teamService.SetTeamStatus(c.Request.Context(), id, status); err != nil {
		h.respondError(c, log, err, "team")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "team status updated to " + status})
}

// @Summary Delete a team
// @Description Delete a team by ID. Its dispatches are kept. Dispatcher only.
// @Tags Teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid team ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a dispatcher"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/teams/{id} [delete]
func (h *Handler) deleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	log := h.logger.WithField("method", "deleteTeam").WithField("id", id)

	if err := h.teamService.DeleteTeam(c.Request.Context(), currentUser(c), id); err != nil {
		h.respondError(c, log, err, "team")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "team deleted"})
}
