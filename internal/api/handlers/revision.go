package handlers

import (
	"net/http"
	"strconv"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RevisionHandler handles HTTP requests for revisions
type RevisionHandler struct {
	service service.RevisionServiceInterface
}

// NewRevisionHandler creates a new revision handler
func NewRevisionHandler(service service.RevisionServiceInterface) *RevisionHandler {
	return &RevisionHandler{service: service}
}

// CreateRevision handles POST /api/v1/revisions
// @Summary Create a new revision
// @Description Create a system revision to hold hardware, growth tests and survival data
// @Tags revisions
// @Accept json
// @Produce json
// @Param revision body service.CreateRevisionRequest true "Revision data"
// @Success 201 {object} service.RevisionResponse "Successfully created revision"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Revision already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions [post]
func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	var req service.CreateRevisionRequest
	if !bindJSON(c, &req) {
		return
	}

	revision, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create revision")
		return
	}

	c.JSON(http.StatusCreated, revision)
}

// GetRevision handles GET /api/v1/revisions/:id
// @Summary Get revision by ID
// @Description Get a revision and its last calculated totals
// @Tags revisions
// @Produce json
// @Param id path string true "Revision ID (UUID)"
// @Success 200 {object} service.RevisionResponse "Successfully retrieved revision"
// @Failure 400 {object} map[string]interface{} "Invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id} [get]
func (h *RevisionHandler) GetRevision(c *gin.Context) {
	id, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	revision, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get revision")
		return
	}

	c.JSON(http.StatusOK, revision)
}

// ListRevisions handles GET /api/v1/revisions
// @Summary List all revisions
// @Description Get all revisions with pagination support
// @Tags revisions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RevisionListResponse "Successfully retrieved revisions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions [get]
func (h *RevisionHandler) ListRevisions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	revisions, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get revisions")
		return
	}

	c.JSON(http.StatusOK, revisions)
}

// UpdateRevision handles PUT /api/v1/revisions/:id
// @Summary Update revision
// @Description Update the title, description or mission time of a revision
// @Tags revisions
// @Accept json
// @Produce json
// @Param id path string true "Revision ID (UUID)"
// @Param revision body service.UpdateRevisionRequest true "Updated revision data"
// @Success 200 {object} service.RevisionResponse "Successfully updated revision"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id} [put]
func (h *RevisionHandler) UpdateRevision(c *gin.Context) {
	id, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	var req service.UpdateRevisionRequest
	if !bindJSON(c, &req) {
		return
	}

	revision, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update revision")
		return
	}

	c.JSON(http.StatusOK, revision)
}

// DeleteRevision handles DELETE /api/v1/revisions/:id
// @Summary Delete revision
// @Description Delete a revision with its hardware, growth tests and survival data
// @Tags revisions
// @Param id path string true "Revision ID (UUID)"
// @Success 204 "Successfully deleted revision"
// @Failure 400 {object} map[string]interface{} "Invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id} [delete]
func (h *RevisionHandler) DeleteRevision(c *gin.Context) {
	id, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete revision")
		return
	}

	c.Status(http.StatusNoContent)
}
