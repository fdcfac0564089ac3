package handlers

import (
	"net/http"
	"strconv"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GrowthHandler handles HTTP requests for reliability growth tests
type GrowthHandler struct {
	service service.GrowthServiceInterface
}

// NewGrowthHandler creates a new growth handler
func NewGrowthHandler(service service.GrowthServiceInterface) *GrowthHandler {
	return &GrowthHandler{service: service}
}

// CreateGrowthTest handles POST /api/v1/growth-tests
// @Summary Create a growth test
// @Description Create a reliability growth test in a revision
// @Tags growth
// @Accept json
// @Produce json
// @Param test body service.CreateGrowthTestRequest true "Growth test data"
// @Success 201 {object} service.GrowthTestResponse "Successfully created growth test"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 409 {object} map[string]interface{} "Growth test already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests [post]
func (h *GrowthHandler) CreateGrowthTest(c *gin.Context) {
	var req service.CreateGrowthTestRequest
	if !bindJSON(c, &req) {
		return
	}

	test, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create growth test")
		return
	}

	c.JSON(http.StatusCreated, test)
}

// ListGrowthTests handles GET /api/v1/growth-tests
// @Summary List growth tests of a revision
// @Description Get the growth tests of a revision with pagination support
// @Tags growth
// @Produce json
// @Param revision_id query string true "Revision ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GrowthTestListResponse "Successfully retrieved growth tests"
// @Failure 400 {object} map[string]interface{} "Missing or invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests [get]
func (h *GrowthHandler) ListGrowthTests(c *gin.Context) {
	revisionID, err := uuid.Parse(c.Query("revision_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "revision_id query parameter must be a valid UUID"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tests, err := h.service.GetByRevision(revisionID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get growth tests")
		return
	}

	c.JSON(http.StatusOK, tests)
}

// GetGrowthTest handles GET /api/v1/growth-tests/:id
// @Summary Get growth test by ID
// @Description Get a growth test with its last fit
// @Tags growth
// @Produce json
// @Param id path string true "Growth test ID (UUID)"
// @Success 200 {object} service.GrowthTestResponse "Successfully retrieved growth test"
// @Failure 400 {object} map[string]interface{} "Invalid growth test ID"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id} [get]
func (h *GrowthHandler) GetGrowthTest(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	test, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get growth test")
		return
	}

	c.JSON(http.StatusOK, test)
}

// UpdateGrowthTest handles PUT /api/v1/growth-tests/:id
// @Summary Update growth test
// @Description Update the plan, goal or test settings of a growth test
// @Tags growth
// @Accept json
// @Produce json
// @Param id path string true "Growth test ID (UUID)"
// @Param test body service.UpdateGrowthTestRequest true "Updated growth test data"
// @Success 200 {object} service.GrowthTestResponse "Successfully updated growth test"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id} [put]
func (h *GrowthHandler) UpdateGrowthTest(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	var req service.UpdateGrowthTestRequest
	if !bindJSON(c, &req) {
		return
	}

	test, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update growth test")
		return
	}

	c.JSON(http.StatusOK, test)
}

// DeleteGrowthTest handles DELETE /api/v1/growth-tests/:id
// @Summary Delete growth test
// @Description Delete a growth test and its records
// @Tags growth
// @Param id path string true "Growth test ID (UUID)"
// @Success 204 "Successfully deleted growth test"
// @Failure 400 {object} map[string]interface{} "Invalid growth test ID"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id} [delete]
func (h *GrowthHandler) DeleteGrowthTest(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete growth test")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddGrowthRecords handles POST /api/v1/growth-tests/:id/records
// @Summary Append growth records
// @Description Append failure times or inspection intervals to a growth test
// @Tags growth
// @Accept json
// @Produce json
// @Param id path string true "Growth test ID (UUID)"
// @Param records body service.AddGrowthRecordsRequest true "Records"
// @Success 201 {object} service.GrowthRecordListResponse "Every record of the test"
// @Failure 400 {object} map[string]interface{} "Invalid records"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id}/records [post]
func (h *GrowthHandler) AddGrowthRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	var req service.AddGrowthRecordsRequest
	if !bindJSON(c, &req) {
		return
	}

	records, err := h.service.AddRecords(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add growth records")
		return
	}

	c.JSON(http.StatusCreated, records)
}

// GetGrowthRecords handles GET /api/v1/growth-tests/:id/records
// @Summary List growth records
// @Description Get the records of a growth test ordered by time
// @Tags growth
// @Produce json
// @Param id path string true "Growth test ID (UUID)"
// @Success 200 {object} service.GrowthRecordListResponse "Records of the test"
// @Failure 400 {object} map[string]interface{} "Invalid growth test ID"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id}/records [get]
func (h *GrowthHandler) GetGrowthRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	records, err := h.service.GetRecords(id)
	if err != nil {
		respondError(c, err, "Failed to get growth records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteGrowthRecords handles DELETE /api/v1/growth-tests/:id/records
// @Summary Delete growth records
// @Description Remove every record of a growth test
// @Tags growth
// @Param id path string true "Growth test ID (UUID)"
// @Success 204 "Successfully deleted records"
// @Failure 400 {object} map[string]interface{} "Invalid growth test ID"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id}/records [delete]
func (h *GrowthHandler) DeleteGrowthRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	if err := h.service.DeleteRecords(id); err != nil {
		respondError(c, err, "Failed to delete growth records")
		return
	}

	c.Status(http.StatusNoContent)
}

// FitGrowthTest handles POST /api/v1/growth-tests/:id/fit
// @Summary Fit a growth test
// @Description Fit Crow-AMSAA and Duane models to the stored records and save the estimates
// @Tags growth
// @Produce json
// @Param id path string true "Growth test ID (UUID)"
// @Success 200 {object} service.GrowthFitResponse "Fit results"
// @Failure 400 {object} map[string]interface{} "Too few failures to fit"
// @Failure 404 {object} map[string]interface{} "Growth test not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth-tests/{id}/fit [post]
func (h *GrowthHandler) FitGrowthTest(c *gin.Context) {
	id, ok := parseID(c, "id", "growth test")
	if !ok {
		return
	}

	result, err := h.service.Fit(c, id)
	if err != nil {
		respondError(c, err, "Failed to fit growth test")
		return
	}

	c.JSON(http.StatusOK, result)
}

// FitGrowthData handles POST /api/v1/growth/fit
// @Summary Fit growth data
// @Description Fit Crow-AMSAA and Duane models to the posted data without storing anything
// @Tags growth
// @Accept json
// @Produce json
// @Param data body service.GrowthFitRequest true "Growth data"
// @Success 200 {object} service.GrowthFitResponse "Fit results"
// @Failure 400 {object} map[string]interface{} "Invalid or insufficient data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /growth/fit [post]
func (h *GrowthHandler) FitGrowthData(c *gin.Context) {
	var req service.GrowthFitRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.FitData(c, &req)
	if err != nil {
		respondError(c, err, "Failed to fit growth data")
		return
	}

	c.JSON(http.StatusOK, result)
}
