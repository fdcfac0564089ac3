package handlers

import (
	"net/http"
	"strconv"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SurvivalHandler handles HTTP requests for survival data sets
type SurvivalHandler struct {
	service service.SurvivalServiceInterface
}

// NewSurvivalHandler creates a new survival handler
func NewSurvivalHandler(service service.SurvivalServiceInterface) *SurvivalHandler {
	return &SurvivalHandler{service: service}
}

// CreateDataset handles POST /api/v1/survival-datasets
// @Summary Create a survival data set
// @Description Create a life data set in a revision
// @Tags survival
// @Accept json
// @Produce json
// @Param dataset body service.CreateDatasetRequest true "Data set"
// @Success 201 {object} service.DatasetResponse "Successfully created data set"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 409 {object} map[string]interface{} "Data set already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets [post]
func (h *SurvivalHandler) CreateDataset(c *gin.Context) {
	var req service.CreateDatasetRequest
	if !bindJSON(c, &req) {
		return
	}

	dataset, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create survival data set")
		return
	}

	c.JSON(http.StatusCreated, dataset)
}

// ListDatasets handles GET /api/v1/survival-datasets
// @Summary List survival data sets of a revision
// @Tags survival
// @Produce json
// @Param revision_id query string true "Revision ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DatasetListResponse "Successfully retrieved data sets"
// @Failure 400 {object} map[string]interface{} "Missing or invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets [get]
func (h *SurvivalHandler) ListDatasets(c *gin.Context) {
	revisionID, err := uuid.Parse(c.Query("revision_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "revision_id query parameter must be a valid UUID"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	datasets, err := h.service.GetByRevision(revisionID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get survival data sets")
		return
	}

	c.JSON(http.StatusOK, datasets)
}

// GetDataset handles GET /api/v1/survival-datasets/:id
// @Summary Get survival data set by ID
// @Tags survival
// @Produce json
// @Param id path string true "Data set ID (UUID)"
// @Success 200 {object} service.DatasetResponse "Successfully retrieved data set"
// @Failure 400 {object} map[string]interface{} "Invalid data set ID"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id} [get]
func (h *SurvivalHandler) GetDataset(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	dataset, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get survival data set")
		return
	}

	c.JSON(http.StatusOK, dataset)
}

// UpdateDataset handles PUT /api/v1/survival-datasets/:id
// @Summary Update survival data set
// @Tags survival
// @Accept json
// @Produce json
// @Param id path string true "Data set ID (UUID)"
// @Param dataset body service.UpdateDatasetRequest true "Updated data set"
// @Success 200 {object} service.DatasetResponse "Successfully updated data set"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id} [put]
func (h *SurvivalHandler) UpdateDataset(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	var req service.UpdateDatasetRequest
	if !bindJSON(c, &req) {
		return
	}

	dataset, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update survival data set")
		return
	}

	c.JSON(http.StatusOK, dataset)
}

// DeleteDataset handles DELETE /api/v1/survival-datasets/:id
// @Summary Delete survival data set
// @Tags survival
// @Param id path string true "Data set ID (UUID)"
// @Success 204 "Successfully deleted data set"
// @Failure 400 {object} map[string]interface{} "Invalid data set ID"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id} [delete]
func (h *SurvivalHandler) DeleteDataset(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete survival data set")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSurvivalRecords handles POST /api/v1/survival-datasets/:id/records
// @Summary Append survival records
// @Description Append failures and suspensions to a data set
// @Tags survival
// @Accept json
// @Produce json
// @Param id path string true "Data set ID (UUID)"
// @Param records body service.AddSurvivalRecordsRequest true "Records"
// @Success 201 {object} service.SurvivalRecordListResponse "Every record of the data set"
// @Failure 400 {object} map[string]interface{} "Invalid records"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id}/records [post]
func (h *SurvivalHandler) AddSurvivalRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	var req service.AddSurvivalRecordsRequest
	if !bindJSON(c, &req) {
		return
	}

	records, err := h.service.AddRecords(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add survival records")
		return
	}

	c.JSON(http.StatusCreated, records)
}

// GetSurvivalRecords handles GET /api/v1/survival-datasets/:id/records
// @Summary List survival records
// @Tags survival
// @Produce json
// @Param id path string true "Data set ID (UUID)"
// @Success 200 {object} service.SurvivalRecordListResponse "Records of the data set"
// @Failure 400 {object} map[string]interface{} "Invalid data set ID"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id}/records [get]
func (h *SurvivalHandler) GetSurvivalRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	records, err := h.service.GetRecords(id)
	if err != nil {
		respondError(c, err, "Failed to get survival records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteSurvivalRecords handles DELETE /api/v1/survival-datasets/:id/records
// @Summary Delete survival records
// @Tags survival
// @Param id path string true "Data set ID (UUID)"
// @Success 204 "Successfully deleted records"
// @Failure 400 {object} map[string]interface{} "Invalid data set ID"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id}/records [delete]
func (h *SurvivalHandler) DeleteSurvivalRecords(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	if err := h.service.DeleteRecords(id); err != nil {
		respondError(c, err, "Failed to delete survival records")
		return
	}

	c.Status(http.StatusNoContent)
}

// FitDataset handles POST /api/v1/survival-datasets/:id/fit
// @Summary Fit a survival data set
// @Description Fit a life distribution to the stored records and save the estimates. Use distribution=all to rank every supported distribution by AIC.
// @Tags survival
// @Produce json
// @Param id path string true "Data set ID (UUID)"
// @Param distribution query string false "exponential, weibull or all; defaults to the data set distribution"
// @Success 200 {object} service.SurvivalFitResponse "Fit results"
// @Failure 400 {object} map[string]interface{} "Unknown distribution or too few failures"
// @Failure 404 {object} map[string]interface{} "Data set not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival-datasets/{id}/fit [post]
func (h *SurvivalHandler) FitDataset(c *gin.Context) {
	id, ok := parseID(c, "id", "data set")
	if !ok {
		return
	}

	result, err := h.service.Fit(c, id, c.Query("distribution"))
	if err != nil {
		respondError(c, err, "Failed to fit survival data set")
		return
	}

	c.JSON(http.StatusOK, result)
}

// FitSurvivalData handles POST /api/v1/survival/fit
// @Summary Fit life data
// @Description Fit a life distribution to the posted records without storing anything
// @Tags survival
// @Accept json
// @Produce json
// @Param data body service.SurvivalFitRequest true "Life data"
// @Success 200 {object} service.SurvivalFitResponse "Fit results"
// @Failure 400 {object} map[string]interface{} "Invalid or insufficient data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /survival/fit [post]
func (h *SurvivalHandler) FitSurvivalData(c *gin.Context) {
	var req service.SurvivalFitRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.FitData(c, &req)
	if err != nil {
		respondError(c, err, "Failed to fit survival data")
		return
	}

	c.JSON(http.StatusOK, result)
}
