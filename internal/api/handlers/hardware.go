package handlers

import (
	"net/http"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HardwareHandler handles HTTP requests for parts and assemblies
type HardwareHandler struct {
	service service.HardwareServiceInterface
}

// NewHardwareHandler creates a new hardware handler
func NewHardwareHandler(service service.HardwareServiceInterface) *HardwareHandler {
	return &HardwareHandler{service: service}
}

// CreateHardware handles POST /api/v1/revisions/:id/hardware
// @Summary Add a part or assembly to a revision
// @Description Create a hardware item. Parent items must be assemblies in the same revision.
// @Tags hardware
// @Accept json
// @Produce json
// @Param id path string true "Revision ID (UUID)"
// @Param hardware body service.CreateHardwareRequest true "Hardware data"
// @Success 201 {object} service.HardwareResponse "Successfully created hardware item"
// @Failure 400 {object} map[string]interface{} "Invalid request body or unknown part category"
// @Failure 404 {object} map[string]interface{} "Revision or parent assembly not found"
// @Failure 409 {object} map[string]interface{} "Reference designator already used"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id}/hardware [post]
func (h *HardwareHandler) CreateHardware(c *gin.Context) {
	revisionID, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	var req service.CreateHardwareRequest
	if !bindJSON(c, &req) {
		return
	}

	hw, err := h.service.Create(revisionID, &req)
	if err != nil {
		respondError(c, err, "Failed to create hardware item")
		return
	}

	c.JSON(http.StatusCreated, hw)
}

// ListHardware handles GET /api/v1/revisions/:id/hardware
// @Summary List the hardware of a revision
// @Description Get every part and assembly of a revision
// @Tags hardware
// @Produce json
// @Param id path string true "Revision ID (UUID)"
// @Success 200 {object} service.HardwareListResponse "Successfully retrieved hardware"
// @Failure 400 {object} map[string]interface{} "Invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id}/hardware [get]
func (h *HardwareHandler) ListHardware(c *gin.Context) {
	revisionID, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	items, err := h.service.GetByRevision(revisionID)
	if err != nil {
		respondError(c, err, "Failed to get hardware")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetHardware handles GET /api/v1/hardware/:id
// @Summary Get hardware item by ID
// @Description Get a part or assembly with its last calculation results
// @Tags hardware
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Success 200 {object} service.HardwareResponse "Successfully retrieved hardware item"
// @Failure 400 {object} map[string]interface{} "Invalid hardware ID"
// @Failure 404 {object} map[string]interface{} "Hardware item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hardware/{id} [get]
func (h *HardwareHandler) GetHardware(c *gin.Context) {
	id, ok := parseID(c, "id", "hardware")
	if !ok {
		return
	}

	hw, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get hardware item")
		return
	}

	c.JSON(http.StatusOK, hw)
}

// UpdateHardware handles PUT /api/v1/hardware/:id
// @Summary Update hardware item
// @Description Update part attributes or move an item to another assembly
// @Tags hardware
// @Accept json
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Param hardware body service.UpdateHardwareRequest true "Updated hardware data"
// @Success 200 {object} service.HardwareResponse "Successfully updated hardware item"
// @Failure 400 {object} map[string]interface{} "Invalid request or the move would create a cycle"
// @Failure 404 {object} map[string]interface{} "Hardware item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hardware/{id} [put]
func (h *HardwareHandler) UpdateHardware(c *gin.Context) {
	id, ok := parseID(c, "id", "hardware")
	if !ok {
		return
	}

	var req service.UpdateHardwareRequest
	if !bindJSON(c, &req) {
		return
	}

	hw, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update hardware item")
		return
	}

	c.JSON(http.StatusOK, hw)
}

// DeleteHardware handles DELETE /api/v1/hardware/:id
// @Summary Delete hardware item
// @Description Delete a part or assembly
// @Tags hardware
// @Param id path string true "Hardware ID (UUID)"
// @Success 204 "Successfully deleted hardware item"
// @Failure 400 {object} map[string]interface{} "Invalid hardware ID"
// @Failure 404 {object} map[string]interface{} "Hardware item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hardware/{id} [delete]
func (h *HardwareHandler) DeleteHardware(c *gin.Context) {
	id, ok := parseID(c, "id", "hardware")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete hardware item")
		return
	}

	c.Status(http.StatusNoContent)
}

// CalculateHardware handles POST /api/v1/hardware/:id/calculate
// @Summary Calculate a hardware item
// @Description Predict the hazard rate and stress of one part. Calculating an assembly recalculates its revision.
// @Tags hardware
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Success 200 {object} service.HardwareResponse "Calculated hardware item"
// @Failure 400 {object} map[string]interface{} "Part inputs cannot be evaluated"
// @Failure 404 {object} map[string]interface{} "Hardware item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /hardware/{id}/calculate [post]
func (h *HardwareHandler) CalculateHardware(c *gin.Context) {
	id, ok := parseID(c, "id", "hardware")
	if !ok {
		return
	}

	hw, err := h.service.Calculate(c, id)
	if err != nil {
		respondError(c, err, "Failed to calculate hardware item")
		return
	}

	c.JSON(http.StatusOK, hw)
}

// CalculateRevision handles POST /api/v1/revisions/:id/calculate
// @Summary Calculate a revision
// @Description Calculate every part of a revision, roll hazard rates up the assembly tree and store the totals. Parts that cannot be evaluated are listed in failures.
// @Tags hardware
// @Produce json
// @Param id path string true "Revision ID (UUID)"
// @Success 200 {object} service.RevisionCalculationResponse "Revision totals and per-item results"
// @Failure 400 {object} map[string]interface{} "Assembly tree is invalid"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id}/calculate [post]
func (h *HardwareHandler) CalculateRevision(c *gin.Context) {
	revisionID, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	result, err := h.service.CalculateRevision(c, revisionID)
	if err != nil {
		respondError(c, err, "Failed to calculate revision")
		return
	}

	c.JSON(http.StatusOK, result)
}
