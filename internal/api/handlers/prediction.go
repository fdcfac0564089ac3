package handlers

import (
	"net/http"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PredictionHandler serves stateless hazard rate predictions
type PredictionHandler struct {
	service service.PredictionServiceInterface
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(service service.PredictionServiceInterface) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Predict handles POST /api/v1/predict
// @Summary Predict hazard rates
// @Description Evaluate a parts list with MIL-HDBK-217F and roll it up without storing anything
// @Tags prediction
// @Accept json
// @Produce json
// @Param parts body service.PredictRequest true "Parts list"
// @Success 200 {object} service.PredictResponse "Per-part results and totals"
// @Failure 400 {object} map[string]interface{} "Invalid parts list or a part cannot be evaluated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req service.PredictRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Predict(c, &req)
	if err != nil {
		respondError(c, err, "Failed to predict hazard rates")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Catalog handles GET /api/v1/predict/catalog
// @Summary List supported part types
// @Description Part categories, subcategories, quality levels, environments and methods the engine accepts
// @Tags prediction
// @Produce json
// @Success 200 {object} service.CatalogResponse "Supported inputs"
// @Security BearerAuth
// @Router /predict/catalog [get]
func (h *PredictionHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Catalog())
}
