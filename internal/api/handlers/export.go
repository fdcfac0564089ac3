package handlers

import (
	"net/http"

	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler writes revision workbooks
type ExportHandler struct {
	service service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(service service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportRevision handles POST /api/v1/revisions/:id/export
// @Summary Export a revision
// @Description Write the revision with its hardware, growth tests and survival data into a SQLite workbook. With download=true the file is returned as an attachment.
// @Tags revisions
// @Produce json
// @Produce octet-stream
// @Param id path string true "Revision ID (UUID)"
// @Param download query bool false "Return the workbook file"
// @Success 200 {object} service.ExportResponse "Workbook written"
// @Failure 400 {object} map[string]interface{} "Invalid revision ID"
// @Failure 404 {object} map[string]interface{} "Revision not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /revisions/{id}/export [post]
func (h *ExportHandler) ExportRevision(c *gin.Context) {
	revisionID, ok := parseID(c, "id", "revision")
	if !ok {
		return
	}

	result, err := h.service.Export(c, revisionID)
	if err != nil {
		respondError(c, err, "Failed to export revision")
		return
	}

	if c.Query("download") == "true" {
		c.FileAttachment(result.Path, result.FileName)
		return
	}

	c.JSON(http.StatusOK, result)
}
