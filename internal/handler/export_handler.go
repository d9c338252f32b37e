package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursepilot/schedule-optimizer-api/internal/dto"
	"github.com/coursepilot/schedule-optimizer-api/internal/service"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
	"github.com/coursepilot/schedule-optimizer-api/pkg/response"
)

type timetableExporter interface {
	Export(ctx context.Context, req dto.ExportScheduleRequest) (*service.ExportResult, error)
}

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	service timetableExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Download a schedule as CSV or PDF
// @Description Evaluates the submitted sections as one schedule and streams the rendered timetable.
// @Tags Export
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param payload body dto.ExportScheduleRequest true "Sections, format and optional title"
// @Success 200 {file} file
// @Router /schedules/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}
	result, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
