package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/internal/service"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
	"github.com/coursepilot/schedule-optimizer-api/pkg/response"
)

type catalogProvider interface {
	Semesters(ctx context.Context) ([]models.Semester, error)
	Courses(ctx context.Context, semesterID string) ([]models.Course, error)
	Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error)
	Invalidate(ctx context.Context) error
}

// CatalogHandler exposes read-only catalog endpoints.
type CatalogHandler struct {
	service catalogProvider
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Semesters godoc
// @Summary List available semesters
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /semesters [get]
func (h *CatalogHandler) Semesters(c *gin.Context) {
	semesters, err := h.service.Semesters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semesters, nil)
}

// Courses godoc
// @Summary List courses for a semester
// @Tags Catalog
// @Produce json
// @Param semester query string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	semester := c.Query("semester")
	if semester == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester query parameter is required"))
		return
	}
	courses, err := h.service.Courses(c.Request.Context(), semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Sections godoc
// @Summary List sections for a course
// @Tags Catalog
// @Produce json
// @Param semester query string true "Semester ID"
// @Param course query string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /sections [get]
func (h *CatalogHandler) Sections(c *gin.Context) {
	semester := c.Query("semester")
	course := c.Query("course")
	if semester == "" || course == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester and course query parameters are required"))
		return
	}
	sections, err := h.service.Sections(c.Request.Context(), semester, course)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// InvalidateCache godoc
// @Summary Drop cached catalog data
// @Description Forces subsequent catalog reads to hit the upstream again.
// @Tags Catalog
// @Success 204 "cache cleared"
// @Router /catalog/cache [delete]
func (h *CatalogHandler) InvalidateCache(c *gin.Context) {
	if err := h.service.Invalidate(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
