package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursepilot/schedule-optimizer-api/internal/dto"
	"github.com/coursepilot/schedule-optimizer-api/internal/service"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
	"github.com/coursepilot/schedule-optimizer-api/pkg/response"
)

type scheduleOptimizer interface {
	Analyze(ctx context.Context, req dto.AnalyzeSectionsRequest) (*dto.AnalyzeSectionsResponse, error)
	Filter(ctx context.Context, req dto.FilterSectionsRequest) (*dto.FilterSectionsResponse, error)
	Combinations(ctx context.Context, req dto.CombinationsRequest) (*dto.CombinationsResponse, error)
}

// OptimizerHandler exposes the schedule optimization endpoints.
type OptimizerHandler struct {
	service scheduleOptimizer
}

// NewOptimizerHandler constructs the handler.
func NewOptimizerHandler(svc *service.OptimizerService) *OptimizerHandler {
	return &OptimizerHandler{service: svc}
}

// Analyze godoc
// @Summary Score candidate sections against scheduling preferences
// @Description Returns the submitted sections with day analysis and a 0-100 score, ordered best first.
// @Tags Optimizer
// @Accept json
// @Produce json
// @Param payload body dto.AnalyzeSectionsRequest true "Sections and optional preferences"
// @Success 200 {object} response.Envelope
// @Router /sections/analyze [post]
func (h *OptimizerHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid analyze payload"))
		return
	}
	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Filter godoc
// @Summary Filter sections by preferred meeting days
// @Description Keeps sections whose meeting days line up with the preferred days and returns them with their analysis.
// @Tags Optimizer
// @Accept json
// @Produce json
// @Param payload body dto.FilterSectionsRequest true "Sections and optional preferences"
// @Success 200 {object} response.Envelope
// @Router /sections/filter [post]
func (h *OptimizerHandler) Filter(c *gin.Context) {
	var req dto.FilterSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter payload"))
		return
	}
	result, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Combinations godoc
// @Summary Find conflict-free schedule combinations
// @Description Enumerates one-section-per-course combinations, skips conflicting ones and returns the ranked best schedules.
// @Tags Optimizer
// @Accept json
// @Produce json
// @Param payload body dto.CombinationsRequest true "Courses with candidate sections"
// @Success 200 {object} response.Envelope
// @Router /schedules/combinations [post]
func (h *OptimizerHandler) Combinations(c *gin.Context) {
	var req dto.CombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid combinations payload"))
		return
	}
	result, err := h.service.Combinations(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
