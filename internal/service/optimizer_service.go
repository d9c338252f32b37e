package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coursepilot/schedule-optimizer-api/internal/dto"
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/internal/optimizer"
	"github.com/coursepilot/schedule-optimizer-api/pkg/config"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

// OptimizerService fronts the schedule engine. Every request gets a fresh
// Scheduler built from merged preferences, so concurrent requests never share
// mutable state.
type OptimizerService struct {
	cfg      config.OptimizerConfig
	validate *validator.Validate
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewOptimizerService constructs an OptimizerService.
func NewOptimizerService(cfg config.OptimizerConfig, metrics *MetricsService, logger *zap.Logger) *OptimizerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxCourses <= 0 {
		cfg.MaxCourses = 8
	}
	if cfg.MaxCandidatesPerCourse <= 0 {
		cfg.MaxCandidatesPerCourse = 30
	}
	if cfg.MaxCombinations <= 0 {
		cfg.MaxCombinations = optimizer.DefaultMaxCombinations
	}
	return &OptimizerService{
		cfg:      cfg,
		validate: validator.New(),
		metrics:  metrics,
		logger:   logger,
	}
}

// Analyze scores the submitted sections and returns them best first.
func (s *OptimizerService) Analyze(ctx context.Context, req dto.AnalyzeSectionsRequest) (*dto.AnalyzeSectionsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analyze request")
	}

	scheduler := optimizer.NewScheduler(mergePreferences(req.Preferences))
	return &dto.AnalyzeSectionsResponse{Sections: scheduler.AnalyzeSections(req.Sections)}, nil
}

// Filter keeps only sections acceptable on day-preference grounds.
func (s *OptimizerService) Filter(ctx context.Context, req dto.FilterSectionsRequest) (*dto.FilterSectionsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filter request")
	}

	scheduler := optimizer.NewScheduler(mergePreferences(req.Preferences))
	return &dto.FilterSectionsResponse{Sections: scheduler.FilterPreferredDaySections(req.Sections)}, nil
}

// Combinations enumerates conflict-free schedules across the submitted
// courses and returns the ranked top of the list.
func (s *OptimizerService) Combinations(ctx context.Context, req dto.CombinationsRequest) (*dto.CombinationsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid combinations request")
	}
	if len(req.Courses) > s.cfg.MaxCourses {
		msg := fmt.Sprintf("at most %d courses per request", s.cfg.MaxCourses)
		return nil, appErrors.Clone(appErrors.ErrValidation, msg)
	}

	coursesSections := make([][]models.Section, 0, len(req.Courses))
	for _, course := range req.Courses {
		candidates := course.Sections
		if len(candidates) > s.cfg.MaxCandidatesPerCourse {
			s.logger.Warn("truncating course candidates",
				zap.String("course", course.CourseCode),
				zap.Int("submitted", len(candidates)),
				zap.Int("kept", s.cfg.MaxCandidatesPerCourse))
			candidates = candidates[:s.cfg.MaxCandidatesPerCourse]
		}
		coursesSections = append(coursesSections, candidates)
	}

	maxCombinations := req.MaxCombinations
	if maxCombinations <= 0 || maxCombinations > s.cfg.MaxCombinations {
		maxCombinations = s.cfg.MaxCombinations
	}

	scheduler := optimizer.NewScheduler(mergePreferences(req.Preferences))

	start := time.Now()
	combos := scheduler.FindOptimalCombinations(coursesSections, maxCombinations)
	s.metrics.ObserveOptimizerRun(len(combos), time.Since(start))

	for i := range combos {
		combos[i].ID = uuid.NewString()
	}

	return &dto.CombinationsResponse{Combinations: combos, Evaluated: len(combos)}, nil
}

// mergePreferences merges the optional payload over the service defaults. An
// empty preferred_days list keeps the default days rather than disabling the
// day stage entirely.
func mergePreferences(payload *dto.PreferencesPayload) models.SchedulePreferences {
	prefs := models.DefaultSchedulePreferences()
	if payload == nil {
		return prefs
	}

	if len(payload.PreferredDays) > 0 {
		prefs.PreferredDays = payload.PreferredDays
	}
	if payload.EarliestStart != "" {
		prefs.EarliestStart = payload.EarliestStart
	}
	if payload.LatestEnd != "" {
		prefs.LatestEnd = payload.LatestEnd
	}
	if len(payload.AvoidRanges) > 0 {
		ranges := make([]models.TimeRange, 0, len(payload.AvoidRanges))
		for _, r := range payload.AvoidRanges {
			ranges = append(ranges, models.TimeRange{Start: r.Start, End: r.End})
		}
		prefs.AvoidRanges = ranges
	}
	if payload.MaxGapMinutes != nil {
		prefs.MaxGapMinutes = *payload.MaxGapMinutes
	}
	if payload.PreferCompact != nil {
		prefs.PreferCompact = *payload.PreferCompact
	}

	return prefs
}
