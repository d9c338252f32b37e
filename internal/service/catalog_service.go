package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

// seedSemesterID labels the synthetic term served from a CSV seed file when
// no live catalog upstream is configured.
const seedSemesterID = "seed"

type catalogClient interface {
	Semesters(ctx context.Context) ([]models.Semester, error)
	Courses(ctx context.Context, semesterID string) ([]models.Course, error)
	Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error)
}

type catalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CatalogService serves catalog data from the upstream client with a Redis
// read-through cache. Cache failures degrade to upstream reads; they never
// fail a request. When the upstream is disabled the service answers from the
// CSV seed instead.
type CatalogService struct {
	client  catalogClient
	cache   catalogCache
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
	seed    []models.Section
}

// NewCatalogService constructs a CatalogService. client may be nil when the
// upstream is disabled; seed then backs all reads.
func NewCatalogService(client catalogClient, cache catalogCache, metrics *MetricsService, ttl time.Duration, seed []models.Section, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CatalogService{
		client:  client,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		ttl:     ttl,
		seed:    seed,
	}
}

// Semesters lists available terms.
func (s *CatalogService) Semesters(ctx context.Context) ([]models.Semester, error) {
	if s.client == nil {
		return []models.Semester{{ID: seedSemesterID, Term: "Seed", Year: time.Now().Year()}}, nil
	}

	const key = "catalog:semesters"
	var semesters []models.Semester
	if s.cacheGet(ctx, key, &semesters) {
		return semesters, nil
	}

	start := time.Now()
	semesters, err := s.client.Semesters(ctx)
	s.metrics.ObserveUpstreamRequest("semesters", time.Since(start))
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, semesters)
	return semesters, nil
}

// Courses lists the courses of a semester.
func (s *CatalogService) Courses(ctx context.Context, semesterID string) ([]models.Course, error) {
	if s.client == nil {
		return s.seedCourses(), nil
	}

	key := fmt.Sprintf("catalog:courses:%s", semesterID)
	var courses []models.Course
	if s.cacheGet(ctx, key, &courses) {
		return courses, nil
	}

	start := time.Now()
	courses, err := s.client.Courses(ctx, semesterID)
	s.metrics.ObserveUpstreamRequest("courses", time.Since(start))
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, courses)
	return courses, nil
}

// Sections lists the sections of a course in a semester.
func (s *CatalogService) Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error) {
	if s.client == nil {
		return s.seedSections(courseCode), nil
	}

	key := fmt.Sprintf("catalog:sections:%s:%s", semesterID, courseCode)
	var sections []models.Section
	if s.cacheGet(ctx, key, &sections) {
		return sections, nil
	}

	start := time.Now()
	sections, err := s.client.Sections(ctx, semesterID, courseCode)
	s.metrics.ObserveUpstreamRequest("sections", time.Since(start))
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, sections)
	return sections, nil
}

// Invalidate drops every cached catalog entry, forcing the next reads to hit
// the upstream again. Used after known catalog updates (enrollment day).
func (s *CatalogService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteByPattern(ctx, "catalog:*"); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	s.logger.Info("catalog cache invalidated")
	return nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	start := time.Now()
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		s.metrics.RecordCacheOperation(true, time.Since(start))
		return true
	}

	s.metrics.RecordCacheOperation(false, time.Since(start))
	if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *CatalogService) seedCourses() []models.Course {
	seen := make(map[string]struct{})
	var courses []models.Course
	for _, section := range s.seed {
		key := section.Subject + ":" + section.CourseCode
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		courses = append(courses, models.Course{
			Subject:    section.Subject,
			CourseCode: section.CourseCode,
		})
	}
	return courses
}

func (s *CatalogService) seedSections(courseCode string) []models.Section {
	var sections []models.Section
	for _, section := range s.seed {
		if courseCode == "" || strings.EqualFold(section.CourseCode, courseCode) {
			sections = append(sections, section)
		}
	}
	return sections
}
