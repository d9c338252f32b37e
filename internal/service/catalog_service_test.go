package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

type stubCatalogClient struct {
	semesters     []models.Semester
	sections      []models.Section
	err           error
	semesterCalls int
	sectionCalls  int
}

func (s *stubCatalogClient) Semesters(ctx context.Context) ([]models.Semester, error) {
	s.semesterCalls++
	return s.semesters, s.err
}

func (s *stubCatalogClient) Courses(ctx context.Context, semesterID string) ([]models.Course, error) {
	return nil, s.err
}

func (s *stubCatalogClient) Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error) {
	s.sectionCalls++
	return s.sections, s.err
}

type stubCache struct {
	store  map[string][]byte
	getErr error
	sets   int
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	c.sets++
	return nil
}

func (c *stubCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.store = make(map[string][]byte)
	return nil
}

func TestCatalogServiceCachesUpstreamReads(t *testing.T) {
	client := &stubCatalogClient{
		semesters: []models.Semester{{ID: "2026-fall", Term: "Fall", Year: 2026}},
	}
	cache := newStubCache()
	svc := NewCatalogService(client, cache, nil, time.Minute, nil, nil)

	first, err := svc.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, client.semesterCalls)
	require.Equal(t, 1, cache.sets)

	second, err := svc.Semesters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.semesterCalls, "second read must come from cache")
}

func TestCatalogServiceDegradesOnCacheFailure(t *testing.T) {
	client := &stubCatalogClient{
		sections: []models.Section{{ID: "CS350-01", CourseCode: "CS350", Section: "01"}},
	}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewCatalogService(client, cache, nil, time.Minute, nil, nil)

	sections, err := svc.Sections(context.Background(), "2026-fall", "CS350")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, 1, client.sectionCalls)
}

func TestCatalogServicePropagatesUpstreamError(t *testing.T) {
	client := &stubCatalogClient{err: appErrors.ErrUpstream}
	svc := NewCatalogService(client, newStubCache(), nil, time.Minute, nil, nil)

	_, err := svc.Semesters(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestCatalogServiceInvalidateDropsCachedEntries(t *testing.T) {
	client := &stubCatalogClient{
		semesters: []models.Semester{{ID: "2026-fall", Term: "Fall", Year: 2026}},
	}
	cache := newStubCache()
	svc := NewCatalogService(client, cache, nil, time.Minute, nil, nil)

	_, err := svc.Semesters(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cache.store)

	require.NoError(t, svc.Invalidate(context.Background()))
	assert.Empty(t, cache.store)

	_, err = svc.Semesters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, client.semesterCalls, "post-invalidation read hits upstream")
}

func TestCatalogServiceSeedMode(t *testing.T) {
	seed := []models.Section{
		{ID: "CS-CS350-01", Subject: "CS", CourseCode: "CS350", Section: "01"},
		{ID: "CS-CS350-02", Subject: "CS", CourseCode: "CS350", Section: "02"},
		{ID: "MATH-MATH240-01", Subject: "MATH", CourseCode: "MATH240", Section: "01"},
	}
	svc := NewCatalogService(nil, nil, nil, time.Minute, seed, nil)

	semesters, err := svc.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, semesters, 1)
	assert.Equal(t, seedSemesterID, semesters[0].ID)

	courses, err := svc.Courses(context.Background(), seedSemesterID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	sections, err := svc.Sections(context.Background(), seedSemesterID, "cs350")
	require.NoError(t, err)
	assert.Len(t, sections, 2, "course filter is case insensitive")

	all, err := svc.Sections(context.Background(), seedSemesterID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
