package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

type catalogMock struct {
	semester string
	course   string
	err      error
}

func (m *catalogMock) Semesters(ctx context.Context) ([]models.Semester, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []models.Semester{{ID: "2026-fall", Term: "Fall", Year: 2026}}, nil
}

func (m *catalogMock) Courses(ctx context.Context, semesterID string) ([]models.Course, error) {
	m.semester = semesterID
	if m.err != nil {
		return nil, m.err
	}
	return []models.Course{{Subject: "CS", CourseCode: "CS350"}}, nil
}

func (m *catalogMock) Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error) {
	m.semester = semesterID
	m.course = courseCode
	if m.err != nil {
		return nil, m.err
	}
	return []models.Section{{ID: "CS350-01"}}, nil
}

func (m *catalogMock) Invalidate(ctx context.Context) error {
	return m.err
}

func getRequest(t *testing.T, handlerFn gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handlerFn(c)
	return w
}

func TestCatalogHandlerSemesters(t *testing.T) {
	handler := &CatalogHandler{service: &catalogMock{}}

	w := getRequest(t, handler.Semesters, "/semesters")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "2026-fall")
}

func TestCatalogHandlerCoursesRequiresSemester(t *testing.T) {
	handler := &CatalogHandler{service: &catalogMock{}}

	w := getRequest(t, handler.Courses, "/courses")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerSectionsPassesQuery(t *testing.T) {
	mockSvc := &catalogMock{}
	handler := &CatalogHandler{service: mockSvc}

	w := getRequest(t, handler.Sections, "/sections?semester=2026-fall&course=CS350")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2026-fall", mockSvc.semester)
	require.Equal(t, "CS350", mockSvc.course)
}

func TestCatalogHandlerInvalidateCache(t *testing.T) {
	handler := &CatalogHandler{service: &catalogMock{}}

	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodDelete, "/catalog/cache", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.InvalidateCache(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestCatalogHandlerSectionsUpstreamError(t *testing.T) {
	handler := &CatalogHandler{service: &catalogMock{err: appErrors.ErrUpstream}}

	w := getRequest(t, handler.Sections, "/sections?semester=2026-fall&course=CS350")

	require.Equal(t, http.StatusBadGateway, w.Code)
}
