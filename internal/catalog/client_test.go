package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/schedule-optimizer-api/pkg/config"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

func testCatalogConfig(baseURL string) config.CatalogConfig {
	return config.CatalogConfig{
		BaseURL:       baseURL,
		Timeout:       2 * time.Second,
		RetryAttempts: 2,
		RetryInterval: time.Millisecond,
	}
}

func TestClientSemesters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/semesters", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"2026-fall","term":"Fall","year":2026}]`))
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	semesters, err := client.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, semesters, 1)
	assert.Equal(t, "2026-fall", semesters[0].ID)
	assert.Equal(t, 2026, semesters[0].Year)
}

func TestClientSectionsSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sections", r.URL.Path)
		require.Equal(t, "2026-fall", r.URL.Query().Get("semester"))
		require.Equal(t, "CS350", r.URL.Query().Get("course"))
		_, _ = w.Write([]byte(`[{"id":"CS350-01","subject":"CS","course_code":"CS350","section":"01","schedule":[{"days":"TR","time":"10:00-11:15"}],"seats":5,"waitlist":0}]`))
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	sections, err := client.Sections(context.Background(), "2026-fall", "CS350")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "CS350-01", sections[0].ID)
	assert.Equal(t, "TR", sections[0].Schedule[0].Days)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	_, err := client.Semesters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientExhaustedRetriesReturnUpstreamError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	_, err := client.Semesters(context.Background())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "initial attempt plus two retries")
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	_, err := client.Courses(context.Background(), "2026-fall")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClientMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testCatalogConfig(server.URL), nil)

	_, err := client.Sections(context.Background(), "2026-fall", "NOPE")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
