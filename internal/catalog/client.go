package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/pkg/config"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
)

// Client talks to the upstream course catalog over HTTP. Transient failures
// (network errors and 5xx responses) are retried with a constant backoff;
// 4xx responses are permanent.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	retryAttempts int
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewClient constructs a catalog client from configuration.
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		retryAttempts: cfg.RetryAttempts,
		retryInterval: cfg.RetryInterval,
		logger:        logger,
	}
}

// Semesters lists the terms the catalog currently publishes.
func (c *Client) Semesters(ctx context.Context) ([]models.Semester, error) {
	var semesters []models.Semester
	if err := c.getJSON(ctx, "/semesters", nil, &semesters); err != nil {
		return nil, err
	}
	return semesters, nil
}

// Courses lists the courses offered in a semester.
func (c *Client) Courses(ctx context.Context, semesterID string) ([]models.Course, error) {
	query := url.Values{"semester": {semesterID}}
	var courses []models.Course
	if err := c.getJSON(ctx, "/courses", query, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Sections lists all sections of a course in a semester.
func (c *Client) Sections(ctx context.Context, semesterID, courseCode string) ([]models.Section, error) {
	query := url.Values{"semester": {semesterID}, "course": {courseCode}}
	var sections []models.Section
	if err := c.getJSON(ctx, "/sections", query, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("catalog request failed", zap.String("path", path), zap.Error(err))
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(appErrors.ErrNotFound)
		case resp.StatusCode >= 500:
			c.logger.Warn("catalog returned server error",
				zap.String("path", path), zap.Int("status", resp.StatusCode))
			return fmt.Errorf("catalog %s: status %d", path, resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("catalog %s: status %d", path, resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return backoff.Permanent(fmt.Errorf("decode catalog %s: %w", path, err))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), uint64(c.retryAttempts)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	return nil
}
