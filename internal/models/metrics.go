package models

import "time"

// SystemMetrics is an aggregated runtime snapshot served on the health
// surface so operators can read basic numbers without scraping Prometheus.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	OptimizerRuns            uint64    `json:"optimizer_runs"`
	AverageOptimizerRunMs    float64   `json:"average_optimizer_run_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
