package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CacheHit  = "hit"
	CacheMiss = "miss"
	// CacheError кэш недоступен, отчет пересчитан
	CacheError = "error"
)

var (
	ReportBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "screening_report_build_duration_seconds",
			Help:    "Duration of analytics report computation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"granularity"},
	)

	ReportCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screening_report_cache_requests_total",
			Help: "Report cache lookups by result",
		},
		[]string{"result"},
	)

	InvalidRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "screening_invalid_records_total",
			Help: "Applications with ai_label or status outside the known enumerations",
		},
	)

	ReportExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screening_report_exports_total",
			Help: "Exported analytics reports by format",
		},
		[]string{"format"},
	)

	SnapshotTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "screening_snapshot_truncated_total",
			Help: "Snapshots cut by the application row limit",
		},
	)

	SnapshotApplications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "screening_snapshot_applications",
			Help: "Applications loaded into the last computed snapshot",
		},
	)
)
