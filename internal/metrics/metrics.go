package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pengadaan",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, path, and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pengadaan",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	SheetsCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pengadaan",
		Name:      "sheets_calls_total",
		Help:      "Total spreadsheet web app calls by action and outcome.",
	}, []string{"action", "outcome"})

	SheetsCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pengadaan",
		Name:      "sheets_call_duration_seconds",
		Help:      "Spreadsheet web app call latency in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"action"})

	// NormalizationAnomaliesTotal counts data-quality anomalies absorbed by
	// the normalization engine. Anomalies never surface as errors, only as
	// safe defaults; this counter is the sole evidence they happened.
	NormalizationAnomaliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pengadaan",
		Name:      "normalization_anomalies_total",
		Help:      "Total data-quality anomalies absorbed during record normalization, by kind.",
	}, []string{"kind"})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pengadaan",
		Name:      "logins_total",
		Help:      "Total engineering login attempts by outcome (success, denied).",
	}, []string{"outcome"})
)

// Anomaly kinds recorded by the normalize package.
const (
	AnomalyStatusToken = "status_token"
	AnomalyDateParse   = "date_parse"
	AnomalyFileJSON    = "file_json"
)

// Middleware records request counts and latency for every gin route. Uses
// the route template (c.FullPath) rather than the raw URL to keep label
// cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveSheetsCall records one gateway call.
func ObserveSheetsCall(action, outcome string, d time.Duration) {
	SheetsCallsTotal.WithLabelValues(action, outcome).Inc()
	SheetsCallDuration.WithLabelValues(action).Observe(d.Seconds())
}
