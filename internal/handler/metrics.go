package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the Pesona backend.
var Metrics = struct {
	FavoriteToggles  *prometheus.CounterVec
	RatingsTotal     *prometheus.CounterVec
	CommentsPosted   prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBPoolActive     prometheus.GaugeFunc
	DBPoolIdle       prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.FavoriteToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pesona_favorite_toggles_total",
			Help: "Total favorite mutations, by action (add/remove).",
		},
		[]string{"action"},
	)

	Metrics.RatingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pesona_ratings_total",
			Help: "Total ratings submitted, by star value.",
		},
		[]string{"stars"},
	)

	Metrics.CommentsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pesona_comments_posted_total",
			Help: "Total comments posted.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pesona_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pesona_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "pesona_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "pesona_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.FavoriteToggles,
		Metrics.RatingsTotal,
		Metrics.CommentsPosted,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/countries/"):
		if strings.Contains(path[len("/api/countries/"):], "/attractions/") {
			return "/api/countries/:countryId/attractions/:attractionId"
		}
		if strings.HasSuffix(path, "/attractions") {
			return "/api/countries/:countryId/attractions"
		}
		return "/api/countries/:countryId"
	case strings.HasPrefix(path, "/api/comments/"):
		return "/api/comments/:commentId"
	case strings.HasPrefix(path, "/api/favorites/"):
		return "/api/favorites/:attractionId"
	case strings.HasPrefix(path, "/api/attractions/") &&
		path != "/api/attractions/top" && path != "/api/attractions/search":
		return "/api/attractions/:attractionId"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
