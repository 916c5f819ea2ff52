package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	wsActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campus_ws_active_connections",
			Help: "Number of active chat websocket connections.",
		},
	)
	wsEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_ws_events_total",
			Help: "Total number of websocket events by type.",
		},
		[]string{"event"},
	)
)

// HTTPMiddleware records request counts and latency per route.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func WSConnectionOpened() { wsActiveConnections.Inc() }
func WSConnectionClosed() { wsActiveConnections.Dec() }

func WSEvent(event string) { wsEventsTotal.WithLabelValues(event).Inc() }

// MetricsHandler serves the prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
