package api

import (
	"net/http"
	"strconv"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "limelight",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status code",
	}, []string{"method", "status"})

	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "limelight",
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent scoring a submission",
		Buckets:   prometheus.DefBuckets,
	})

	evaluationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "limelight",
		Name:      "evaluation_failures_total",
		Help:      "Submissions that could not be scored",
	})
)

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		httpRequests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}
