package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var httpResponseTimeMetric = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 10},
}, []string{"operation", "status"})

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func operation(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if name := route.GetName(); name != "" {
			return name
		}
	}
	return "unknown"
}

func loggingMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logger.With(
				zap.String("operation", operation(r)),
				zap.String("path", r.URL.Path),
			)
			logger.Debug("Handling request")
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			switch {
			case recorder.status >= http.StatusInternalServerError:
				logger.Error("Fail", zap.Int("status", recorder.status))
			case recorder.status >= http.StatusBadRequest:
				logger.Info("Fail", zap.Int("status", recorder.status))
			default:
				logger.Debug("Success")
			}
		})
	}
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			httpResponseTimeMetric.WithLabelValues(operation(r), strconv.Itoa(recorder.status)).Observe(v)
		}))
		defer timer.ObserveDuration()
		next.ServeHTTP(recorder, r)
	})
}
