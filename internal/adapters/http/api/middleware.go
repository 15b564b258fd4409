package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/bacrama/pkg/metrics"
)

// MetricsMiddleware records the count and latency of every request served by
// next, labelled by endpoint, method and status. Failed requests are also
// counted as errors of the http component.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsedMs := float64(time.Since(start).Microseconds()) / 1000
		status := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, elapsedMs)

		if kind := failureKind(rec.status); kind != "" {
			metrics.RecordErrorByComponent("http", kind)
		}
	}
}

// failureKind classifies error statuses; successful statuses map to "".
func failureKind(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusNotFound:
		return "not_found"
	case status >= http.StatusBadRequest:
		return "client_error"
	}
	return ""
}

// statusRecorder remembers the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
