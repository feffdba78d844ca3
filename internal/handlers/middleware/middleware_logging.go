package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/google/uuid"
)

// Logging assigns the trace id (X-Request-ID or a fresh uuid) and the request start time.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = Logging
		traceID := r.Header.Get("X-Request-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), response.TraceIDKey, traceID)
		ctx = context.WithValue(ctx, response.StartTimeKey, time.Now())
		r = r.WithContext(ctx)
		w.Header().Set("X-Request-ID", traceID)
		metrics.ClassroomTotalRequests.WithLabelValues(r.URL.Path).Inc()
		m.logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceID, fmt.Sprintf("[IP: %s] [Method: %s] [Path: %s]", r.RemoteAddr, r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}
