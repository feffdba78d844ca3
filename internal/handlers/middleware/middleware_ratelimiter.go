package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func (m *Middleware) RateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = RateLimiter
		traceID := response.TraceID(r.Context())
		limiter := getLimit(m, clientIP(r))
		if !limiter.Allow() {
			m.logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceID, "Too many requests")
			metrics.ClassroomRateLimitExceededTotal.WithLabelValues(r.URL.Path).Inc()
			resp := &response.HTTPResponse{Success: false, Errors: erro.ClientError(erro.ErrorTooManyRequests), Status: http.StatusTooManyRequests}
			response.SendResponse(r.Context(), w, resp, traceID, place, m.logproducer)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func getLimit(m *Middleware, ip string) *rate.Limiter {
	entry, exist := m.rateLimiters.Load(ip)
	if !exist {
		newEntry := &RateLimiterEntry{Limiter: rate.NewLimiter(m.limit, m.burst)}
		entry, _ = m.rateLimiters.LoadOrStore(ip, newEntry)
	}
	e := entry.(*RateLimiterEntry)
	e.LastUsed.Store(time.Now().UnixNano())
	return e.Limiter
}

func cleanLimit(m *Middleware) {
	ticker := time.NewTicker(m.idle)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			m.logger.Debug("Successful completion of RateLimiter")
			return
		case <-ticker.C:
			removeIdle(m, time.Now())
		}
	}
}

func removeIdle(m *Middleware, now time.Time) {
	m.rateLimiters.Range(func(key, value any) bool {
		entry := value.(*RateLimiterEntry)
		if now.Sub(time.Unix(0, entry.LastUsed.Load())) >= m.idle {
			m.rateLimiters.Delete(key)
			m.logger.Debug("Deleted idle limiter", zap.String("ip", key.(string)))
		}
		return true
	})
}
