package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed atomic.Int64
}
type Middleware struct {
	logproducer  LogProducer
	logger       *zap.Logger
	rateLimiters sync.Map
	limit        rate.Limit
	burst        int
	timeout      time.Duration
	idle         time.Duration
	stopclean    chan struct{}
	stoponce     sync.Once
}
type LogProducer interface {
	NewClassroomLog(level, place, traceid, msg string)
}
type MiddlewareService interface {
	Logging(next http.Handler) http.Handler
	RateLimiter(next http.Handler) http.Handler
	Authorized(next http.Handler) http.Handler
	Timeout(next http.Handler) http.Handler
}

const (
	Logging     = "Middleware-Logging"
	RateLimiter = "Middleware-RateLimiter"
	Authority   = "Middleware-Authority"
)

const limiterIdle = 5 * time.Minute

func NewMiddleware(config configs.ServerConfig, logproducer LogProducer, logger *zap.Logger) *Middleware {
	m := &Middleware{
		logproducer: logproducer,
		logger:      logger,
		limit:       rate.Limit(config.RateLimit),
		burst:       config.RateBurst,
		timeout:     config.RequestTimeout,
		idle:        limiterIdle,
		stopclean:   make(chan struct{}),
	}
	go cleanLimit(m)
	return m
}

func (m *Middleware) Stop() {
	m.stoponce.Do(func() {
		close(m.stopclean)
	})
}
