package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type discardLogs struct{}

func (discardLogs) NewClassroomLog(level, place, traceid, msg string) {}

func newTestMiddleware(t *testing.T, limit float64, burst int) *Middleware {
	m := NewMiddleware(configs.ServerConfig{RateLimit: limit, RateBurst: burst, RequestTimeout: time.Second}, discardLogs{}, zap.NewNop())
	t.Cleanup(m.Stop)
	return m
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.HTTPResponse {
	var resp response.HTTPResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestLogging(t *testing.T) {
	m := newTestMiddleware(t, 10, 10)
	var seen string
	var started bool
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = response.TraceID(r.Context())
		_, started = r.Context().Value(response.StartTimeKey).(time.Time)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, "trace-42", seen)
	require.True(t, started)
	require.Equal(t, "trace-42", rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func TestRateLimiter(t *testing.T) {
	m := newTestMiddleware(t, 0, 2)
	calls := 0
	handler := m.RateLimiter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}
	require.Equal(t, http.StatusOK, send("10.0.0.1:5000").Code)
	require.Equal(t, http.StatusOK, send("10.0.0.1:5001").Code)
	rr := send("10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, erro.ClientError(erro.ErrorTooManyRequests), decode(t, rr).Errors)
	require.Equal(t, http.StatusOK, send("10.0.0.2:5000").Code)
	require.Equal(t, 3, calls)
}

func TestRemoveIdle(t *testing.T) {
	m := newTestMiddleware(t, 1, 1)
	getLimit(m, "10.0.0.1")
	getLimit(m, "10.0.0.2")
	now := time.Now()
	stale, _ := m.rateLimiters.Load("10.0.0.1")
	stale.(*RateLimiterEntry).LastUsed.Store(now.Add(-2 * m.idle).UnixNano())

	removeIdle(m, now)
	_, exist := m.rateLimiters.Load("10.0.0.1")
	require.False(t, exist)
	_, exist = m.rateLimiters.Load("10.0.0.2")
	require.True(t, exist)
}

func TestAuthorized(t *testing.T) {
	userid := uuid.New()
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedErrors *erro.CustomError
	}{
		{"Valid user", userid.String(), http.StatusOK, nil},
		{"Missing user", "", http.StatusUnauthorized, erro.UnauthorizedError(erro.ErrorRequiredUserID)},
		{"Malformed user", "not-a-uuid", http.StatusUnauthorized, erro.UnauthorizedError(erro.ErrorInvalidUserIDFormat)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiddleware(t, 10, 10)
			handler := m.Authorized(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := response.UserID(r.Context())
				require.True(t, ok)
				require.Equal(t, userid, got)
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedErrors != nil {
				require.Equal(t, tt.expectedErrors, decode(t, rr).Errors)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	m := newTestMiddleware(t, 10, 10)
	var deadline time.Time
	var ok bool
	handler := m.Timeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions", nil).WithContext(context.Background()))
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}
