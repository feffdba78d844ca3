package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/google/uuid"
)

// Authorized trusts the X-User-ID header set by the gateway.
func (m *Middleware) Authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = Authority
		traceID := response.TraceID(r.Context())
		header := r.Header.Get("X-User-ID")
		if header == "" {
			m.logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceID, "Required User-ID")
			response.SendResponse(r.Context(), w, response.BadResponse(erro.UnauthorizedError(erro.ErrorRequiredUserID)), traceID, place, m.logproducer)
			return
		}
		userID, err := uuid.Parse(header)
		if err != nil {
			m.logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Invalid User-ID %q: %v", header, err))
			response.SendResponse(r.Context(), w, response.BadResponse(erro.UnauthorizedError(erro.ErrorInvalidUserIDFormat)), traceID, place, m.logproducer)
			return
		}
		ctx := context.WithValue(r.Context(), response.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
