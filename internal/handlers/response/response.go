package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/google/uuid"
)

type contextKey string

const (
	TraceIDKey   contextKey = "traceID"
	UserIDKey    contextKey = "userID"
	StartTimeKey contextKey = "starttime"
)

type LogProducer interface {
	NewClassroomLog(level, place, traceid, msg string)
}

type HTTPResponse struct {
	Success bool              `json:"success"`
	Errors  *erro.CustomError `json:"errors,omitempty"`
	Data    map[string]any    `json:"data,omitempty"`
	Status  int               `json:"status"`
}

func OkResponse(data map[string]any, status int) *HTTPResponse {
	return &HTTPResponse{Success: true, Data: data, Status: status}
}
func BadResponse(err *erro.CustomError) *HTTPResponse {
	return &HTTPResponse{Success: false, Errors: err, Status: StatusFromType(err.Type)}
}

func StatusFromType(errtype string) int {
	switch errtype {
	case erro.ClientErrorType:
		return http.StatusBadRequest
	case erro.UnauthorizedErrorType:
		return http.StatusUnauthorized
	case erro.ForbiddenErrorType:
		return http.StatusForbidden
	case erro.NotFoundErrorType:
		return http.StatusNotFound
	case erro.ConflictErrorType:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CheckContext reports a request whose deadline already passed before any work was done.
func CheckContext(ctx context.Context, w http.ResponseWriter, traceid string, place string, logproducer LogProducer) bool {
	if err := ctx.Err(); err != nil {
		logproducer.NewClassroomLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Context error: %v", err))
		SendResponse(ctx, w, BadResponse(erro.ServerError(erro.RequestTimedOut)), traceid, place, logproducer)
		return false
	}
	return true
}

func TraceID(ctx context.Context) string {
	traceid, _ := ctx.Value(TraceIDKey).(string)
	return traceid
}
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userid, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userid, ok
}

// SendResponse writes resp as JSON. The outcome is never rewritten: a mutation that
// already committed is reported as such even past the request deadline.
func SendResponse(ctx context.Context, w http.ResponseWriter, resp *HTTPResponse, traceid string, place string, logproducer LogProducer) {
	w.Header().Set("Content-Type", "application/json")
	if ctx.Err() != nil {
		logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Response sent after context error: %v", ctx.Err()))
	}
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logproducer.NewClassroomLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorMarshal, err))
	}
	if resp.Success {
		metrics.ClassroomTotalSuccessfulRequests.WithLabelValues(place).Inc()
		logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
	} else {
		metrics.ClassroomErrorsTotal.WithLabelValues(resp.Errors.Type).Inc()
	}
	if start, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		metrics.ClassroomRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
	}
}
