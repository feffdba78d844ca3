package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/service"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

func (h *Handler) getAllData(w http.ResponseWriter, r *http.Request, traceID string, place string, parser any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.LogProducer.NewClassroomLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("ReadAll Error: %v", err))
		response.SendResponse(r.Context(), w, response.BadResponse(erro.ClientError(erro.ErrorReadAll)), traceID, place, h.LogProducer)
		return false
	}
	if err = json.Unmarshal(body, parser); err != nil {
		h.LogProducer.NewClassroomLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf(erro.ErrorUnmarshal, err))
		response.SendResponse(r.Context(), w, response.BadResponse(erro.ClientError(erro.ErrorInvalidDataReq)), traceID, place, h.LogProducer)
		return false
	}
	return true
}

func (h *Handler) getRequester(w http.ResponseWriter, r *http.Request, traceID string, place string) (uuid.UUID, bool) {
	userID, ok := response.UserID(r.Context())
	if !ok {
		h.LogProducer.NewClassroomLog(kafka.LogLevelError, place, traceID, "User ID not found in context")
		response.SendResponse(r.Context(), w, response.BadResponse(erro.ServerError(erro.ClassroomServiceUnavalaible)), traceID, place, h.LogProducer)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) serviceResponse(resp *service.ServiceResponse, w http.ResponseWriter, r *http.Request, traceID string, place string) bool {
	if !resp.Success {
		response.SendResponse(r.Context(), w, response.BadResponse(resp.Errors), traceID, place, h.LogProducer)
		return false
	}
	return true
}

// sessionList keeps an empty result encoded as [] rather than null.
func sessionList(sessions []*model.Session) []*model.Session {
	if sessions == nil {
		return []*model.Session{}
	}
	return sessions
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	traceID := r.Header.Get("X-Request-ID")
	h.LogProducer.NewClassroomLog(kafka.LogLevelWarn, Router, traceID, fmt.Sprintf("Unknown route %s %s", r.Method, r.URL.Path))
	response.SendResponse(r.Context(), w, response.BadResponse(erro.NotFoundError(erro.ErrorRouteNotFound)), traceID, Router, h.LogProducer)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	traceID := r.Header.Get("X-Request-ID")
	h.LogProducer.NewClassroomLog(kafka.LogLevelWarn, Router, traceID, fmt.Sprintf("Method %s is not allowed on %s", r.Method, r.URL.Path))
	resp := &response.HTTPResponse{Success: false, Errors: erro.ClientError(erro.ErrorMethodNotAllowed), Status: http.StatusMethodNotAllowed}
	response.SendResponse(r.Context(), w, resp, traceID, Router, h.LogProducer)
}
