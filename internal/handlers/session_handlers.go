package handlers

import (
	"net/http"

	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/response"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/gorilla/mux"
)

func (h *Handler) BookSession(w http.ResponseWriter, r *http.Request) {
	const place = BookSession
	traceID := response.TraceID(r.Context())
	requesterID, ok := h.getRequester(w, r, traceID, place)
	if !ok {
		return
	}
	var req model.BookSessionRequest
	if !h.getAllData(w, r, traceID, place, &req) {
		return
	}
	if !response.CheckContext(r.Context(), w, traceID, place, h.LogProducer) {
		return
	}
	serviceresp := h.Services.BookSession(r.Context(), &req, requesterID, traceID)
	if !h.serviceResponse(serviceresp, w, r, traceID, place) {
		return
	}
	data := map[string]any{"session": serviceresp.Data.Session}
	response.SendResponse(r.Context(), w, response.OkResponse(data, http.StatusCreated), traceID, place, h.LogProducer)
}

func (h *Handler) CancelSession(w http.ResponseWriter, r *http.Request) {
	const place = CancelSession
	traceID := response.TraceID(r.Context())
	requesterID, ok := h.getRequester(w, r, traceID, place)
	if !ok {
		return
	}
	sessionID := mux.Vars(r)["sessionID"]
	if !response.CheckContext(r.Context(), w, traceID, place, h.LogProducer) {
		return
	}
	serviceresp := h.Services.CancelSession(r.Context(), sessionID, requesterID, traceID)
	if !h.serviceResponse(serviceresp, w, r, traceID, place) {
		return
	}
	data := map[string]any{"message": "Session has been cancelled", "session_id": sessionID}
	response.SendResponse(r.Context(), w, response.OkResponse(data, http.StatusOK), traceID, place, h.LogProducer)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	const place = GetSession
	traceID := response.TraceID(r.Context())
	requesterID, ok := h.getRequester(w, r, traceID, place)
	if !ok {
		return
	}
	if !response.CheckContext(r.Context(), w, traceID, place, h.LogProducer) {
		return
	}
	serviceresp := h.Services.GetSession(r.Context(), mux.Vars(r)["sessionID"], requesterID, traceID)
	if !h.serviceResponse(serviceresp, w, r, traceID, place) {
		return
	}
	data := map[string]any{"session": serviceresp.Data.Session}
	response.SendResponse(r.Context(), w, response.OkResponse(data, http.StatusOK), traceID, place, h.LogProducer)
}

// GetMySessions lists the requester's sessions. ?role=instructor|student narrows the list.
func (h *Handler) GetMySessions(w http.ResponseWriter, r *http.Request) {
	const place = GetMySessions
	traceID := response.TraceID(r.Context())
	requesterID, ok := h.getRequester(w, r, traceID, place)
	if !ok {
		return
	}
	role := r.URL.Query().Get("role")
	if !response.CheckContext(r.Context(), w, traceID, place, h.LogProducer) {
		return
	}
	serviceresp := h.Services.GetMySessions(r.Context(), requesterID, role, traceID)
	if !h.serviceResponse(serviceresp, w, r, traceID, place) {
		return
	}
	data := map[string]any{"sessions": sessionList(serviceresp.Data.Sessions)}
	response.SendResponse(r.Context(), w, response.OkResponse(data, http.StatusOK), traceID, place, h.LogProducer)
}

func (h *Handler) GetOrganizationSessions(w http.ResponseWriter, r *http.Request) {
	const place = GetOrganizationSessions
	traceID := response.TraceID(r.Context())
	requesterID, ok := h.getRequester(w, r, traceID, place)
	if !ok {
		return
	}
	if !response.CheckContext(r.Context(), w, traceID, place, h.LogProducer) {
		return
	}
	serviceresp := h.Services.GetOrganizationSessions(r.Context(), mux.Vars(r)["orgID"], requesterID, traceID)
	if !h.serviceResponse(serviceresp, w, r, traceID, place) {
		return
	}
	data := map[string]any{"sessions": sessionList(serviceresp.Data.Sessions)}
	response.SendResponse(r.Context(), w, response.OkResponse(data, http.StatusOK), traceID, place, h.LogProducer)
}
