package handlers

import (
	"context"
	"net/http"

	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/middleware"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=http_handlers.go -destination=mocks/mock.go
type SessionService interface {
	BookSession(ctx context.Context, req *model.BookSessionRequest, requesterid uuid.UUID, traceid string) *service.ServiceResponse
	CancelSession(ctx context.Context, sessionid string, requesterid uuid.UUID, traceid string) *service.ServiceResponse
	GetSession(ctx context.Context, sessionid string, requesterid uuid.UUID, traceid string) *service.ServiceResponse
	GetMySessions(ctx context.Context, requesterid uuid.UUID, role string, traceid string) *service.ServiceResponse
	GetOrganizationSessions(ctx context.Context, orgid string, requesterid uuid.UUID, traceid string) *service.ServiceResponse
}
type LogProducer interface {
	NewClassroomLog(level, place, traceid, msg string)
}
type Handler struct {
	Services    SessionService
	Middlewares middleware.MiddlewareService
	LogProducer LogProducer
}

const (
	BookSession             = "Handler-BookSession"
	CancelSession           = "Handler-CancelSession"
	GetSession              = "Handler-GetSession"
	GetMySessions           = "Handler-GetMySessions"
	GetOrganizationSessions = "Handler-GetOrganizationSessions"
	Router                  = "Handler-Router"
)

func NewHandler(services SessionService, middlewares middleware.MiddlewareService, logproducer LogProducer) *Handler {
	return &Handler{Services: services, Middlewares: middlewares, LogProducer: logproducer}
}

func (h *Handler) InitRoutes() *mux.Router {
	m := mux.NewRouter()
	m.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	api := m.PathPrefix("/").Subrouter()
	api.Use(h.Middlewares.Logging, h.Middlewares.RateLimiter, h.Middlewares.Authorized, h.Middlewares.Timeout)
	api.HandleFunc("/sessions", h.BookSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions", h.GetMySessions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionID}", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionID}", h.CancelSession).Methods(http.MethodDelete)
	api.HandleFunc("/organizations/{orgID}/sessions", h.GetOrganizationSessions).Methods(http.MethodGet)
	m.NotFoundHandler = http.HandlerFunc(h.notFound)
	m.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)
	return m
}
