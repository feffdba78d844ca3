package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/middleware"
	mock_handlers "github.com/fredymanu76/lms-platform-sub001/internal/handlers/mocks"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type httpResponse struct {
	Success bool                       `json:"success"`
	Errors  *erro.CustomError          `json:"errors"`
	Data    map[string]json.RawMessage `json:"data"`
	Status  int                        `json:"status"`
}

var (
	requesterID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	slotStart   = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func newRouter(t *testing.T) (*mux.Router, *mock_handlers.MockSessionService) {
	return newRouterWithTimeout(t, 5*time.Second)
}

func newRouterWithTimeout(t *testing.T, timeout time.Duration) (*mux.Router, *mock_handlers.MockSessionService) {
	ctrl := gomock.NewController(t)
	services := mock_handlers.NewMockSessionService(ctrl)
	logs := mock_handlers.NewMockLogProducer(ctrl)
	logs.EXPECT().NewClassroomLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mw := middleware.NewMiddleware(configs.ServerConfig{RateLimit: 1000, RateBurst: 1000, RequestTimeout: timeout}, logs, zap.NewNop())
	t.Cleanup(mw.Stop)
	return handlers.NewHandler(services, mw, logs).InitRoutes(), services
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, userid string) (*httptest.ResponseRecorder, httpResponse) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-Request-ID", "trace-1")
	if userid != "" {
		req.Header.Set("X-User-ID", userid)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	var resp httpResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr, resp
}

func bookedSession() *model.Session {
	return &model.Session{
		Id:           uuid.New(),
		OrgId:        uuid.New(),
		InstructorId: requesterID,
		StudentId:    uuid.New(),
		StartTime:    slotStart,
		EndTime:      slotStart.Add(30 * time.Minute),
		Status:       model.StatusScheduled,
	}
}

func TestBookSession(t *testing.T) {
	session := bookedSession()
	body := `{"org_id":"` + session.OrgId.String() + `","instructor_id":"` + session.InstructorId.String() +
		`","student_id":"` + session.StudentId.String() + `","start_time":"2026-03-02T10:00:00Z","end_time":"2026-03-02T10:30:00Z"}`
	tests := []struct {
		name           string
		body           string
		userid         string
		mockservice    func(s *mock_handlers.MockSessionService)
		expectedStatus int
		expectedErrors *erro.CustomError
	}{
		{
			name:   "Success",
			body:   body,
			userid: requesterID.String(),
			mockservice: func(s *mock_handlers.MockSessionService) {
				s.EXPECT().BookSession(gomock.Any(), gomock.Any(), requesterID, "trace-1").
					DoAndReturn(func(ctx context.Context, req *model.BookSessionRequest, requesterid uuid.UUID, traceid string) *service.ServiceResponse {
						require.Equal(t, session.OrgId.String(), req.OrgId)
						require.Equal(t, session.StudentId.String(), req.StudentId)
						require.True(t, req.StartTime.Equal(slotStart))
						require.True(t, req.EndTime.Equal(slotStart.Add(30*time.Minute)))
						return &service.ServiceResponse{Success: true, Data: service.Data{Session: session}}
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed body",
			body:           `{"org_id": 42}`,
			userid:         requesterID.String(),
			mockservice:    func(s *mock_handlers.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: erro.ClientError(erro.ErrorInvalidDataReq),
		},
		{
			name:           "Timestamp is not RFC3339",
			body:           `{"start_time":"tomorrow at ten"}`,
			userid:         requesterID.String(),
			mockservice:    func(s *mock_handlers.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: erro.ClientError(erro.ErrorInvalidDataReq),
		},
		{
			name:   "Instructor not available",
			body:   body,
			userid: requesterID.String(),
			mockservice: func(s *mock_handlers.MockSessionService) {
				s.EXPECT().BookSession(gomock.Any(), gomock.Any(), requesterID, "trace-1").
					Return(&service.ServiceResponse{Success: false, Errors: erro.ConflictError(erro.ErrorInstructorNotAvailable)})
			},
			expectedStatus: http.StatusConflict,
			expectedErrors: erro.ConflictError(erro.ErrorInstructorNotAvailable),
		},
		{
			name:   "Not a member",
			body:   body,
			userid: requesterID.String(),
			mockservice: func(s *mock_handlers.MockSessionService) {
				s.EXPECT().BookSession(gomock.Any(), gomock.Any(), requesterID, "trace-1").
					Return(&service.ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotMember)})
			},
			expectedStatus: http.StatusForbidden,
			expectedErrors: erro.ForbiddenError(erro.ErrorNotMember),
		},
		{
			name:   "Service unavailable",
			body:   body,
			userid: requesterID.String(),
			mockservice: func(s *mock_handlers.MockSessionService) {
				s.EXPECT().BookSession(gomock.Any(), gomock.Any(), requesterID, "trace-1").
					Return(&service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.ClassroomServiceUnavalaible)})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedErrors: erro.ServerError(erro.ClassroomServiceUnavalaible),
		},
		{
			name:           "Missing user",
			body:           body,
			mockservice:    func(s *mock_handlers.MockSessionService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedErrors: erro.UnauthorizedError(erro.ErrorRequiredUserID),
		},
		{
			name:           "Malformed user",
			body:           body,
			userid:         "user-1",
			mockservice:    func(s *mock_handlers.MockSessionService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedErrors: erro.UnauthorizedError(erro.ErrorInvalidUserIDFormat),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, services := newRouter(t)
			tt.mockservice(services)
			rr, resp := doRequest(t, router, http.MethodPost, "/sessions", tt.body, tt.userid)
			require.Equal(t, tt.expectedStatus, rr.Code)
			require.Equal(t, tt.expectedStatus, resp.Status)
			require.Equal(t, tt.expectedErrors, resp.Errors)
			require.Equal(t, tt.expectedErrors == nil, resp.Success)
			require.Equal(t, "trace-1", rr.Header().Get("X-Request-ID"))
			if resp.Success {
				var got model.Session
				require.NoError(t, json.Unmarshal(resp.Data["session"], &got))
				require.Equal(t, session.Id, got.Id)
			}
		})
	}
}

func TestBookSession_CommittedAfterDeadline(t *testing.T) {
	router, services := newRouterWithTimeout(t, 50*time.Millisecond)
	session := bookedSession()
	services.EXPECT().BookSession(gomock.Any(), gomock.Any(), requesterID, "trace-1").
		DoAndReturn(func(ctx context.Context, req *model.BookSessionRequest, requesterid uuid.UUID, traceid string) *service.ServiceResponse {
			<-ctx.Done()
			return &service.ServiceResponse{Success: true, Data: service.Data{Session: session}}
		})
	body := `{"org_id":"` + session.OrgId.String() + `","instructor_id":"` + session.InstructorId.String() +
		`","student_id":"` + session.StudentId.String() + `","start_time":"2026-03-02T10:00:00Z","end_time":"2026-03-02T10:30:00Z"}`
	rr, resp := doRequest(t, router, http.MethodPost, "/sessions", body, requesterID.String())
	require.Equal(t, http.StatusCreated, rr.Code)
	require.True(t, resp.Success)
	require.Nil(t, resp.Errors)
}

func TestBookSession_ExpiredBeforeService(t *testing.T) {
	router, _ := newRouter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{}`)).WithContext(ctx)
	req.Header.Set("X-User-ID", requesterID.String())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp httpResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, erro.ServerError(erro.RequestTimedOut), resp.Errors)
}

func TestCancelSession(t *testing.T) {
	sessionid := uuid.New().String()
	tests := []struct {
		name           string
		serviceresp    *service.ServiceResponse
		expectedStatus int
	}{
		{"Success", &service.ServiceResponse{Success: true}, http.StatusOK},
		{"Unknown session", &service.ServiceResponse{Errors: erro.NotFoundError(erro.ErrorSessionNotFound)}, http.StatusNotFound},
		{"Third party", &service.ServiceResponse{Errors: erro.ForbiddenError(erro.ErrorNotParticipant)}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, services := newRouter(t)
			services.EXPECT().CancelSession(gomock.Any(), sessionid, requesterID, "trace-1").Return(tt.serviceresp)
			rr, resp := doRequest(t, router, http.MethodDelete, "/sessions/"+sessionid, "", requesterID.String())
			require.Equal(t, tt.expectedStatus, rr.Code)
			require.Equal(t, tt.serviceresp.Errors, resp.Errors)
			if resp.Success {
				require.JSONEq(t, `"`+sessionid+`"`, string(resp.Data["session_id"]))
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, services := newRouter(t)
		session := bookedSession()
		services.EXPECT().GetSession(gomock.Any(), session.Id.String(), requesterID, "trace-1").
			Return(&service.ServiceResponse{Success: true, Data: service.Data{Session: session}})
		rr, resp := doRequest(t, router, http.MethodGet, "/sessions/"+session.Id.String(), "", requesterID.String())
		require.Equal(t, http.StatusOK, rr.Code)
		var got model.Session
		require.NoError(t, json.Unmarshal(resp.Data["session"], &got))
		require.Equal(t, session.Id, got.Id)
		require.True(t, got.StartTime.Equal(slotStart))
	})
	t.Run("Invalid id", func(t *testing.T) {
		router, services := newRouter(t)
		services.EXPECT().GetSession(gomock.Any(), "12345", requesterID, "trace-1").
			Return(&service.ServiceResponse{Errors: erro.ClientError(erro.ErrorInvalidDinamicParameter)})
		rr, resp := doRequest(t, router, http.MethodGet, "/sessions/12345", "", requesterID.String())
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, erro.ClientError(erro.ErrorInvalidDinamicParameter), resp.Errors)
	})
}

func TestGetMySessions(t *testing.T) {
	t.Run("Role filter", func(t *testing.T) {
		router, services := newRouter(t)
		sessions := []*model.Session{bookedSession(), bookedSession()}
		services.EXPECT().GetMySessions(gomock.Any(), requesterID, "instructor", "trace-1").
			Return(&service.ServiceResponse{Success: true, Data: service.Data{Sessions: sessions}})
		rr, resp := doRequest(t, router, http.MethodGet, "/sessions?role=instructor", "", requesterID.String())
		require.Equal(t, http.StatusOK, rr.Code)
		var got []*model.Session
		require.NoError(t, json.Unmarshal(resp.Data["sessions"], &got))
		require.Len(t, got, 2)
	})
	t.Run("Empty list", func(t *testing.T) {
		router, services := newRouter(t)
		services.EXPECT().GetMySessions(gomock.Any(), requesterID, "", "trace-1").
			Return(&service.ServiceResponse{Success: true})
		rr, resp := doRequest(t, router, http.MethodGet, "/sessions", "", requesterID.String())
		require.Equal(t, http.StatusOK, rr.Code)
		require.JSONEq(t, `[]`, string(resp.Data["sessions"]))
	})
}

func TestGetOrganizationSessions(t *testing.T) {
	orgid := uuid.New().String()
	t.Run("Privileged", func(t *testing.T) {
		router, services := newRouter(t)
		services.EXPECT().GetOrganizationSessions(gomock.Any(), orgid, requesterID, "trace-1").
			Return(&service.ServiceResponse{Success: true, Data: service.Data{Sessions: []*model.Session{bookedSession()}}})
		rr, _ := doRequest(t, router, http.MethodGet, "/organizations/"+orgid+"/sessions", "", requesterID.String())
		require.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("Learner", func(t *testing.T) {
		router, services := newRouter(t)
		services.EXPECT().GetOrganizationSessions(gomock.Any(), orgid, requesterID, "trace-1").
			Return(&service.ServiceResponse{Errors: erro.ForbiddenError(erro.ErrorNotPrivileged)})
		rr, resp := doRequest(t, router, http.MethodGet, "/organizations/"+orgid+"/sessions", "", requesterID.String())
		require.Equal(t, http.StatusForbidden, rr.Code)
		require.Equal(t, erro.ForbiddenError(erro.ErrorNotPrivileged), resp.Errors)
	})
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t)
	rr, resp := doRequest(t, router, http.MethodGet, "/courses", "", requesterID.String())
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, erro.NotFoundError(erro.ErrorRouteNotFound), resp.Errors)
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newRouter(t)
	rr, resp := doRequest(t, router, http.MethodPut, "/sessions", "", requesterID.String())
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, erro.ClientError(erro.ErrorMethodNotAllowed), resp.Errors)
}

func TestMetricsRoute(t *testing.T) {
	router, _ := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "go_goroutines")
}
