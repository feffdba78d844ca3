package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionServiceImplement struct {
	Sessionrepo    DBSessionRepos
	Membershiprepo DBMembershipRepos
	Cache          CacheMembershipRepos
	Locker         BookingLocker
	Notifier       Notifier
	Logproducer    LogProducer
	TaskQueue      chan func()
	logger         *zap.Logger
	wg             *sync.WaitGroup
	closechan      chan struct{}
}

func NewSessionService(sessionrepo DBSessionRepos, membershiprepo DBMembershipRepos, cache CacheMembershipRepos, locker BookingLocker,
	notifier Notifier, logproducer LogProducer, workers int, queuesize int, logger *zap.Logger) *SessionServiceImplement {
	use := &SessionServiceImplement{
		Sessionrepo:    sessionrepo,
		Membershiprepo: membershiprepo,
		Cache:          cache,
		Locker:         locker,
		Notifier:       notifier,
		Logproducer:    logproducer,
		TaskQueue:      make(chan func(), queuesize),
		logger:         logger,
		wg:             &sync.WaitGroup{},
		closechan:      make(chan struct{}),
	}
	for i := 1; i <= workers; i++ {
		use.wg.Add(1)
		go use.taskWorker(i)
	}
	return use
}

func (use *SessionServiceImplement) BookSession(ctx context.Context, req *model.BookSessionRequest, requesterid uuid.UUID, traceid string) *ServiceResponse {
	const place = UseCase_BookSession
	if serviceresp := use.validateData(req, traceid, place); serviceresp != nil {
		return serviceresp
	}
	orgid, _ := uuid.Parse(req.OrgId)
	instructorid, _ := uuid.Parse(req.InstructorId)
	studentid, _ := uuid.Parse(req.StudentId)
	if !req.StartTime.Before(req.EndTime) {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, erro.ErrorInvalidTimeRange)
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidTimeRange)}
	}
	if instructorid == studentid {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, erro.ErrorSameParticipant)
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorSameParticipant)}
	}
	if serviceresp := use.checkMember(ctx, orgid, requesterid, erro.ForbiddenError(erro.ErrorNotMember), traceid); serviceresp != nil {
		return serviceresp
	}
	if instructorid != requesterid {
		if serviceresp := use.checkMember(ctx, orgid, instructorid, erro.ClientError(erro.ErrorInstructorNotMember), traceid); serviceresp != nil {
			return serviceresp
		}
	}
	if studentid != requesterid {
		if serviceresp := use.checkMember(ctx, orgid, studentid, erro.ClientError(erro.ErrorStudentNotMember), traceid); serviceresp != nil {
			return serviceresp
		}
	}
	lockresp := use.Locker.AcquireBookingLock(ctx, instructorid)
	if !lockresp.Success && lockresp.Errors != nil {
		if lockresp.Errors.Type == erro.ConflictErrorType {
			use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, lockresp.Place, traceid, lockresp.Errors.Message)
			return &ServiceResponse{Success: false, Errors: lockresp.Errors}
		}
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, lockresp.Place, traceid, fmt.Sprintf("Booking without lock: %s", lockresp.Errors.Message))
	}
	if lockresp.Success {
		defer use.releaseLock(ctx, instructorid, lockresp.Data.LockToken, traceid)
	}
	scanresp := use.Sessionrepo.FindOverlappingSessions(ctx, instructorid, req.StartTime, req.EndTime)
	if serviceresp := use.requestToRepository(scanresp, traceid); serviceresp != nil {
		return serviceresp
	}
	if busy := overlapping(scanresp.Data.Sessions, req.StartTime, req.EndTime); busy > 0 {
		metrics.ClassroomBookingConflictsTotal.WithLabelValues("scan").Inc()
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Instructor %s is busy: %d overlapping session(s)", instructorid, busy))
		return &ServiceResponse{Success: false, Errors: erro.ConflictError(erro.ErrorInstructorNotAvailable)}
	}
	session := &model.Session{
		Id:           uuid.New(),
		OrgId:        orgid,
		InstructorId: instructorid,
		StudentId:    studentid,
		StartTime:    req.StartTime.UTC(),
		EndTime:      req.EndTime.UTC(),
		Status:       model.StatusScheduled,
	}
	createresp := use.Sessionrepo.CreateSession(ctx, session)
	if serviceresp := use.requestToRepository(createresp, traceid); serviceresp != nil {
		return serviceresp
	}
	created := createresp.Data.Session
	use.enqueueNotification(ctx, &model.SessionEvent{Type: model.EventSessionBooked, Session: created, ActorId: requesterid, TraceId: traceid, OccurredAt: time.Now().UTC()}, traceid)
	use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Session %s has been booked", created.Id))
	return &ServiceResponse{Success: true, Data: Data{Session: created}}
}

func (use *SessionServiceImplement) CancelSession(ctx context.Context, sessionid string, requesterid uuid.UUID, traceid string) *ServiceResponse {
	const place = UseCase_CancelSession
	id, serviceresp := use.parsingID(sessionid, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	getresp := use.Sessionrepo.GetSession(ctx, id)
	if serviceresp := use.requestToRepository(getresp, traceid); serviceresp != nil {
		return serviceresp
	}
	session := getresp.Data.Session
	if !session.IsParticipant(requesterid) {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s is not a participant of session %s", requesterid, id))
		return &ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotParticipant)}
	}
	delresp := use.Sessionrepo.DeleteSession(ctx, id)
	if serviceresp := use.requestToRepository(delresp, traceid); serviceresp != nil {
		return serviceresp
	}
	use.enqueueNotification(ctx, &model.SessionEvent{Type: model.EventSessionCancelled, Session: session, ActorId: requesterid, TraceId: traceid, OccurredAt: time.Now().UTC()}, traceid)
	use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Session %s has been cancelled", id))
	return &ServiceResponse{Success: true}
}

func (use *SessionServiceImplement) GetSession(ctx context.Context, sessionid string, requesterid uuid.UUID, traceid string) *ServiceResponse {
	const place = UseCase_GetSession
	id, serviceresp := use.parsingID(sessionid, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	getresp := use.Sessionrepo.GetSession(ctx, id)
	if serviceresp := use.requestToRepository(getresp, traceid); serviceresp != nil {
		return serviceresp
	}
	session := getresp.Data.Session
	if !session.IsParticipant(requesterid) {
		membership, serviceresp := use.getMembership(ctx, session.OrgId, requesterid, traceid)
		if serviceresp != nil {
			if serviceresp.Errors.Type == erro.NotFoundErrorType {
				return &ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotParticipant)}
			}
			return serviceresp
		}
		if !IsPrivileged(membership) {
			use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s with role %s can not read session %s", requesterid, membership.Role, id))
			return &ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotParticipant)}
		}
	}
	return &ServiceResponse{Success: true, Data: Data{Session: session}}
}

func (use *SessionServiceImplement) GetMySessions(ctx context.Context, requesterid uuid.UUID, role string, traceid string) *ServiceResponse {
	const place = UseCase_GetMySessions
	switch role {
	case repository.RoleFilterInstructor, repository.RoleFilterStudent, repository.RoleFilterAny:
	default:
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Unknown role filter: %q", role))
		return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidQueryParameter)}
	}
	listresp := use.Sessionrepo.GetUserSessions(ctx, requesterid, role)
	if serviceresp := use.requestToRepository(listresp, traceid); serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Sessions: listresp.Data.Sessions}}
}

func (use *SessionServiceImplement) GetOrganizationSessions(ctx context.Context, orgid string, requesterid uuid.UUID, traceid string) *ServiceResponse {
	const place = UseCase_GetOrganizationSessions
	id, serviceresp := use.parsingID(orgid, traceid, place)
	if serviceresp != nil {
		return serviceresp
	}
	membership, serviceresp := use.getMembership(ctx, id, requesterid, traceid)
	if serviceresp != nil {
		if serviceresp.Errors.Type == erro.NotFoundErrorType {
			return &ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotMember)}
		}
		return serviceresp
	}
	if !IsPrivileged(membership) {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("User %s with role %s can not list sessions of organization %s", requesterid, membership.Role, id))
		return &ServiceResponse{Success: false, Errors: erro.ForbiddenError(erro.ErrorNotPrivileged)}
	}
	listresp := use.Sessionrepo.GetOrganizationSessions(ctx, id)
	if serviceresp := use.requestToRepository(listresp, traceid); serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Sessions: listresp.Data.Sessions}}
}
