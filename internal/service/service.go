package service

import (
	"context"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type DBSessionRepos interface {
	CreateSession(ctx context.Context, session *model.Session) *repository.RepositoryResponse
	FindOverlappingSessions(ctx context.Context, instructorid uuid.UUID, starttime, endtime time.Time) *repository.RepositoryResponse
	GetSession(ctx context.Context, sessionid uuid.UUID) *repository.RepositoryResponse
	DeleteSession(ctx context.Context, sessionid uuid.UUID) *repository.RepositoryResponse
	GetUserSessions(ctx context.Context, userid uuid.UUID, role string) *repository.RepositoryResponse
	GetOrganizationSessions(ctx context.Context, orgid uuid.UUID) *repository.RepositoryResponse
}
type DBMembershipRepos interface {
	GetMembership(ctx context.Context, orgid uuid.UUID, userid uuid.UUID) *repository.RepositoryResponse
}
type CacheMembershipRepos interface {
	GetMembershipCache(ctx context.Context, orgid uuid.UUID, userid uuid.UUID) *repository.RepositoryResponse
	AddMembershipCache(ctx context.Context, membership *model.Membership) *repository.RepositoryResponse
}
type BookingLocker interface {
	AcquireBookingLock(ctx context.Context, instructorid uuid.UUID) *repository.RepositoryResponse
	ReleaseBookingLock(ctx context.Context, instructorid uuid.UUID, token string) *repository.RepositoryResponse
}

// Notifier delivers session events to participants. Callers never observe the outcome.
type Notifier interface {
	Notify(ctx context.Context, event *model.SessionEvent)
}
type LogProducer interface {
	NewClassroomLog(level, place, traceid, msg string)
}

const (
	UseCase_BookSession             = "UseCase-BookSession"
	UseCase_CancelSession           = "UseCase-CancelSession"
	UseCase_GetSession              = "UseCase-GetSession"
	UseCase_GetMySessions           = "UseCase-GetMySessions"
	UseCase_GetOrganizationSessions = "UseCase-GetOrganizationSessions"
	UseCase_GetMembership           = "UseCase-GetMembership"
	EnqueueNotification             = "EnqueueNotification"
	NotificationTimeout             = 15 * time.Second
)

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}
type Data struct {
	Session  *model.Session
	Sessions []*model.Session
}
