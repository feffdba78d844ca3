package repository

import (
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
)

const (
	CreateSession             = "Repository-CreateSession"
	FindOverlappingSessions   = "Repository-FindOverlappingSessions"
	GetSession                = "Repository-GetSession"
	DeleteSession             = "Repository-DeleteSession"
	GetUserSessions           = "Repository-GetUserSessions"
	GetOrganizationSessions   = "Repository-GetOrganizationSessions"
	GetMembership             = "Repository-GetMembership"
	GetMembershipCache        = "Repository-GetMembershipCache"
	AddMembershipCache        = "Repository-AddMembershipCache"
	AcquireBookingLock        = "Repository-AcquireBookingLock"
	ReleaseBookingLock        = "Repository-ReleaseBookingLock"
	RoleFilterInstructor      = "instructor"
	RoleFilterStudent         = "student"
	RoleFilterAny             = ""
	ExclusionViolationCode    = "23P01"
	CheckViolationCode        = "23514"
	ForeignKeyViolationCode   = "23503"
	InvalidTextRepresentation = "22P02"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}
type Data struct {
	Session    *model.Session
	Sessions   []*model.Session
	Membership *model.Membership
	LockToken  string
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{Success: false, Errors: err, Place: place}
}
func SuccessResponse(data Data, place string, succmessage string) *RepositoryResponse {
	return &RepositoryResponse{Success: true, Data: data, Place: place, SuccessMessage: succmessage}
}
