package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
)

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleLearner = "learner"
)

const (
	EventSessionBooked    = "session.booked"
	EventSessionCancelled = "session.cancelled"
)

type UserProfile struct {
	Id          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

type Session struct {
	Id           uuid.UUID    `json:"id"`
	OrgId        uuid.UUID    `json:"org_id"`
	InstructorId uuid.UUID    `json:"instructor_id"`
	StudentId    uuid.UUID    `json:"student_id"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	Instructor   *UserProfile `json:"instructor,omitempty"`
	Student      *UserProfile `json:"student,omitempty"`
}

// Overlaps reports whether the session intersects [start, end).
// Sessions touching at a boundary do not overlap.
func (s *Session) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

func (s *Session) IsParticipant(userid uuid.UUID) bool {
	return s.InstructorId == userid || s.StudentId == userid
}

type Membership struct {
	OrgId     uuid.UUID `json:"org_id"`
	UserId    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionEvent struct {
	Type       string    `json:"type"`
	Session    *Session  `json:"session"`
	ActorId    uuid.UUID `json:"actor_id"`
	TraceId    string    `json:"trace_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BookSessionRequest struct {
	OrgId        string    `json:"org_id" validate:"required,uuid"`
	InstructorId string    `json:"instructor_id" validate:"required,uuid"`
	StudentId    string    `json:"student_id" validate:"required,uuid"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
}
