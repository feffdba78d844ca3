package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (use *SessionServiceImplement) validateData(data any, traceid string, place string) *ServiceResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fielderr := validationErrors[0]
		var msg string
		switch fielderr.Tag() {
		case "required":
			msg = fmt.Sprintf(erro.ErrorMissingField, fielderr.Field())
		default:
			msg = fmt.Sprintf(erro.ErrorInvalidField, fielderr.Field())
		}
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, msg)
		return &ServiceResponse{Success: false, Errors: erro.ClientError(msg)}
	}
	use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, err.Error())
	return &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidDataReq)}
}

func (use *SessionServiceImplement) parsingID(id string, traceid string, place string) (uuid.UUID, *ServiceResponse) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse Error: %v", err))
		return uuid.Nil, &ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidDinamicParameter)}
	}
	return parsed, nil
}

// requestToRepository hides server-side details from the caller and logs the outcome.
func (use *SessionServiceImplement) requestToRepository(response *repository.RepositoryResponse, traceid string) *ServiceResponse {
	if !response.Success && response.Errors != nil {
		if response.Errors.Type == erro.ServerErrorType {
			use.Logproducer.NewClassroomLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.ClassroomServiceUnavalaible)}
		}
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
		return &ServiceResponse{Success: false, Errors: response.Errors}
	}
	use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return nil
}

// getMembership reads through the cache. Cache failures fall back to the database.
func (use *SessionServiceImplement) getMembership(ctx context.Context, orgid uuid.UUID, userid uuid.UUID, traceid string) (*model.Membership, *ServiceResponse) {
	const place = UseCase_GetMembership
	cacheresp := use.Cache.GetMembershipCache(ctx, orgid, userid)
	if cacheresp.Success {
		use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, cacheresp.Place, traceid, cacheresp.SuccessMessage)
		return cacheresp.Data.Membership, nil
	}
	if cacheresp.Errors != nil {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, cacheresp.Place, traceid, cacheresp.Errors.Message)
	}
	dbresp := use.Membershiprepo.GetMembership(ctx, orgid, userid)
	if serviceresp := use.requestToRepository(dbresp, traceid); serviceresp != nil {
		return nil, serviceresp
	}
	membership := dbresp.Data.Membership
	addresp := use.Cache.AddMembershipCache(ctx, membership)
	if !addresp.Success && addresp.Errors != nil {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, addresp.Place, traceid, addresp.Errors.Message)
	} else {
		use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Membership of user %s in organization %s has been cached", userid, orgid))
	}
	return membership, nil
}

// checkMember turns an absent membership into denied; other failures pass through.
func (use *SessionServiceImplement) checkMember(ctx context.Context, orgid uuid.UUID, userid uuid.UUID, denied *erro.CustomError, traceid string) *ServiceResponse {
	_, serviceresp := use.getMembership(ctx, orgid, userid, traceid)
	if serviceresp == nil {
		return nil
	}
	if serviceresp.Errors.Type == erro.NotFoundErrorType {
		return &ServiceResponse{Success: false, Errors: denied}
	}
	return serviceresp
}

// overlapping counts the scanned sessions that intersect [start, end).
// Sessions touching a boundary are not conflicts.
func overlapping(sessions []*model.Session, start, end time.Time) int {
	busy := 0
	for _, session := range sessions {
		if session.Overlaps(start, end) {
			busy++
		}
	}
	return busy
}

func (use *SessionServiceImplement) releaseLock(ctx context.Context, instructorid uuid.UUID, token string, traceid string) {
	resp := use.Locker.ReleaseBookingLock(context.WithoutCancel(ctx), instructorid, token)
	if !resp.Success && resp.Errors != nil {
		use.Logproducer.NewClassroomLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
	}
}

// enqueueNotification hands the event to the worker pool. A full queue drops it.
func (use *SessionServiceImplement) enqueueNotification(ctx context.Context, event *model.SessionEvent, traceid string) {
	const place = EnqueueNotification
	task := func() {
		taskctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), NotificationTimeout)
		defer cancel()
		use.Notifier.Notify(taskctx, event)
	}
	select {
	case use.TaskQueue <- task:
		metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "enqueued").Inc()
		use.Logproducer.NewClassroomLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Notification %s has been enqueued", event.Type))
	default:
		metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "dropped").Inc()
		use.Logproducer.NewClassroomLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
	}
}
