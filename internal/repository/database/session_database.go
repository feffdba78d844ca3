package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type SessionDatabase struct {
	databaseclient *DBObject
}

func NewSessionDatabase(db *DBObject) *SessionDatabase {
	return &SessionDatabase{databaseclient: db}
}

const sessionProjection = `s.id, s.org_id, s.instructor_id, s.student_id, s.start_time, s.end_time, s.status, s.created_at,
	i.email, i.display_name, st.email, st.display_name`

const (
	insertSessionQuery = `WITH s AS (
	INSERT INTO classroom_sessions (id, org_id, instructor_id, student_id, start_time, end_time, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, org_id, instructor_id, student_id, start_time, end_time, status, created_at
)
SELECT ` + sessionProjection + `
FROM s
JOIN users i ON i.id = s.instructor_id
JOIN users st ON st.id = s.student_id`
	selectOverlappingQuery = `SELECT id, org_id, instructor_id, student_id, start_time, end_time, status, created_at
FROM classroom_sessions
WHERE instructor_id = $1 AND status = 'scheduled' AND start_time < $3 AND end_time > $2
ORDER BY start_time`
	selectSessionBase = `SELECT ` + sessionProjection + `
FROM classroom_sessions s
JOIN users i ON i.id = s.instructor_id
JOIN users st ON st.id = s.student_id`
	selectSessionQuery           = selectSessionBase + ` WHERE s.id = $1`
	selectInstructorSessionQuery = selectSessionBase + ` WHERE s.instructor_id = $1 ORDER BY s.start_time`
	selectStudentSessionQuery    = selectSessionBase + ` WHERE s.student_id = $1 ORDER BY s.start_time`
	selectUserSessionQuery       = selectSessionBase + ` WHERE s.instructor_id = $1 OR s.student_id = $1 ORDER BY s.start_time`
	selectOrgSessionQuery        = selectSessionBase + ` WHERE s.org_id = $1 ORDER BY s.start_time`
	deleteSessionQuery           = `DELETE FROM classroom_sessions WHERE id = $1`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*model.Session, error) {
	session := &model.Session{Instructor: &model.UserProfile{}, Student: &model.UserProfile{}}
	err := row.Scan(&session.Id, &session.OrgId, &session.InstructorId, &session.StudentId,
		&session.StartTime, &session.EndTime, &session.Status, &session.CreatedAt,
		&session.Instructor.Email, &session.Instructor.DisplayName,
		&session.Student.Email, &session.Student.DisplayName)
	if err != nil {
		return nil, err
	}
	session.Instructor.Id = session.InstructorId
	session.Student.Id = session.StudentId
	return session, nil
}

func sessionError(err error, place string, querytype string) *repository.RepositoryResponse {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case repository.ExclusionViolationCode:
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ConflictErrorType, querytype).Inc()
			metrics.ClassroomBookingConflictsTotal.WithLabelValues("constraint").Inc()
			return repository.BadResponse(erro.ConflictError(erro.ErrorInstructorNotAvailable), place)
		case repository.CheckViolationCode:
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ClientErrorType, querytype).Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorInvalidTimeRange), place)
		case repository.ForeignKeyViolationCode:
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ClientErrorType, querytype).Inc()
			return repository.BadResponse(erro.ClientError(erro.ErrorUnknownParticipant), place)
		}
	}
	metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ServerErrorType, querytype).Inc()
	return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqSessions, err)), place)
}

func (sd *SessionDatabase) CreateSession(ctx context.Context, session *model.Session) *repository.RepositoryResponse {
	const place = repository.CreateSession
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	row := sd.databaseclient.connect.QueryRowContext(ctx, insertSessionQuery, session.Id, session.OrgId,
		session.InstructorId, session.StudentId, session.StartTime, session.EndTime, session.Status)
	created, err := scanSession(row)
	if err != nil {
		return sessionError(err, place, "INSERT")
	}
	return repository.SuccessResponse(repository.Data{Session: created}, place, "Successful create session in database")
}

func (sd *SessionDatabase) FindOverlappingSessions(ctx context.Context, instructorid uuid.UUID, starttime, endtime time.Time) *repository.RepositoryResponse {
	const place = repository.FindOverlappingSessions
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	rows, err := sd.databaseclient.connect.QueryContext(ctx, selectOverlappingQuery, instructorid, starttime, endtime)
	if err != nil {
		return sessionError(err, place, "SELECT")
	}
	defer rows.Close()
	sessions := make([]*model.Session, 0)
	for rows.Next() {
		var s model.Session
		err = rows.Scan(&s.Id, &s.OrgId, &s.InstructorId, &s.StudentId, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt)
		if err != nil {
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		sessions = append(sessions, &s)
	}
	if err = rows.Err(); err != nil {
		return sessionError(err, place, "SELECT")
	}
	return repository.SuccessResponse(repository.Data{Sessions: sessions}, place, "Successful check instructor availability in database")
}

func (sd *SessionDatabase) GetSession(ctx context.Context, sessionid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.GetSession
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	session, err := scanSession(sd.databaseclient.connect.QueryRowContext(ctx, selectSessionQuery, sessionid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.NotFoundErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.NotFoundError(erro.ErrorSessionNotFound), place)
		}
		return sessionError(err, place, "SELECT")
	}
	return repository.SuccessResponse(repository.Data{Session: session}, place, "Successful get session from database")
}

func (sd *SessionDatabase) DeleteSession(ctx context.Context, sessionid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.DeleteSession
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	result, err := sd.databaseclient.connect.ExecContext(ctx, deleteSessionQuery, sessionid)
	if err != nil {
		return sessionError(err, place, "DELETE")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return sessionError(err, place, "DELETE")
	}
	if affected == 0 {
		metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.NotFoundErrorType, "DELETE").Inc()
		return repository.BadResponse(erro.NotFoundError(erro.ErrorSessionNotFound), place)
	}
	return repository.SuccessResponse(repository.Data{}, place, "Successful delete session from database")
}

func (sd *SessionDatabase) GetUserSessions(ctx context.Context, userid uuid.UUID, role string) *repository.RepositoryResponse {
	const place = repository.GetUserSessions
	var query string
	switch role {
	case repository.RoleFilterInstructor:
		query = selectInstructorSessionQuery
	case repository.RoleFilterStudent:
		query = selectStudentSessionQuery
	case repository.RoleFilterAny:
		query = selectUserSessionQuery
	default:
		return repository.BadResponse(erro.ClientError(erro.ErrorInvalidQueryParameter), place)
	}
	return sd.listSessions(ctx, place, query, userid)
}

func (sd *SessionDatabase) GetOrganizationSessions(ctx context.Context, orgid uuid.UUID) *repository.RepositoryResponse {
	return sd.listSessions(ctx, repository.GetOrganizationSessions, selectOrgSessionQuery, orgid)
}

func (sd *SessionDatabase) listSessions(ctx context.Context, place string, query string, arg uuid.UUID) *repository.RepositoryResponse {
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	rows, err := sd.databaseclient.connect.QueryContext(ctx, query, arg)
	if err != nil {
		return sessionError(err, place, "SELECT")
	}
	defer rows.Close()
	sessions := make([]*model.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return sessionError(err, place, "SELECT")
	}
	return repository.SuccessResponse(repository.Data{Sessions: sessions}, place, "Successful get sessions from database")
}
