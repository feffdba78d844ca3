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
)

type MembershipDatabase struct {
	databaseclient *DBObject
}

func NewMembershipDatabase(db *DBObject) *MembershipDatabase {
	return &MembershipDatabase{databaseclient: db}
}

const selectMembershipQuery = `SELECT org_id, user_id, role, created_at FROM organization_members WHERE org_id = $1 AND user_id = $2`

func (md *MembershipDatabase) GetMembership(ctx context.Context, orgid uuid.UUID, userid uuid.UUID) *repository.RepositoryResponse {
	const place = repository.GetMembership
	start := time.Now()
	defer metrics.DBMetrics(place, start)
	var m model.Membership
	err := md.databaseclient.connect.QueryRowContext(ctx, selectMembershipQuery, orgid, userid).Scan(&m.OrgId, &m.UserId, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.NotFoundErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.NotFoundError(erro.ErrorMembershipNotFound), place)
		}
		metrics.ClassroomDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMembers, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Membership: &m}, place, "Successful get membership from database")
}
