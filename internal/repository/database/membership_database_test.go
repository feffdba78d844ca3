package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetMembership(t *testing.T) {
	orgid := uuid.New()
	userid := uuid.New()
	joined := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		name            string
		mockSetup       func(mock sqlmock.Sqlmock)
		expectedSuccess bool
		expectedRole    string
		expectedErrors  *erro.CustomError
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT org_id, user_id, role, created_at FROM organization_members").
					WithArgs(orgid, userid).
					WillReturnRows(sqlmock.NewRows([]string{"org_id", "user_id", "role", "created_at"}).
						AddRow(orgid.String(), userid.String(), model.RoleManager, joined))
			},
			expectedSuccess: true,
			expectedRole:    model.RoleManager,
		},
		{
			name: "Not a member",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM organization_members").WithArgs(orgid, userid).WillReturnError(sql.ErrNoRows)
			},
			expectedErrors: erro.NotFoundError(erro.ErrorMembershipNotFound),
		},
		{
			name: "DB Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM organization_members").WithArgs(orgid, userid).WillReturnError(errors.New("connection refused"))
			},
			expectedErrors: erro.ServerError("Error after request into organization_members: connection refused"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mockSetup(mock)
			repo := NewMembershipDatabase(NewDBObject(db, zap.NewNop()))
			response := repo.GetMembership(context.Background(), orgid, userid)
			assert.Equal(t, tt.expectedSuccess, response.Success)
			assert.Equal(t, tt.expectedErrors, response.Errors)
			if tt.expectedSuccess {
				require.NotNil(t, response.Data.Membership)
				assert.Equal(t, tt.expectedRole, response.Data.Membership.Role)
				assert.Equal(t, userid, response.Data.Membership.UserId)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
