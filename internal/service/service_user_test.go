package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/mock"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

func TestUserService_ListUsers(t *testing.T) {
	users := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewUserService(users, logger.Nop())

	want := []models.User{{UserID: 1, Login: "a"}, {UserID: 2, Login: "b"}}
	users.EXPECT().ListUsers(gomock.Any()).Return(want, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		userID   int64
		repoErr  error
		expect   bool
		wantErr  error
	}{
		{name: "self", callerID: 1, userID: 1, expect: true},
		{name: "someone else", callerID: 1, userID: 2, wantErr: ErrOwnership},
		{name: "already gone", callerID: 3, userID: 3, expect: true, repoErr: store.ErrUserNotFound, wantErr: ErrNoValueFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mock.NewMockUserRepository(gomock.NewController(t))
			svc := NewUserService(users, logger.Nop())
			if tt.expect {
				users.EXPECT().DeleteUser(gomock.Any(), tt.userID).Return(tt.repoErr)
			}

			err := svc.DeleteUser(context.Background(), tt.callerID, tt.userID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_DeleteUser_OwnershipSubject(t *testing.T) {
	svc := NewUserService(mock.NewMockUserRepository(gomock.NewController(t)), logger.Nop())

	err := svc.DeleteUser(context.Background(), 1, 2)

	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, SubjectUser, valueErr.Subject)
	assert.Equal(t, "2", valueErr.Value)
}
