package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostelhub/config"
	"hostelhub/infras/otel/mocks"
	adminMocks "hostelhub/internal/domains/admin/mocks"
	"hostelhub/internal/domains/admin/model"
	"hostelhub/internal/domains/admin/service"
	hostelMocks "hostelhub/internal/domains/hostel/mocks"
	userMocks "hostelhub/internal/domains/user/mocks"
	cacheMocks "hostelhub/shared/cache/mocks"
	"hostelhub/shared/constant"
)

func newAdminService(t *testing.T) (
	service.Admin,
	*adminMocks.MockAdmin,
	*adminMocks.MockAssignment,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockAssignmentRepo := adminMocks.NewMockAssignment(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockHostelRepo := hostelMocks.NewMockHostel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAssignmentRepo, mockUserRepo, mockHostelRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockAssignmentRepo
}

func TestAdminService_AuthorizeHostelWrite(t *testing.T) {
	svc, mockRepo, mockAssignmentRepo := newAdminService(t)

	activeAdmin := model.Admin{
		ID:     "admin-id",
		UserID: "user-id",
		Active: true,
	}

	tests := []struct {
		name      string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "superadmin passes without lookups",
			role:      constant.RoleSuperAdmin,
			setupMock: func() {},
			wantErr:   false,
		},
		{
			name: "identity without admin profile passes",
			role: constant.RoleSupervisor,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Admin{}, nil)
			},
			wantErr: false,
		},
		{
			name: "assigned admin passes",
			role: constant.RoleAdmin,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeAdmin, nil)

				mockAssignmentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "admin without assignment is forbidden",
			role: constant.RoleAdmin,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeAdmin, nil)

				mockAssignmentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "assignment lookup failure propagates",
			role: constant.RoleAdmin,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeAdmin, nil)

				mockAssignmentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.AuthorizeHostelWrite(ctx, "hostel-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
