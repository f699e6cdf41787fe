package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostelhub/config"
	"hostelhub/infras/otel/mocks"
	adminMocks "hostelhub/internal/domains/admin/service/mocks"
	hostelMocks "hostelhub/internal/domains/hostel/mocks"
	messMocks "hostelhub/internal/domains/mess/mocks"
	"hostelhub/internal/domains/mess/model"
	"hostelhub/internal/domains/mess/model/dto"
	"hostelhub/internal/domains/mess/service"
	cacheMocks "hostelhub/shared/cache/mocks"
	"hostelhub/shared/constant"
	"hostelhub/shared/failure"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

func newMenuService(t *testing.T) (
	service.Menu,
	*messMocks.MockMenu,
	*hostelMocks.MockHostel,
	*adminMocks.MockAdmin,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := messMocks.NewMockMenu(ctrl)
	mockHostelRepo := hostelMocks.NewMockHostel(ctrl)
	mockAdmin := adminMocks.NewMockAdmin(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHostelRepo, mockAdmin, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockHostelRepo, mockAdmin, mockCache
}

func lunchMenu() model.Menu {
	return model.Menu{
		ID:        "menu-id",
		HostelID:  "hostel-id",
		DayOfWeek: 1,
		Meal:      model.MealLunch,
		Items:     []string{"rice", "dal"},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestMenuService_Upsert(t *testing.T) {
	svc, mockRepo, mockHostelRepo, mockAdmin, mockCache := newMenuService(t)

	tests := []struct {
		name      string
		req       dto.UpsertMenuRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "creates a new slot",
			req: dto.UpsertMenuRequest{
				HostelID:  "hostel-id",
				DayOfWeek: 1,
				Meal:      model.MealLunch,
				Items:     []string{"rice", "dal"},
			},
			setupMock: func() {
				mockHostelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Menu{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "replaces an existing slot",
			req: dto.UpsertMenuRequest{
				HostelID:  "hostel-id",
				DayOfWeek: 1,
				Meal:      model.MealLunch,
				Items:     []string{"biryani"},
			},
			setupMock: func() {
				mockHostelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lunchMenu(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "hostel does not exist",
			req: dto.UpsertMenuRequest{
				HostelID:  "missing-hostel",
				DayOfWeek: 1,
				Meal:      model.MealLunch,
				Items:     []string{"rice"},
			},
			setupMock: func() {
				mockHostelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "admin assigned elsewhere cannot write this hostel",
			req: dto.UpsertMenuRequest{
				HostelID:  "other-hostel",
				DayOfWeek: 1,
				Meal:      model.MealLunch,
				Items:     []string{"rice"},
			},
			setupMock: func() {
				mockHostelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "other-hostel").
					Return(failure.Forbidden("admin is not assigned to this hostel"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.UpsertMenuRequest{
				HostelID:  "hostel-id",
				DayOfWeek: 1,
				Meal:      model.MealLunch,
				Items:     []string{"rice"},
			},
			setupMock: func() {
				mockHostelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Menu{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Upsert(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// Give async cache invalidation a moment to run
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestMenuService_Delete(t *testing.T) {
	svc, mockRepo, _, mockAdmin, mockCache := newMenuService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "menu-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lunchMenu(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "menu not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Menu{}, nil)
			},
			wantErr: true,
		},
		{
			name: "caller not assigned to the menu's hostel",
			id:   "menu-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lunchMenu(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(failure.Forbidden("admin is not assigned to this hostel"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
