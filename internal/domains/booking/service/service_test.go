package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostelhub/config"
	kafkaMocks "hostelhub/infras/kafka/mocks"
	"hostelhub/infras/otel/mocks"
	adminMocks "hostelhub/internal/domains/admin/service/mocks"
	bookingMocks "hostelhub/internal/domains/booking/mocks"
	"hostelhub/internal/domains/booking/model"
	"hostelhub/internal/domains/booking/model/dto"
	"hostelhub/internal/domains/booking/service"
	roomMocks "hostelhub/internal/domains/room/mocks"
	roomModel "hostelhub/internal/domains/room/model"
	cacheMocks "hostelhub/shared/cache/mocks"
	"hostelhub/shared/constant"
	"hostelhub/shared/failure"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

func newBookingService(t *testing.T) (
	service.Booking,
	*bookingMocks.MockBooking,
	*roomMocks.MockRoom,
	*adminMocks.MockAdmin,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockAdmin := adminMocks.NewMockAdmin(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockAdmin, cfg, mockCache, mockKafka, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockAdmin, mockCache, mockKafka
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:           "room-id",
		HostelID:     "hostel-id",
		Number:       "101",
		Type:         "double",
		Capacity:     2,
		Occupied:     0,
		MonthlyPrice: 1500,
		Status:       roomModel.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:          "booking-id",
		HostelID:    "hostel-id",
		RoomID:      "room-id",
		UserID:      "user-id",
		CheckInDate: timezone.Now(),
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockAdmin, mockCache, mockKafka := newBookingService(t)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				HostelID:    "hostel-id",
				RoomID:      "room-id",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "caller not assigned to hostel",
			req: dto.CreateBookingRequest{
				HostelID:    "hostel-id",
				RoomID:      "room-id",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(failure.Forbidden("admin is not assigned to this hostel"))
			},
			wantErr: true,
		},
		{
			name: "room does not exist",
			req: dto.CreateBookingRequest{
				HostelID:    "hostel-id",
				RoomID:      "missing-room",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room belongs to another hostel",
			req: dto.CreateBookingRequest{
				HostelID:    "other-hostel",
				RoomID:      "room-id",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr: true,
		},
		{
			name: "room not available",
			req: dto.CreateBookingRequest{
				HostelID:    "hostel-id",
				RoomID:      "room-id",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				fullRoom := availableRoom()
				fullRoom.Status = roomModel.StatusFull

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(fullRoom, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				HostelID:    "hostel-id",
				RoomID:      "room-id",
				CheckInDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

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
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// Give async event publishing and cache invalidation a moment to run
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockAdmin, mockCache, mockKafka := newBookingService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful confirmation",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking already confirmed",
			id:   "booking-id",
			setupMock: func() {
				confirmed := pendingBooking()
				confirmed.Status = model.StatusConfirmed

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "room at capacity",
			id:   "booking-id",
			setupMock: func() {
				fullRoom := availableRoom()
				fullRoom.Occupied = fullRoom.Capacity

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(fullRoom, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Confirm(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockAdmin, mockCache, mockKafka := newBookingService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancel pending booking",
			id:   "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cancel confirmed booking releases the room slot",
			id:   "booking-id",
			setupMock: func() {
				confirmed := pendingBooking()
				confirmed.Status = model.StatusConfirmed

				occupiedRoom := availableRoom()
				occupiedRoom.Occupied = occupiedRoom.Capacity
				occupiedRoom.Status = roomModel.StatusFull

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockAdmin.EXPECT().
					AuthorizeHostelWrite(gomock.Any(), "hostel-id").
					Return(nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupiedRoom, nil)

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking already cancelled",
			id:   "booking-id",
			setupMock: func() {
				cancelled := pendingBooking()
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "checked-in booking cannot be cancelled",
			id:   "booking-id",
			setupMock: func() {
				checkedIn := pendingBooking()
				checkedIn.Status = model.StatusCheckedIn

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedIn, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
