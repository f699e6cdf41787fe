package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelhub/internal/domains/booking/model"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateBookingRequest struct {
	HostelID     string  `json:"hostel_id"      validate:"required"`
	RoomID       string  `json:"room_id"        validate:"required"`
	CheckInDate  string  `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate *string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string  `json:"notes"          validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	checkIn, _ := time.Parse(constant.DateOnly, c.CheckInDate)

	var checkOut *time.Time

	if c.CheckOutDate != nil {
		parsed, _ := time.Parse(constant.DateOnly, *c.CheckOutDate)
		checkOut = &parsed
	}

	return model.Booking{
		ID:           uuid.NewString(),
		HostelID:     c.HostelID,
		RoomID:       c.RoomID,
		UserID:       user,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Notes:        c.Notes,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CheckInDate  string `db:"check_in_date"  json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `db:"check_out_date" json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `db:"notes"          json:"notes"          validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID           string     `json:"id"`
	HostelID     string     `json:"hostel_id"`
	RoomID       string     `json:"room_id"`
	UserID       string     `json:"user_id"`
	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.HostelID = model.HostelID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.Notes = model.Notes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

// BookingEvent is the payload published to Kafka on booking writes.
type BookingEvent struct {
	EventType string    `json:"event_type"`
	BookingID string    `json:"booking_id"`
	HostelID  string    `json:"hostel_id"`
	RoomID    string    `json:"room_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	EmittedAt time.Time `json:"emitted_at"`
}
