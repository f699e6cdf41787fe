package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldHostelID     = "hostel_id"
	FieldRoomID       = "room_id"
	FieldUserID       = "user_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCheckedIn = "checked_in"
)

type Booking struct {
	ID           string     `db:"id"`
	HostelID     string     `db:"hostel_id"`
	RoomID       string     `db:"room_id"`
	UserID       string     `db:"user_id"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	Notes        string     `db:"notes"`
	Status       string     `db:"status"`
	model.Metadata
}
