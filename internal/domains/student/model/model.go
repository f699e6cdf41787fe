package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	TableName  = "students"
	EntityName = "student"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldHostelID = "hostel_id"
	FieldRoomID   = "room_id"
	FieldStatus   = "status"
)

const (
	StatusApplied    = "applied"
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
)

type Student struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	HostelID     string     `db:"hostel_id"`
	RoomID       *string    `db:"room_id"`
	FullName     string     `db:"full_name"`
	Phone        string     `db:"phone"`
	Guardian     string     `db:"guardian"`
	Institution  string     `db:"institution"`
	Status       string     `db:"status"`
	CheckedInAt  *time.Time `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	model.Metadata
}
