package model

import "hostelhub/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldFullName       = "full_name"
	FieldPhone          = "phone"
	FieldActiveHostelID = "active_hostel_id"
	FieldActive         = "active"
)

type Admin struct {
	ID             string  `db:"id"`
	UserID         string  `db:"user_id"`
	FullName       string  `db:"full_name"`
	Phone          string  `db:"phone"`
	ActiveHostelID *string `db:"active_hostel_id"`
	Active         bool    `db:"active"`
	model.Metadata
}
