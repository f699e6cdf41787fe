package model

import "hostelhub/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldHostelID     = "hostel_id"
	FieldNumber       = "number"
	FieldType         = "type"
	FieldCapacity     = "capacity"
	FieldOccupied     = "occupied"
	FieldMonthlyPrice = "monthly_price"
	FieldStatus       = "status"
)

const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeDorm   = "dorm"

	StatusAvailable   = "available"
	StatusFull        = "full"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID           string  `db:"id"`
	HostelID     string  `db:"hostel_id"`
	Number       string  `db:"number"`
	Type         string  `db:"type"`
	Capacity     int     `db:"capacity"`
	Occupied     int     `db:"occupied"`
	MonthlyPrice float64 `db:"monthly_price"`
	Status       string  `db:"status"`
	model.Metadata
}
