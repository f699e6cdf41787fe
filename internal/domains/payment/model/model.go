package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldStudentID = "student_id"
	FieldHostelID  = "hostel_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldPaidAt    = "paid_at"
)

const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodCard     = "card"
)

type Payment struct {
	ID        string    `db:"id"`
	BookingID *string   `db:"booking_id"`
	StudentID *string   `db:"student_id"`
	HostelID  string    `db:"hostel_id"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	Reference string    `db:"reference"`
	Notes     string    `db:"notes"`
	PaidAt    time.Time `db:"paid_at"`
	model.Metadata
}
