package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	ScheduleTableName  = "payment_schedules"
	ScheduleEntityName = "payment_schedule"

	FieldScheduleID            = "id"
	FieldScheduleStudentID     = "student_id"
	FieldScheduleHostelID      = "hostel_id"
	FieldScheduleInstallmentNo = "installment_no"
	FieldScheduleAmount        = "amount"
	FieldScheduleDueDate       = "due_date"
	FieldSchedulePaid          = "paid"
	FieldSchedulePaidAt        = "paid_at"
)

// Schedule is one monthly installment owed by a student.
type Schedule struct {
	ID            string     `db:"id"`
	StudentID     string     `db:"student_id"`
	HostelID      string     `db:"hostel_id"`
	InstallmentNo int        `db:"installment_no"`
	Amount        float64    `db:"amount"`
	DueDate       time.Time  `db:"due_date"`
	Paid          bool       `db:"paid"`
	PaidAt        *time.Time `db:"paid_at"`
	model.Metadata
}
