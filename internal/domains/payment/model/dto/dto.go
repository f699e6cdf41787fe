package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelhub/internal/domains/payment/model"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type RecordPaymentRequest struct {
	BookingID *string `json:"booking_id" validate:"omitempty"`
	StudentID *string `json:"student_id" validate:"omitempty"`
	HostelID  string  `json:"hostel_id"  validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,oneof=cash transfer card"`
	Reference string  `json:"reference"  validate:"omitempty,max=100"`
	Notes     string  `json:"notes"      validate:"omitempty,max=500"`
}

func (r *RecordPaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: r.BookingID,
		StudentID: r.StudentID,
		HostelID:  r.HostelID,
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		Notes:     r.Notes,
		PaidAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID *string   `json:"booking_id,omitempty"`
	StudentID *string   `json:"student_id,omitempty"`
	HostelID  string    `json:"hostel_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.StudentID = model.StudentID
	r.HostelID = model.HostelID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Reference = model.Reference
	r.Notes = model.Notes
	r.PaidAt = model.PaidAt
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, m := range models {
		r.Payments[i].FromModel(m)
	}
}

type GenerateScheduleRequest struct {
	StudentID     string  `json:"student_id"     validate:"required"`
	HostelID      string  `json:"hostel_id"      validate:"required"`
	MonthlyAmount float64 `json:"monthly_amount" validate:"required,gt=0"`
	Installments  int     `json:"installments"   validate:"required,min=1,max=24"`
	StartDate     string  `json:"start_date"     validate:"required,datetime=2006-01-02"`
}

// ToModels expands the request into one schedule row per installment,
// due dates advancing month by month from the start date.
func (g *GenerateScheduleRequest) ToModels(user string) []model.Schedule {
	start, _ := time.Parse(constant.DateOnly, g.StartDate)

	schedules := make([]model.Schedule, g.Installments)
	for i := range schedules {
		schedules[i] = model.Schedule{
			ID:            uuid.NewString(),
			StudentID:     g.StudentID,
			HostelID:      g.HostelID,
			InstallmentNo: i + 1,
			Amount:        g.MonthlyAmount,
			DueDate:       start.AddDate(0, i, 0),
			Paid:          false,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return schedules
}

type MarkPaidRequest struct {
	Amount float64 `json:"amount" validate:"omitempty,gt=0"`
}

type ScheduleResponse struct {
	ID            string     `json:"id"`
	StudentID     string     `json:"student_id"`
	HostelID      string     `json:"hostel_id"`
	InstallmentNo int        `json:"installment_no"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"due_date"`
	Paid          bool       `json:"paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.Schedule) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.HostelID = model.HostelID
	r.InstallmentNo = model.InstallmentNo
	r.Amount = model.Amount
	r.DueDate = model.DueDate
	r.Paid = model.Paid
	r.PaidAt = model.PaidAt
	r.Metadata.FromModel(model.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, m := range models {
		r.Schedules[i].FromModel(m)
	}
}

// PaymentEvent is the payload published to Kafka when a payment lands.
type PaymentEvent struct {
	EventType string    `json:"event_type"`
	PaymentID string    `json:"payment_id"`
	HostelID  string    `json:"hostel_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	EmittedAt time.Time `json:"emitted_at"`
}
