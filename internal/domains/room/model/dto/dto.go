package dto

import (
	"github.com/google/uuid"

	"hostelhub/internal/domains/room/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateRoomRequest struct {
	HostelID     string  `json:"hostel_id"     validate:"required"`
	Number       string  `json:"number"        validate:"required,max=20"`
	Type         string  `json:"type"          validate:"required,oneof=single double dorm"`
	Capacity     int     `json:"capacity"      validate:"required,min=1,max=20"`
	MonthlyPrice float64 `json:"monthly_price" validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		HostelID:     c.HostelID,
		Number:       c.Number,
		Type:         c.Type,
		Capacity:     c.Capacity,
		Occupied:     0,
		MonthlyPrice: c.MonthlyPrice,
		Status:       model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number       string  `db:"number"        json:"number"        validate:"omitempty,max=20"`
	Type         string  `db:"type"          json:"type"          validate:"omitempty,oneof=single double dorm"`
	Capacity     int     `db:"capacity"      json:"capacity"      validate:"omitempty,min=1,max=20"`
	MonthlyPrice float64 `db:"monthly_price" json:"monthly_price" validate:"omitempty,gt=0"`
	Status       string  `db:"status"        json:"status"        validate:"omitempty,oneof=available full maintenance"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	HostelID     string  `json:"hostel_id"`
	Number       string  `json:"number"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	Occupied     int     `json:"occupied"`
	MonthlyPrice float64 `json:"monthly_price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HostelID = model.HostelID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.Occupied = model.Occupied
	r.MonthlyPrice = model.MonthlyPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}
