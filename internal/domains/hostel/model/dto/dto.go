package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"hostelhub/internal/domains/hostel/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateHostelRequest struct {
	Name         string   `json:"name"          validate:"required,min=3,max=100"`
	City         string   `json:"city"          validate:"required,max=100"`
	Address      string   `json:"address"       validate:"required,max=255"`
	GenderPolicy string   `json:"gender_policy" validate:"required,oneof=male female mixed"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,max=50"`
	Description  string   `json:"description"   validate:"omitempty"`
}

func (c *CreateHostelRequest) ToModel(user string) model.Hostel {
	return model.Hostel{
		ID:           uuid.NewString(),
		Name:         c.Name,
		City:         c.City,
		Address:      c.Address,
		GenderPolicy: c.GenderPolicy,
		Amenities:    pq.StringArray(c.Amenities),
		Description:  c.Description,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHostelRequest struct {
	Name         string         `db:"name"          json:"name"          validate:"omitempty,min=3,max=100"`
	City         string         `db:"city"          json:"city"          validate:"omitempty,max=100"`
	Address      string         `db:"address"       json:"address"       validate:"omitempty,max=255"`
	GenderPolicy string         `db:"gender_policy" json:"gender_policy" validate:"omitempty,oneof=male female mixed"`
	Amenities    pq.StringArray `db:"amenities"     json:"amenities"     validate:"omitempty,dive,max=50"`
	Description  string         `db:"description"   json:"description"   validate:"omitempty"`
}

type HostelResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	GenderPolicy string   `json:"gender_policy"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *HostelResponse) FromModel(model model.Hostel) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Address = model.Address
	r.GenderPolicy = model.GenderPolicy
	r.Amenities = model.Amenities
	r.Description = model.Description
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHostelsResponse struct {
	Hostels   []HostelResponse `json:"hostels"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetHostelsResponse) FromModels(models []model.Hostel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hostels = make([]HostelResponse, len(models))
	for i, m := range models {
		r.Hostels[i].FromModel(m)
	}
}
