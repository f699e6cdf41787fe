package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"hostelhub/internal/domains/mess/model"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type UpsertMenuRequest struct {
	HostelID  string   `json:"hostel_id"   validate:"required"`
	DayOfWeek int      `json:"day_of_week" validate:"min=0,max=6"`
	Meal      string   `json:"meal"        validate:"required,oneof=breakfast lunch dinner"`
	Items     []string `json:"items"       validate:"required,min=1,dive,max=100"`
}

func (u *UpsertMenuRequest) ToModel(user string) model.Menu {
	return model.Menu{
		ID:        uuid.NewString(),
		HostelID:  u.HostelID,
		DayOfWeek: u.DayOfWeek,
		Meal:      u.Meal,
		Items:     pq.StringArray(u.Items),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MenuResponse struct {
	ID        string   `json:"id"`
	HostelID  string   `json:"hostel_id"`
	DayOfWeek int      `json:"day_of_week"`
	Meal      string   `json:"meal"`
	Items     []string `json:"items"`
	gDto.Metadata
}

func (r *MenuResponse) FromModel(model model.Menu) {
	r.ID = model.ID
	r.HostelID = model.HostelID
	r.DayOfWeek = model.DayOfWeek
	r.Meal = model.Meal
	r.Items = model.Items
	r.Metadata.FromModel(model.Metadata)
}

type GetMenusResponse struct {
	Menus     []MenuResponse `json:"menus"`
	TotalData int            `json:"total_data"`
}

func (r *GetMenusResponse) FromModels(models []model.Menu) {
	r.TotalData = len(models)

	r.Menus = make([]MenuResponse, len(models))
	for i, m := range models {
		r.Menus[i].FromModel(m)
	}
}
