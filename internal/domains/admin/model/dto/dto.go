package dto

import (
	"github.com/google/uuid"

	"hostelhub/internal/domains/admin/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateAdminRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
}

func (c *CreateAdminRequest) ToModel(userID, createdBy string) model.Admin {
	return model.Admin{
		ID:       uuid.NewString(),
		UserID:   userID,
		FullName: c.FullName,
		Phone:    c.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateAdminRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
}

type AdminResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	ActiveHostelID *string `json:"active_hostel_id,omitempty"`
	Active         bool    `json:"active"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(model model.Admin) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.ActiveHostelID = model.ActiveHostelID
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAdminsResponse struct {
	Admins    []AdminResponse `json:"admins"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAdminsResponse) FromModels(models []model.Admin, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Admins = make([]AdminResponse, len(models))
	for i, m := range models {
		r.Admins[i].FromModel(m)
	}
}

type AssignHostelRequest struct {
	HostelID string `json:"hostel_id" validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=manager supervisor"`
}

func (a *AssignHostelRequest) ToModel(adminID, createdBy string) model.Assignment {
	return model.Assignment{
		ID:       uuid.NewString(),
		AdminID:  adminID,
		HostelID: a.HostelID,
		Role:     a.Role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type AssignmentResponse struct {
	ID       string `json:"id"`
	AdminID  string `json:"admin_id"`
	HostelID string `json:"hostel_id"`
	Role     string `json:"role"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(model model.Assignment) {
	r.ID = model.ID
	r.AdminID = model.AdminID
	r.HostelID = model.HostelID
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.Assignment) {
	r.TotalData = len(models)

	r.Assignments = make([]AssignmentResponse, len(models))
	for i, m := range models {
		r.Assignments[i].FromModel(m)
	}
}

type SwitchContextRequest struct {
	HostelID string `json:"hostel_id" validate:"required"`
}
