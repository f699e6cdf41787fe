package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelhub/internal/domains/student/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateStudentRequest struct {
	UserID      string `json:"user_id"     validate:"required"`
	HostelID    string `json:"hostel_id"   validate:"required"`
	FullName    string `json:"full_name"   validate:"required,max=100"`
	Phone       string `json:"phone"       validate:"omitempty,max=20"`
	Guardian    string `json:"guardian"    validate:"omitempty,max=100"`
	Institution string `json:"institution" validate:"omitempty,max=100"`
}

func (c *CreateStudentRequest) ToModel(user string) model.Student {
	return model.Student{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		HostelID:    c.HostelID,
		FullName:    c.FullName,
		Phone:       c.Phone,
		Guardian:    c.Guardian,
		Institution: c.Institution,
		Status:      model.StatusApplied,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStudentRequest struct {
	FullName    string `db:"full_name"   json:"full_name"   validate:"omitempty,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Guardian    string `db:"guardian"    json:"guardian"    validate:"omitempty,max=100"`
	Institution string `db:"institution" json:"institution" validate:"omitempty,max=100"`
}

type ActivateStudentRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type StudentResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	HostelID     string     `json:"hostel_id"`
	RoomID       *string    `json:"room_id,omitempty"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone,omitempty"`
	Guardian     string     `json:"guardian,omitempty"`
	Institution  string     `json:"institution,omitempty"`
	Status       string     `json:"status"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	gDto.Metadata
}

func (r *StudentResponse) FromModel(model model.Student) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.HostelID = model.HostelID
	r.RoomID = model.RoomID
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Guardian = model.Guardian
	r.Institution = model.Institution
	r.Status = model.Status
	r.CheckedInAt = model.CheckedInAt
	r.CheckedOutAt = model.CheckedOutAt
	r.Metadata.FromModel(model.Metadata)
}

type GetStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStudentsResponse) FromModels(models []model.Student, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Students = make([]StudentResponse, len(models))
	for i, m := range models {
		r.Students[i].FromModel(m)
	}
}

type UploadDocumentRequest struct {
	Kind     string `json:"kind"      validate:"required,oneof=id_card admission_letter guardian_id other"`
	FileName string `json:"file_name" validate:"required,max=100"`
	File     string `json:"file"      validate:"required,mimetypes=application/pdf image/png image/jpg image/jpeg,maxfilesize=5"`
}

type DocumentResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Kind      string `json:"kind"`
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
	Verified  bool   `json:"verified"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(model model.Document) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.Kind = model.Kind
	r.FileName = model.FileName
	r.URL = model.URL
	r.Verified = model.Verified
	r.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document) {
	r.TotalData = len(models)

	r.Documents = make([]DocumentResponse, len(models))
	for i, m := range models {
		r.Documents[i].FromModel(m)
	}
}
