package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelhub/internal/domains/admin/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type CreateOverrideRequest struct {
	HostelID string `json:"hostel_id" validate:"required"`
	RuleKey  string `json:"rule_key"  validate:"required,max=100"`
	Reason   string `json:"reason"    validate:"required,max=500"`
	Payload  string `json:"payload"   validate:"omitempty,json"`
}

func (c *CreateOverrideRequest) ToModel(adminID, createdBy string) model.Override {
	return model.Override{
		ID:       uuid.NewString(),
		AdminID:  adminID,
		HostelID: c.HostelID,
		RuleKey:  c.RuleKey,
		Reason:   c.Reason,
		Payload:  c.Payload,
		Status:   model.OverrideStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type OverrideResponse struct {
	ID         string     `json:"id"`
	AdminID    string     `json:"admin_id"`
	HostelID   string     `json:"hostel_id"`
	RuleKey    string     `json:"rule_key"`
	Reason     string     `json:"reason"`
	Payload    string     `json:"payload,omitempty"`
	Status     string     `json:"status"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	gDto.Metadata
}

func (r *OverrideResponse) FromModel(model model.Override) {
	r.ID = model.ID
	r.AdminID = model.AdminID
	r.HostelID = model.HostelID
	r.RuleKey = model.RuleKey
	r.Reason = model.Reason
	r.Payload = model.Payload
	r.Status = model.Status
	r.ReviewedBy = model.ReviewedBy
	r.ReviewedAt = model.ReviewedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetOverridesResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetOverridesResponse) FromModels(models []model.Override, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Overrides = make([]OverrideResponse, len(models))
	for i, m := range models {
		r.Overrides[i].FromModel(m)
	}
}
