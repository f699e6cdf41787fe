package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	OverrideTableName  = "overrides"
	OverrideEntityName = "override"

	FieldOverrideID       = "id"
	FieldOverrideAdminID  = "admin_id"
	FieldOverrideHostelID = "hostel_id"
	FieldOverrideRuleKey  = "rule_key"
	FieldOverrideStatus   = "status"

	OverrideStatusPending  = "pending"
	OverrideStatusApproved = "approved"
	OverrideStatusRejected = "rejected"
)

// Override is an admin's request to bypass a business rule for one
// hostel, reviewed by a superadmin.
type Override struct {
	ID         string     `db:"id"`
	AdminID    string     `db:"admin_id"`
	HostelID   string     `db:"hostel_id"`
	RuleKey    string     `db:"rule_key"`
	Reason     string     `db:"reason"`
	Payload    string     `db:"payload"`
	Status     string     `db:"status"`
	ReviewedBy *string    `db:"reviewed_by"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	model.Metadata
}
