package model

import "hostelhub/shared/model"

const (
	AssignmentTableName  = "hostel_assignments"
	AssignmentEntityName = "hostel_assignment"

	FieldAssignmentID       = "id"
	FieldAssignmentAdminID  = "admin_id"
	FieldAssignmentHostelID = "hostel_id"
	FieldAssignmentRole     = "role"
)

const (
	AssignmentRoleManager    = "manager"
	AssignmentRoleSupervisor = "supervisor"
)

type Assignment struct {
	ID       string `db:"id"`
	AdminID  string `db:"admin_id"`
	HostelID string `db:"hostel_id"`
	Role     string `db:"role"`
	model.Metadata
}
