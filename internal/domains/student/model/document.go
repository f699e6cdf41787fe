package model

import "hostelhub/shared/model"

const (
	DocumentTableName  = "student_documents"
	DocumentEntityName = "student_document"

	FieldDocumentID        = "id"
	FieldDocumentStudentID = "student_id"
	FieldDocumentKind      = "kind"
	FieldDocumentVerified  = "verified"
)

const (
	DocumentKindIDCard     = "id_card"
	DocumentKindAdmission  = "admission_letter"
	DocumentKindGuardianID = "guardian_id"
	DocumentKindOther      = "other"
)

type Document struct {
	ID        string `db:"id"`
	StudentID string `db:"student_id"`
	Kind      string `db:"kind"`
	FileName  string `db:"file_name"`
	URL       string `db:"url"`
	Verified  bool   `db:"verified"`
	model.Metadata
}
