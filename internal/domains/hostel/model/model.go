package model

import (
	"github.com/lib/pq"

	"hostelhub/shared/model"
)

const (
	TableName  = "hostels"
	EntityName = "hostel"

	FieldID           = "id"
	FieldName         = "name"
	FieldCity         = "city"
	FieldAddress      = "address"
	FieldGenderPolicy = "gender_policy"
	FieldAmenities    = "amenities"
	FieldDescription  = "description"
	FieldActive       = "active"
)

const (
	GenderPolicyMale   = "male"
	GenderPolicyFemale = "female"
	GenderPolicyMixed  = "mixed"
)

type Hostel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	City         string         `db:"city"`
	Address      string         `db:"address"`
	GenderPolicy string         `db:"gender_policy"`
	Amenities    pq.StringArray `db:"amenities"`
	Description  string         `db:"description"`
	Active       bool           `db:"active"`
	model.Metadata
}
