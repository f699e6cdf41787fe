package model

import (
	"github.com/lib/pq"

	"hostelhub/shared/model"
)

const (
	PreferenceTableName  = "visitor_preferences"
	PreferenceEntityName = "visitor_preference"

	FieldPreferenceID        = "id"
	FieldPreferenceVisitorID = "visitor_id"
)

// Preference captures what a visitor says they want, as opposed to
// what their activity shows.
type Preference struct {
	ID        string         `db:"id"`
	VisitorID string         `db:"visitor_id"`
	Cities    pq.StringArray `db:"cities"`
	RoomTypes pq.StringArray `db:"room_types"`
	MaxBudget float64        `db:"max_budget"`
	Amenities pq.StringArray `db:"amenities"`
	model.Metadata
}
