package model

import (
	"github.com/lib/pq"

	"hostelhub/shared/model"
)

const (
	TableName  = "mess_menus"
	EntityName = "mess_menu"

	FieldID        = "id"
	FieldHostelID  = "hostel_id"
	FieldDayOfWeek = "day_of_week"
	FieldMeal      = "meal"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// Menu is one meal slot of a hostel's weekly mess plan, keyed by
// (hostel, day of week, meal).
type Menu struct {
	ID        string         `db:"id"`
	HostelID  string         `db:"hostel_id"`
	DayOfWeek int            `db:"day_of_week"`
	Meal      string         `db:"meal"`
	Items     pq.StringArray `db:"items"`
	model.Metadata
}
