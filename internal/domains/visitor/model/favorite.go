package model

import "hostelhub/shared/model"

const (
	FavoriteTableName  = "favorites"
	FavoriteEntityName = "favorite"

	FieldFavoriteID        = "id"
	FieldFavoriteVisitorID = "visitor_id"
	FieldFavoriteHostelID  = "hostel_id"
)

type Favorite struct {
	ID        string `db:"id"`
	VisitorID string `db:"visitor_id"`
	HostelID  string `db:"hostel_id"`
	model.Metadata
}
