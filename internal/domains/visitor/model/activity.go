package model

import "hostelhub/shared/model"

const (
	ActivityTableName  = "visitor_activities"
	ActivityEntityName = "visitor_activity"

	FieldActivityID        = "id"
	FieldActivityVisitorID = "visitor_id"
	FieldActivityEventType = "event_type"
	FieldActivityHostelID  = "hostel_id"
	FieldActivityCity      = "city"
	FieldActivityRoomType  = "room_type"
)

const (
	EventTypeView     = "view"
	EventTypeSearch   = "search"
	EventTypeFavorite = "favorite"
)

type Activity struct {
	ID        string  `db:"id"`
	VisitorID string  `db:"visitor_id"`
	EventType string  `db:"event_type"`
	HostelID  *string `db:"hostel_id"`
	City      string  `db:"city"`
	RoomType  string  `db:"room_type"`
	model.Metadata
}

// CountedTerm is an aggregated activity dimension with its frequency,
// ordered most frequent first.
type CountedTerm struct {
	Term  string `db:"term"`
	Count int    `db:"count"`
}
