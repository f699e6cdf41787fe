package model

import (
	"time"

	"hostelhub/shared/model"
)

const (
	QueryTableName  = "search_queries"
	QueryEntityName = "search_query"

	FieldQueryID          = "id"
	FieldQueryVisitorID   = "visitor_id"
	FieldQueryKeyword     = "keyword"
	FieldQueryCity        = "city"
	FieldQueryResultCount = "result_count"
)

// Query is one executed hostel search, logged for the optimizer.
type Query struct {
	ID          string  `db:"id"`
	VisitorID   *string `db:"visitor_id"`
	Keyword     string  `db:"keyword"`
	City        string  `db:"city"`
	Criteria    string  `db:"criteria"`
	ResultCount int     `db:"result_count"`
	model.Metadata
}

const (
	SavedSearchTableName  = "saved_searches"
	SavedSearchEntityName = "saved_search"

	FieldSavedSearchID        = "id"
	FieldSavedSearchVisitorID = "visitor_id"
)

type SavedSearch struct {
	ID        string     `db:"id"`
	VisitorID string     `db:"visitor_id"`
	Name      string     `db:"name"`
	Criteria  string     `db:"criteria"`
	Notify    bool       `db:"notify"`
	LastRunAt *time.Time `db:"last_run_at"`
	model.Metadata
}
