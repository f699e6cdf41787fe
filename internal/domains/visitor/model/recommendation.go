package model

import "hostelhub/shared/model"

const (
	RecommendationTableName  = "recommendations"
	RecommendationEntityName = "recommendation"

	FieldRecommendationID        = "id"
	FieldRecommendationVisitorID = "visitor_id"
	FieldRecommendationRank      = "rank"
)

type Recommendation struct {
	ID        string  `db:"id"`
	VisitorID string  `db:"visitor_id"`
	HostelID  string  `db:"hostel_id"`
	Score     float64 `db:"score"`
	Rank      int     `db:"rank"`
	model.Metadata
}
