package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hostelhub/internal/domains/visitor/model"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type UpsertPreferenceRequest struct {
	Cities    []string `json:"cities"     validate:"omitempty,dive,max=100"`
	RoomTypes []string `json:"room_types" validate:"omitempty,dive,oneof=single double dorm"`
	MaxBudget float64  `json:"max_budget" validate:"omitempty,gt=0"`
	Amenities []string `json:"amenities"  validate:"omitempty,dive,max=50"`
}

func (u *UpsertPreferenceRequest) ToModel(visitorID string) model.Preference {
	return model.Preference{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		Cities:    pq.StringArray(u.Cities),
		RoomTypes: pq.StringArray(u.RoomTypes),
		MaxBudget: u.MaxBudget,
		Amenities: pq.StringArray(u.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  visitorID,
			ModifiedBy: visitorID,
		},
	}
}

type PreferenceResponse struct {
	VisitorID string   `json:"visitor_id"`
	Cities    []string `json:"cities"`
	RoomTypes []string `json:"room_types"`
	MaxBudget float64  `json:"max_budget"`
	Amenities []string `json:"amenities"`
	gDto.Metadata
}

func (r *PreferenceResponse) FromModel(model model.Preference) {
	r.VisitorID = model.VisitorID
	r.Cities = model.Cities
	r.RoomTypes = model.RoomTypes
	r.MaxBudget = model.MaxBudget
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type AddFavoriteRequest struct {
	HostelID string `json:"hostel_id" validate:"required"`
}

func (a *AddFavoriteRequest) ToModel(visitorID string) model.Favorite {
	return model.Favorite{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		HostelID:  a.HostelID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  visitorID,
			ModifiedBy: visitorID,
		},
	}
}

type FavoriteResponse struct {
	ID       string `json:"id"`
	HostelID string `json:"hostel_id"`
	gDto.Metadata
}

func (r *FavoriteResponse) FromModel(model model.Favorite) {
	r.ID = model.ID
	r.HostelID = model.HostelID
	r.Metadata.FromModel(model.Metadata)
}

type GetFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	TotalData int                `json:"total_data"`
}

func (r *GetFavoritesResponse) FromModels(models []model.Favorite) {
	r.TotalData = len(models)

	r.Favorites = make([]FavoriteResponse, len(models))
	for i, m := range models {
		r.Favorites[i].FromModel(m)
	}
}

type RecordActivityRequest struct {
	EventType string  `json:"event_type" validate:"required,oneof=view search favorite"`
	HostelID  *string `json:"hostel_id"  validate:"omitempty"`
	City      string  `json:"city"       validate:"omitempty,max=100"`
	RoomType  string  `json:"room_type"  validate:"omitempty,oneof=single double dorm"`
}

func (a *RecordActivityRequest) ToModel(visitorID string) model.Activity {
	return model.Activity{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		EventType: a.EventType,
		HostelID:  a.HostelID,
		City:      a.City,
		RoomType:  a.RoomType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  visitorID,
			ModifiedBy: visitorID,
		},
	}
}

type RecommendationResponse struct {
	HostelID string  `json:"hostel_id"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

func (r *RecommendationResponse) FromModel(model model.Recommendation) {
	r.HostelID = model.HostelID
	r.Score = model.Score
	r.Rank = model.Rank
}

type GetRecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetRecommendationsResponse) FromModels(models []model.Recommendation) {
	r.TotalData = len(models)

	r.Recommendations = make([]RecommendationResponse, len(models))
	for i, m := range models {
		r.Recommendations[i].FromModel(m)
	}
}

// ActivityEvent is the payload published to Kafka for each recorded
// visitor action.
type ActivityEvent struct {
	EventType string    `json:"event_type"`
	VisitorID string    `json:"visitor_id"`
	HostelID  *string   `json:"hostel_id,omitempty"`
	City      string    `json:"city,omitempty"`
	RoomType  string    `json:"room_type,omitempty"`
	EmittedAt time.Time `json:"emitted_at"`
}
