package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"hostelhub/internal/domains/search/model"
	"hostelhub/shared"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

// Criteria is the set of hostel search filters. It is also the JSON
// payload stored on saved searches.
type Criteria struct {
	Keyword      string   `json:"keyword"       validate:"omitempty,max=100"`
	City         string   `json:"city"          validate:"omitempty,max=100"`
	GenderPolicy string   `json:"gender_policy" validate:"omitempty,oneof=male female mixed"`
	RoomType     string   `json:"room_type"     validate:"omitempty,oneof=single double dorm"`
	MinPrice     float64  `json:"min_price"     validate:"omitempty,gte=0"`
	MaxPrice     float64  `json:"max_price"     validate:"omitempty,gte=0"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,max=50"`
}

func (c *Criteria) FromRequest(r *http.Request) {
	query := r.URL.Query()

	c.Keyword = query.Get("keyword")
	c.City = query.Get("city")
	c.GenderPolicy = query.Get("gender_policy")
	c.RoomType = query.Get("room_type")

	if minPrice, err := strconv.ParseFloat(query.Get("min_price"), 64); err == nil {
		c.MinPrice = minPrice
	}

	if maxPrice, err := strconv.ParseFloat(query.Get("max_price"), 64); err == nil {
		c.MaxPrice = maxPrice
	}

	if amenities, ok := query["amenities"]; ok {
		c.Amenities = amenities
	}
}

type CreateSavedSearchRequest struct {
	Name     string   `json:"name"     validate:"required,max=100"`
	Notify   bool     `json:"notify"`
	Criteria Criteria `json:"criteria" validate:"required"`
}

func (c *CreateSavedSearchRequest) ToModel(visitorID, criteria string) model.SavedSearch {
	return model.SavedSearch{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		Name:      c.Name,
		Criteria:  criteria,
		Notify:    c.Notify,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  visitorID,
			ModifiedBy: visitorID,
		},
	}
}

type UpdateSavedSearchRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Notify *bool  `json:"notify"`
}

type SavedSearchResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Criteria  Criteria   `json:"criteria"`
	Notify    bool       `json:"notify"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	gDto.Metadata
}

func (r *SavedSearchResponse) FromModel(model model.SavedSearch) {
	r.ID = model.ID
	r.Name = model.Name
	r.Notify = model.Notify
	r.LastRunAt = model.LastRunAt
	r.Metadata.FromModel(model.Metadata)

	_ = json.Unmarshal([]byte(model.Criteria), &r.Criteria)
}

type GetSavedSearchesResponse struct {
	SavedSearches []SavedSearchResponse `json:"saved_searches"`
	TotalData     int                   `json:"total_data"`
}

func (r *GetSavedSearchesResponse) FromModels(models []model.SavedSearch) {
	r.TotalData = len(models)

	r.SavedSearches = make([]SavedSearchResponse, len(models))
	for i, m := range models {
		r.SavedSearches[i].FromModel(m)
	}
}

type ZeroResultTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type SynonymSuggestion struct {
	QueryTerm    string `json:"query_term"`
	HostelTerm   string `json:"hostel_term"`
	SharedPrefix string `json:"shared_prefix"`
}

type BoostSuggestion struct {
	City       string  `json:"city"`
	QueryShare float64 `json:"query_share"`
	ViewShare  float64 `json:"view_share"`
}

// OptimizationReport is the on-demand output of the search optimizer.
type OptimizationReport struct {
	ZeroResultTerms    []ZeroResultTerm    `json:"zero_result_terms"`
	SynonymSuggestions []SynonymSuggestion `json:"synonym_suggestions"`
	BoostSuggestions   []BoostSuggestion   `json:"boost_suggestions"`
	WindowDays         int                 `json:"window_days"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

type SearchQueryResponse struct {
	ID          string  `json:"id"`
	VisitorID   *string `json:"visitor_id,omitempty"`
	Keyword     string  `json:"keyword,omitempty"`
	City        string  `json:"city,omitempty"`
	ResultCount int     `json:"result_count"`
	gDto.Metadata
}

func (r *SearchQueryResponse) FromModel(model model.Query) {
	r.ID = model.ID
	r.VisitorID = model.VisitorID
	r.Keyword = model.Keyword
	r.City = model.City
	r.ResultCount = model.ResultCount
	r.Metadata.FromModel(model.Metadata)
}

type GetSearchQueriesResponse struct {
	Queries   []SearchQueryResponse `json:"queries"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetSearchQueriesResponse) FromModels(models []model.Query, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Queries = make([]SearchQueryResponse, len(models))
	for i, m := range models {
		r.Queries[i].FromModel(m)
	}
}
