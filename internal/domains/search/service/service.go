package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelDto "hostelhub/internal/domains/hostel/model/dto"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	roomModel "hostelhub/internal/domains/room/model"
	roomRepo "hostelhub/internal/domains/room/repository"
	"hostelhub/internal/domains/search/model"
	"hostelhub/internal/domains/search/model/dto"
	"hostelhub/internal/domains/search/repository"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

type Search interface {
	Search(ctx context.Context, criteria dto.Criteria, params gDto.QueryParams) (hostelDto.GetHostelsResponse, error)
	GetQueries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSearchQueriesResponse, error)
}

type serviceImpl struct {
	queryRepo  repository.Query
	hostelRepo hostelRepo.Hostel
	roomRepo   roomRepo.Room
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	queryRepo repository.Query,
	hostelRepo hostelRepo.Hostel,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	otel otel.Otel,
) Search {
	return &serviceImpl{
		queryRepo:  queryRepo,
		hostelRepo: hostelRepo,
		roomRepo:   roomRepo,
		cfg:        cfg,
		otel:       otel,
	}
}

// Search filters active hostels by the criteria and logs the executed
// query with its result count.
func (s *serviceImpl) Search(ctx context.Context, criteria dto.Criteria, params gDto.QueryParams) (res hostelDto.GetHostelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := s.buildFilter(ctx, criteria)
	if err != nil {
		return res, err
	}

	total, err := s.hostelRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count search results")

		return res, fmt.Errorf("failed to count search results: %w", err)
	}

	hostels, err := s.hostelRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search hostels")

		return res, fmt.Errorf("failed to search hostels: %w", err)
	}

	res.FromModels(hostels, total, params.Limit)

	s.logQuery(ctx, criteria, total)

	return res, nil
}

func (s *serviceImpl) GetQueries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSearchQueriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetQueries")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.queryRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count search queries")

		return res, fmt.Errorf("failed to count search queries: %w", err)
	}

	models, err := s.queryRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get search queries")

		return res, fmt.Errorf("failed to get search queries: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) buildFilter(ctx context.Context, criteria dto.Criteria) (gDto.FilterGroup, error) {
	filters := []any{
		gDto.Filter{
			Field:    hostelModel.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    hostelModel.TableName,
		},
	}

	if criteria.City != "" {
		filters = append(filters, gDto.Filter{
			Field:    hostelModel.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    criteria.City,
			Table:    hostelModel.TableName,
		})
	}

	if criteria.GenderPolicy != "" {
		filters = append(filters, gDto.Filter{
			Field:    hostelModel.FieldGenderPolicy,
			Operator: gDto.FilterOperatorEq,
			Value:    criteria.GenderPolicy,
			Table:    hostelModel.TableName,
		})
	}

	for i, amenity := range criteria.Amenities {
		filters = append(filters, gDto.Filter{
			ArgName:  fmt.Sprintf("amenity_%d", i),
			Field:    "amenities::text",
			Operator: gDto.FilterOperatorLike,
			Value:    amenity,
			Table:    hostelModel.TableName,
		})
	}

	if criteria.Keyword != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "keyword_name",
					Field:    hostelModel.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    criteria.Keyword,
					Table:    hostelModel.TableName,
				},
				gDto.Filter{
					ArgName:  "keyword_city",
					Field:    hostelModel.FieldCity,
					Operator: gDto.FilterOperatorLike,
					Value:    criteria.Keyword,
					Table:    hostelModel.TableName,
				},
				gDto.Filter{
					ArgName:  "keyword_address",
					Field:    hostelModel.FieldAddress,
					Operator: gDto.FilterOperatorLike,
					Value:    criteria.Keyword,
					Table:    hostelModel.TableName,
				},
			},
		})
	}

	if criteria.RoomType != "" || criteria.MinPrice > 0 || criteria.MaxPrice > 0 {
		hostelIDs, err := s.hostelIDsByRoomCriteria(ctx, criteria)
		if err != nil {
			return gDto.FilterGroup{}, err
		}

		if len(hostelIDs) == 0 {
			hostelIDs = []string{constant.Empty}
		}

		filters = append(filters, gDto.Filter{
			ArgName:  "room_hostel_id",
			Field:    hostelModel.FieldID,
			Operator: gDto.FilterOperatorIn,
			Value:    hostelIDs,
			Table:    hostelModel.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}, nil
}

// hostelIDsByRoomCriteria resolves room-level filters (type, price
// range) to the hostels that satisfy them.
func (s *serviceImpl) hostelIDsByRoomCriteria(ctx context.Context, criteria dto.Criteria) ([]string, error) {
	filters := []any{}

	if criteria.RoomType != "" {
		filters = append(filters, gDto.Filter{
			Field:    roomModel.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    criteria.RoomType,
			Table:    roomModel.TableName,
		})
	}

	if criteria.MinPrice > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    roomModel.FieldMonthlyPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    criteria.MinPrice,
			Table:    roomModel.TableName,
		})
	}

	if criteria.MaxPrice > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    roomModel.FieldMonthlyPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    criteria.MaxPrice,
			Table:    roomModel.TableName,
		})
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}, roomModel.FieldHostelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room criteria: %w", err)
	}

	seen := map[string]bool{}
	ids := []string{}

	for _, room := range rooms {
		if !seen[room.HostelID] {
			seen[room.HostelID] = true
			ids = append(ids, room.HostelID)
		}
	}

	return ids, nil
}

func (s *serviceImpl) logQuery(ctx context.Context, criteria dto.Criteria, resultCount int) {
	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	go func() {
		c := context.WithoutCancel(ctx)

		var visitor *string
		if visitorID != constant.Empty {
			visitor = &visitorID
		}

		criteriaJSON, err := json.Marshal(criteria)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal search criteria")

			return
		}

		entry := model.Query{
			ID:          uuid.NewString(),
			VisitorID:   visitor,
			Keyword:     criteria.Keyword,
			City:        criteria.City,
			Criteria:    string(criteriaJSON),
			ResultCount: resultCount,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  visitorID,
				ModifiedBy: visitorID,
			},
		}

		if err := s.queryRepo.Insert(c, entry); err != nil {
			log.Error().Err(err).Msg("failed to log search query")
		}
	}()
}
