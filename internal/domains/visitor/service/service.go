package service

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/kafka"
	"hostelhub/infras/otel"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	"hostelhub/internal/domains/visitor/model"
	"hostelhub/internal/domains/visitor/model/dto"
	"hostelhub/internal/domains/visitor/repository"
	"hostelhub/shared"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/timezone"
)

const (
	cacheGetPreference = "visitor:preference:get"
	cacheGetFavorites  = "visitor:favorites:gets"
)

type Visitor interface {
	GetPreference(ctx context.Context) (dto.PreferenceResponse, error)
	UpsertPreference(ctx context.Context, req dto.UpsertPreferenceRequest) error
	AddFavorite(ctx context.Context, req dto.AddFavoriteRequest) error
	RemoveFavorite(ctx context.Context, hostelID string) error
	GetFavorites(ctx context.Context) (dto.GetFavoritesResponse, error)
	RecordActivity(ctx context.Context, req dto.RecordActivityRequest) error
}

type serviceImpl struct {
	preferenceRepo repository.Preference
	favoriteRepo   repository.Favorite
	activityRepo   repository.Activity
	hostelRepo     hostelRepo.Hostel
	cfg            *config.Config
	cache          cache.RedisCache
	kafka          kafka.Client
	otel           otel.Otel
}

func New(
	preferenceRepo repository.Preference,
	favoriteRepo repository.Favorite,
	activityRepo repository.Activity,
	hostelRepo hostelRepo.Hostel,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Visitor {
	return &serviceImpl{
		preferenceRepo: preferenceRepo,
		favoriteRepo:   favoriteRepo,
		activityRepo:   activityRepo,
		hostelRepo:     hostelRepo,
		cfg:            cfg,
		cache:          cache,
		kafka:          kafka,
		otel:           otel,
	}
}

func (s *serviceImpl) GetPreference(ctx context.Context) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPreference")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cacheKey := shared.BuildCacheKey(cacheGetPreference, visitorID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	preference, err := s.preferenceRepo.Get(ctx, shared.FilterByID(visitorID, model.FieldPreferenceVisitorID, model.PreferenceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get preference")

		return res, fmt.Errorf("failed to get preference: %w", err)
	}

	if preference.ID == constant.Empty {
		return res, failure.NotFound("preference not found") // nolint:wrapcheck
	}

	res.FromModel(preference)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save preference to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpsertPreference(ctx context.Context, req dto.UpsertPreferenceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertPreference")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(visitorID, model.FieldPreferenceVisitorID, model.PreferenceTableName)

	existing, err := s.preferenceRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get preference: %w", err)
	}

	if existing.ID == constant.Empty {
		if err = s.preferenceRepo.Insert(ctx, req.ToModel(visitorID)); err != nil {
			log.Error().Err(err).Msg("failed to create preference")

			return fmt.Errorf("failed to create preference: %w", err)
		}
	} else {
		updatedFields := map[string]any{
			"cities":                 pq.StringArray(req.Cities),
			"room_types":             pq.StringArray(req.RoomTypes),
			"max_budget":             req.MaxBudget,
			"amenities":              pq.StringArray(req.Amenities),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: visitorID,
		}

		if err = s.preferenceRepo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update preference")

			return fmt.Errorf("failed to update preference: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPreference, visitorID)); err != nil {
			log.Error().Err(err).Msg("failed to delete preference from cache")
		}
	}()

	return nil
}

// AddFavorite is idempotent. Adding an already favorited hostel is a
// no-op.
func (s *serviceImpl) AddFavorite(ctx context.Context, req dto.AddFavoriteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddFavorite")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hostelExists, err := s.hostelRepo.Exist(ctx, shared.FilterByID(req.HostelID, hostelModel.FieldID, hostelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if hostel exists: %w", err)
	}

	if !hostelExists {
		return failure.BadRequestFromString("hostel does not exist") // nolint:wrapcheck
	}

	favoriteFilter := s.favoriteFilter(visitorID, req.HostelID)

	exists, err := s.favoriteRepo.Exist(ctx, favoriteFilter)
	if err != nil {
		return fmt.Errorf("failed to check if favorite exists: %w", err)
	}

	if exists {
		return nil
	}

	if err = s.favoriteRepo.Insert(ctx, req.ToModel(visitorID)); err != nil {
		log.Error().Err(err).Msg("failed to add favorite")

		return fmt.Errorf("failed to add favorite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetFavorites, visitorID))
	}()

	return nil
}

func (s *serviceImpl) RemoveFavorite(ctx context.Context, hostelID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveFavorite")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	favoriteFilter := s.favoriteFilter(visitorID, hostelID)

	exists, err := s.favoriteRepo.Exist(ctx, favoriteFilter)
	if err != nil {
		return fmt.Errorf("failed to check if favorite exists: %w", err)
	}

	if !exists {
		return failure.NotFound("favorite not found") // nolint:wrapcheck
	}

	if err := s.favoriteRepo.Delete(ctx, favoriteFilter); err != nil {
		log.Error().Err(err).Msg("failed to remove favorite")

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetFavorites, visitorID))
	}()

	return nil
}

func (s *serviceImpl) GetFavorites(ctx context.Context) (res dto.GetFavoritesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFavorites")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cacheKey := shared.BuildCacheKey(cacheGetFavorites, visitorID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.favoriteRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(visitorID, model.FieldFavoriteVisitorID, model.FavoriteTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get favorites")

		return res, fmt.Errorf("failed to get favorites: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save favorites to cache")
		}
	}()

	return res, nil
}

// RecordActivity stores the event for behavioral aggregation and fans
// it out to Kafka.
func (s *serviceImpl) RecordActivity(ctx context.Context, req dto.RecordActivityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	activity := req.ToModel(visitorID)

	if err = s.activityRepo.Insert(ctx, activity); err != nil {
		log.Error().Err(err).Msg("failed to record activity")

		return fmt.Errorf("failed to record activity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.ActivityEvent{
			EventType: activity.EventType,
			VisitorID: activity.VisitorID,
			HostelID:  activity.HostelID,
			City:      activity.City,
			RoomType:  activity.RoomType,
			EmittedAt: timezone.Now(),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.VisitorEvents, kafka.Message{
			Key:   activity.VisitorID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish activity event")
		}
	}()

	return nil
}

func (s *serviceImpl) favoriteFilter(visitorID, hostelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFavoriteVisitorID,
				Operator: gDto.FilterOperatorEq,
				Value:    visitorID,
				Table:    model.FavoriteTableName,
			},
			gDto.Filter{
				ArgName:  "favorite_hostel_id",
				Field:    model.FieldFavoriteHostelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hostelID,
				Table:    model.FavoriteTableName,
			},
		},
	}
}
