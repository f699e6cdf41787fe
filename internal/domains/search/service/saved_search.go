package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	hostelDto "hostelhub/internal/domains/hostel/model/dto"
	"hostelhub/internal/domains/search/model"
	"hostelhub/internal/domains/search/model/dto"
	"hostelhub/internal/domains/search/repository"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/timezone"
	"hostelhub/shared/validator"
)

type SavedSearch interface {
	Create(ctx context.Context, req dto.CreateSavedSearchRequest) error
	GetAll(ctx context.Context) (dto.GetSavedSearchesResponse, error)
	Get(ctx context.Context, id string) (dto.SavedSearchResponse, error)
	Update(ctx context.Context, req dto.UpdateSavedSearchRequest, id string) error
	Delete(ctx context.Context, id string) error
	Execute(ctx context.Context, id string, params gDto.QueryParams) (hostelDto.GetHostelsResponse, error)
}

type savedSearchServiceImpl struct {
	repo          repository.SavedSearch
	searchService Search
	cfg           *config.Config
	otel          otel.Otel
}

func NewSavedSearch(
	repo repository.SavedSearch,
	searchService Search,
	cfg *config.Config,
	otel otel.Otel,
) SavedSearch {
	return &savedSearchServiceImpl{
		repo:          repo,
		searchService: searchService,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *savedSearchServiceImpl) Create(ctx context.Context, req dto.CreateSavedSearchRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	criteriaJSON, err := json.Marshal(req.Criteria)
	if err != nil {
		return failure.BadRequestFromString("criteria cannot be serialized") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(visitorID, string(criteriaJSON))); err != nil {
		log.Error().Err(err).Msg("failed to create saved search")

		return fmt.Errorf("failed to create saved search: %w", err)
	}

	return nil
}

func (s *savedSearchServiceImpl) GetAll(ctx context.Context) (res dto.GetSavedSearchesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(visitorID, model.FieldSavedSearchVisitorID, model.SavedSearchTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get saved searches")

		return res, fmt.Errorf("failed to get saved searches: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *savedSearchServiceImpl) Get(ctx context.Context, id string) (res dto.SavedSearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	saved, err := s.owned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(saved)

	return res, nil
}

func (s *savedSearchServiceImpl) Update(ctx context.Context, req dto.UpdateSavedSearchRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.owned(ctx, id); err != nil {
		return err
	}

	updatedFields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: visitorID,
	}

	if req.Name != constant.Empty {
		updatedFields["name"] = req.Name
	}

	if req.Notify != nil {
		updatedFields["notify"] = *req.Notify
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldSavedSearchID, model.SavedSearchTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update saved search")

		return fmt.Errorf("failed to update saved search: %w", err)
	}

	return nil
}

func (s *savedSearchServiceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.owned(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldSavedSearchID, model.SavedSearchTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete saved search")

		return fmt.Errorf("failed to delete saved search: %w", err)
	}

	return nil
}

// Execute re-runs the stored criteria and bumps last_run_at.
func (s *savedSearchServiceImpl) Execute(ctx context.Context, id string, params gDto.QueryParams) (res hostelDto.GetHostelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Execute")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	saved, err := s.owned(ctx, id)
	if err != nil {
		return res, err
	}

	var criteria dto.Criteria

	if err = json.Unmarshal([]byte(saved.Criteria), &criteria); err != nil {
		return res, fmt.Errorf("failed to decode saved criteria: %w", err)
	}

	if err = validator.ValidateStruct(&criteria); err != nil {
		return res, err // nolint:wrapcheck
	}

	res, err = s.searchService.Search(ctx, criteria, params)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.repo.Update(c, map[string]any{
			"last_run_at":            timezone.Now(),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: visitorID,
		}, shared.FilterByID(id, model.FieldSavedSearchID, model.SavedSearchTableName)); err != nil {
			log.Error().Err(err).Msg("failed to bump saved search run time")
		}
	}()

	return res, nil
}

// owned fetches a saved search and verifies the caller owns it.
func (s *savedSearchServiceImpl) owned(ctx context.Context, id string) (model.SavedSearch, error) {
	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	saved, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldSavedSearchID, model.SavedSearchTableName))
	if err != nil {
		return saved, fmt.Errorf("failed to get saved search: %w", err)
	}

	if saved.ID == constant.Empty {
		return saved, failure.NotFound("saved search not found") // nolint:wrapcheck
	}

	if saved.VisitorID != visitorID {
		return saved, failure.Forbidden("saved search belongs to another visitor") // nolint:wrapcheck
	}

	return saved, nil
}
