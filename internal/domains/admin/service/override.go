package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	"hostelhub/internal/domains/admin/model"
	"hostelhub/internal/domains/admin/model/dto"
	"hostelhub/internal/domains/admin/repository"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	"hostelhub/shared"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/timezone"
)

const (
	cacheGetOverride    = "override:get"
	cacheGetAllOverride = "override:gets"
)

type Override interface {
	Create(ctx context.Context, req dto.CreateOverrideRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOverridesResponse, error)
	Get(ctx context.Context, id string) (dto.OverrideResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type overrideServiceImpl struct {
	repo       repository.Override
	adminRepo  repository.Admin
	hostelRepo hostelRepo.Hostel
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewOverride(
	repo repository.Override,
	adminRepo repository.Admin,
	hostelRepo hostelRepo.Hostel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Override {
	return &overrideServiceImpl{
		repo:       repo,
		adminRepo:  adminRepo,
		hostelRepo: hostelRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *overrideServiceImpl) Create(ctx context.Context, req dto.CreateOverrideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	admin, err := s.adminRepo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found") // nolint:wrapcheck
	}

	hostelExists, err := s.hostelRepo.Exist(ctx, shared.FilterByID(req.HostelID, hostelModel.FieldID, hostelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if hostel exists: %w", err)
	}

	if !hostelExists {
		return failure.BadRequestFromString("hostel does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(admin.ID, userID)); err != nil {
		log.Error().Err(err).Msg("failed to create override request")

		return fmt.Errorf("failed to create override request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOverride)
	}()

	return nil
}

func (s *overrideServiceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOverridesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOverride, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overrides")

		return res, fmt.Errorf("failed to count overrides: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overrides")

		return res, fmt.Errorf("failed to get overrides: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save overrides to cache")
		}
	}()

	return res, nil
}

func (s *overrideServiceImpl) Get(ctx context.Context, id string) (res dto.OverrideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOverride, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	override, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldOverrideID, model.OverrideTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get override")

		return res, fmt.Errorf("failed to get override: %w", err)
	}

	if override.ID == constant.Empty {
		return res, failure.NotFound("override not found") // nolint:wrapcheck
	}

	res.FromModel(override)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save override to cache")
		}
	}()

	return res, nil
}

func (s *overrideServiceImpl) Approve(ctx context.Context, id string) error {
	return s.review(ctx, id, model.OverrideStatusApproved)
}

func (s *overrideServiceImpl) Reject(ctx context.Context, id string) error {
	return s.review(ctx, id, model.OverrideStatusRejected)
}

// review settles a pending override. Only pending overrides can be
// approved or rejected.
func (s *overrideServiceImpl) review(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldOverrideID, model.OverrideTableName)

	override, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get override: %w", err)
	}

	if override.ID == constant.Empty {
		return failure.NotFound("override not found") // nolint:wrapcheck
	}

	if override.Status != model.OverrideStatusPending {
		return failure.Conflict("override has already been reviewed") // nolint:wrapcheck
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		model.FieldOverrideStatus: status,
		"reviewed_by":             userID,
		"reviewed_at":             now,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  userID,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to review override")

		return fmt.Errorf("failed to review override: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOverride, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete override from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOverride)
	}()

	return nil
}
