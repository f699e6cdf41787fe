package service

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	adminService "hostelhub/internal/domains/admin/service"
	"hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	messModel "hostelhub/internal/domains/mess/model"
	"hostelhub/internal/domains/mess/model/dto"
	"hostelhub/internal/domains/mess/repository"
	"hostelhub/shared"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/timezone"
)

const (
	cacheGetMenus = "mess:gets"
)

type Menu interface {
	Upsert(ctx context.Context, req dto.UpsertMenuRequest) error
	GetDay(ctx context.Context, hostelID string, day int) (dto.GetMenusResponse, error)
	GetWeek(ctx context.Context, hostelID string) (dto.GetMenusResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Menu
	hostelRepo   hostelRepo.Hostel
	adminService adminService.Admin
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Menu,
	hostelRepo hostelRepo.Hostel,
	adminService adminService.Admin,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Menu {
	return &serviceImpl{
		repo:         repo,
		hostelRepo:   hostelRepo,
		adminService: adminService,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Upsert replaces the items of an existing (hostel, day, meal) slot or
// creates the slot when missing.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertMenuRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hostelExists, err := s.hostelRepo.Exist(ctx, shared.FilterByID(req.HostelID, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if hostel exists: %w", err)
	}

	if !hostelExists {
		return failure.BadRequestFromString("hostel does not exist") // nolint:wrapcheck
	}

	if err = s.adminService.AuthorizeHostelWrite(ctx, req.HostelID); err != nil {
		return err
	}

	slotFilter := s.slotFilter(req.HostelID, req.DayOfWeek, req.Meal)

	existing, err := s.repo.Get(ctx, slotFilter)
	if err != nil {
		return fmt.Errorf("failed to get menu slot: %w", err)
	}

	if existing.ID == constant.Empty {
		if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
			log.Error().Err(err).Msg("failed to create menu")

			return fmt.Errorf("failed to create menu: %w", err)
		}
	} else {
		updatedFields := map[string]any{
			"items":                  pq.StringArray(req.Items),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, slotFilter); err != nil {
			log.Error().Err(err).Msg("failed to update menu")

			return fmt.Errorf("failed to update menu: %w", err)
		}
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetDay(ctx context.Context, hostelID string, day int) (res dto.GetMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	if day < 0 || day > 6 {
		return res, failure.BadRequestFromString("day of week must be between 0 and 6") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetMenus, hostelID, fmt.Sprintf("day:%d", day))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    messModel.FieldHostelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hostelID,
				Table:    messModel.TableName,
			},
			gDto.Filter{
				Field:    messModel.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    messModel.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: messModel.FieldMeal, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get day menu")

		return res, fmt.Errorf("failed to get day menu: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetWeek(ctx context.Context, hostelID string) (res dto.GetMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMenus, hostelID, "week")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	filter := shared.FilterByID(hostelID, messModel.FieldHostelID, messModel.TableName)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: messModel.FieldDayOfWeek, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get week menu")

		return res, fmt.Errorf("failed to get week menu: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save week menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, messModel.FieldID, messModel.TableName)

	menu, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return failure.NotFound("menu not found") // nolint:wrapcheck
	}

	if err = s.adminService.AuthorizeHostelWrite(ctx, menu.HostelID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu")

		return fmt.Errorf("failed to delete menu: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) slotFilter(hostelID string, day int, meal string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    messModel.FieldHostelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hostelID,
				Table:    messModel.TableName,
			},
			gDto.Filter{
				Field:    messModel.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    messModel.TableName,
			},
			gDto.Filter{
				Field:    messModel.FieldMeal,
				Operator: gDto.FilterOperatorEq,
				Value:    meal,
				Table:    messModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetMenus)
	}()
}
