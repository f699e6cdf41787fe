package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	"hostelhub/internal/domains/admin/model"
	"hostelhub/internal/domains/admin/model/dto"
	"hostelhub/internal/domains/admin/repository"
	authDto "hostelhub/internal/domains/auth/model/dto"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	userModel "hostelhub/internal/domains/user/model"
	userRepo "hostelhub/internal/domains/user/repository"
	"hostelhub/shared"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/password"
	"hostelhub/shared/timezone"
)

const (
	cacheGetAdmin    = "admin:get"
	cacheGetAllAdmin = "admin:gets"
	cacheCountAdmin  = "admin:count"
)

type Admin interface {
	Create(ctx context.Context, req dto.CreateAdminRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdminsResponse, error)
	Get(ctx context.Context, id string) (dto.AdminResponse, error)
	Update(ctx context.Context, req dto.UpdateAdminRequest, id string) error
	Deactivate(ctx context.Context, id string) error
	Assign(ctx context.Context, req dto.AssignHostelRequest, adminID string) error
	Unassign(ctx context.Context, adminID, hostelID string) error
	ListAssignments(ctx context.Context, adminID string) (dto.GetAssignmentsResponse, error)
	SwitchContext(ctx context.Context, req dto.SwitchContextRequest) (dto.AdminResponse, error)
	ActiveHostel(ctx context.Context) (string, error)
	AuthorizeHostelWrite(ctx context.Context, hostelID string) error
}

type serviceImpl struct {
	repo           repository.Admin
	assignmentRepo repository.Assignment
	userRepo       userRepo.User
	hostelRepo     hostelRepo.Hostel
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Admin,
	assignmentRepo repository.Assignment,
	userRepo userRepo.User,
	hostelRepo hostelRepo.Hostel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		hostelRepo:     hostelRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	createdBy, _ := ctx.Value(constant.ContextKeyUserID).(string)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	registration := authDto.RegisterRequest{
		Email:    req.Email,
		FullName: &req.FullName,
	}

	user := registration.ToUserModel(createdBy, hashedPassword)
	user.Role = constant.RoleAdmin
	user.IsVerified = true

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create admin user")

		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(user.ID, createdBy)); err != nil {
		log.Error().Err(err).Msg("failed to create admin profile")

		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAdmin)
		shared.InvalidateCaches(c, s.cache, cacheCountAdmin)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdminsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAdmin, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, fmt.Errorf("failed to count admins: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, fmt.Errorf("failed to get admins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admins to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAdmin, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found") // nolint:wrapcheck
	}

	res.FromModel(admin)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAdminRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAdminRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if !exist {
		return failure.NotFound("admin not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update admin")

		return fmt.Errorf("failed to update admin: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	admin, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate admin")

		return fmt.Errorf("failed to deactivate admin: %w", err)
	}

	userFilter := shared.FilterByID(admin.UserID, userModel.FieldID, userModel.TableName)
	if err := s.userRepo.Update(ctx, map[string]any{
		userModel.FieldActive:    false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, userFilter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate admin user account")

		return fmt.Errorf("failed to deactivate admin user account: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignHostelRequest, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	adminExists, err := s.repo.Exist(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if !adminExists {
		return failure.NotFound("admin not found") // nolint:wrapcheck
	}

	hostelExists, err := s.hostelRepo.Exist(ctx, shared.FilterByID(req.HostelID, hostelModel.FieldID, hostelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if hostel exists: %w", err)
	}

	if !hostelExists {
		return failure.BadRequestFromString("hostel does not exist") // nolint:wrapcheck
	}

	assignmentFilter := s.assignmentFilter(adminID, req.HostelID)

	assigned, err := s.assignmentRepo.Exist(ctx, assignmentFilter)
	if err != nil {
		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if assigned {
		return failure.Conflict("admin is already assigned to this hostel") // nolint:wrapcheck
	}

	if err = s.assignmentRepo.Insert(ctx, req.ToModel(adminID, user)); err != nil {
		log.Error().Err(err).Msg("failed to assign hostel")

		return fmt.Errorf("failed to assign hostel: %w", err)
	}

	return nil
}

func (s *serviceImpl) Unassign(ctx context.Context, adminID, hostelID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unassign")
	defer scope.End()
	defer scope.TraceIfError(err)

	assignmentFilter := s.assignmentFilter(adminID, hostelID)

	assigned, err := s.assignmentRepo.Exist(ctx, assignmentFilter)
	if err != nil {
		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if !assigned {
		return failure.NotFound("assignment not found") // nolint:wrapcheck
	}

	if err := s.assignmentRepo.Delete(ctx, assignmentFilter); err != nil {
		log.Error().Err(err).Msg("failed to unassign hostel")

		return fmt.Errorf("failed to unassign hostel: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListAssignments(ctx context.Context, adminID string) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAssignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(adminID, model.FieldAssignmentAdminID, model.AssignmentTableName)

	models, err := s.assignmentRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list assignments")

		return res, fmt.Errorf("failed to list assignments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// SwitchContext sets the calling admin's active hostel. The target hostel
// must be among the admin's assignments.
func (s *serviceImpl) SwitchContext(ctx context.Context, req dto.SwitchContextRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SwitchContext")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	adminFilter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	admin, err := s.repo.Get(ctx, adminFilter)
	if err != nil {
		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found") // nolint:wrapcheck
	}

	assigned, err := s.assignmentRepo.Exist(ctx, s.assignmentFilter(admin.ID, req.HostelID))
	if err != nil {
		return res, fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if !assigned {
		return res, failure.Forbidden("admin is not assigned to this hostel") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActiveHostelID: req.HostelID,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  userID,
	}

	if err := s.repo.Update(ctx, updatedFields, adminFilter); err != nil {
		log.Error().Err(err).Msg("failed to switch hostel context")

		return res, fmt.Errorf("failed to switch hostel context: %w", err)
	}

	admin.ActiveHostelID = &req.HostelID
	res.FromModel(admin)

	s.invalidate(ctx, admin.ID)

	return res, nil
}

// AuthorizeHostelWrite verifies the caller may mutate rows scoped to the
// given hostel. Superadmins and identities without an admin profile pass;
// admins must hold an assignment to the hostel.
func (s *serviceImpl) AuthorizeHostelWrite(ctx context.Context, hostelID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AuthorizeHostelWrite")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleSuperAdmin {
		return nil
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	admin, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return nil
	}

	assigned, err := s.assignmentRepo.Exist(ctx, s.assignmentFilter(admin.ID, hostelID))
	if err != nil {
		return fmt.Errorf("failed to check if assignment exists: %w", err)
	}

	if !assigned {
		return failure.Forbidden("admin is not assigned to this hostel") // nolint:wrapcheck
	}

	return nil
}

// ActiveHostel returns the calling admin's active hostel context, or
// empty when the caller is not an admin or has not switched context.
func (s *serviceImpl) ActiveHostel(ctx context.Context) (hostelID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveHostel")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	admin, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ActiveHostelID == nil {
		return constant.Empty, nil
	}

	return *admin.ActiveHostelID, nil
}

func (s *serviceImpl) assignmentFilter(adminID, hostelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAssignmentAdminID,
				Operator: gDto.FilterOperatorEq,
				Value:    adminID,
				Table:    model.AssignmentTableName,
			},
			gDto.Filter{
				ArgName:  "assignment_hostel_id",
				Field:    model.FieldAssignmentHostelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hostelID,
				Table:    model.AssignmentTableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAdmin, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete admin from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAdmin)
		shared.InvalidateCaches(c, s.cache, cacheCountAdmin)
	}()
}
