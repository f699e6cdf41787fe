package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/kafka"
	"hostelhub/infras/otel"
	adminService "hostelhub/internal/domains/admin/service"
	"hostelhub/internal/domains/payment/model"
	"hostelhub/internal/domains/payment/model/dto"
	"hostelhub/internal/domains/payment/repository"
	"hostelhub/shared"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/timezone"
)

const (
	cacheGetPayment     = "payment:get"
	cacheGetAllPayment  = "payment:gets"
	cacheGetAllSchedule = "payment:schedule:gets"

	eventPaymentRecorded = "payment.recorded"
)

type Payment interface {
	Record(ctx context.Context, req dto.RecordPaymentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GenerateSchedule(ctx context.Context, req dto.GenerateScheduleRequest) error
	GetSchedules(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSchedulesResponse, error)
	MarkPaid(ctx context.Context, req dto.MarkPaidRequest, scheduleID string) error
	GetDues(ctx context.Context, req gDto.QueryParams, hostelID string) (dto.GetSchedulesResponse, error)
}

type serviceImpl struct {
	repo         repository.Payment
	scheduleRepo repository.Schedule
	adminService adminService.Admin
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	scheduleRepo repository.Schedule,
	adminService adminService.Admin,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		adminService: adminService,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafka,
		otel:         otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BookingID == nil && req.StudentID == nil {
		return failure.BadRequestFromString("payment must reference a booking or a student") // nolint:wrapcheck
	}

	if err = s.adminService.AuthorizeHostelWrite(ctx, req.HostelID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	payment := req.ToModel(user)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return fmt.Errorf("failed to record payment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.PaymentEvent{
			EventType: eventPaymentRecorded,
			PaymentID: payment.ID,
			HostelID:  payment.HostelID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			EmittedAt: timezone.Now(),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.PaymentEvents, kafka.Message{
			Key:   payment.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish payment event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

// GenerateSchedule creates one unpaid installment per month for a
// student. Rejects regeneration while unpaid installments remain.
func (s *serviceImpl) GenerateSchedule(ctx context.Context, req dto.GenerateScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.adminService.AuthorizeHostelWrite(ctx, req.HostelID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	unpaidFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldScheduleStudentID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.StudentID,
				Table:    model.ScheduleTableName,
			},
			gDto.Filter{
				Field:    model.FieldSchedulePaid,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.ScheduleTableName,
			},
		},
	}

	hasUnpaid, err := s.scheduleRepo.Exist(ctx, unpaidFilter)
	if err != nil {
		return fmt.Errorf("failed to check for unpaid installments: %w", err)
	}

	if hasUnpaid {
		return failure.Conflict("student still has unpaid installments") // nolint:wrapcheck
	}

	if err = s.scheduleRepo.InsertBulk(ctx, req.ToModels(user)); err != nil {
		log.Error().Err(err).Msg("failed to generate payment schedule")

		return fmt.Errorf("failed to generate payment schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
	}()

	return nil
}

func (s *serviceImpl) GetSchedules(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSchedules")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.scheduleRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count schedules")

		return res, fmt.Errorf("failed to count schedules: %w", err)
	}

	models, err := s.scheduleRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MarkPaid(ctx context.Context, req dto.MarkPaidRequest, scheduleID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(scheduleID, model.FieldScheduleID, model.ScheduleTableName)

	schedule, err := s.scheduleRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return failure.NotFound("installment not found") // nolint:wrapcheck
	}

	if schedule.Paid {
		return failure.Conflict("installment is already paid") // nolint:wrapcheck
	}

	if err = s.adminService.AuthorizeHostelWrite(ctx, schedule.HostelID); err != nil {
		return err
	}

	if req.Amount > 0 && req.Amount > schedule.Amount {
		return failure.BadRequestFromString("amount exceeds the installment amount") // nolint:wrapcheck
	}

	now := timezone.Now()

	if err := s.scheduleRepo.Update(ctx, map[string]any{
		model.FieldSchedulePaid:   true,
		model.FieldSchedulePaidAt: now,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark installment paid")

		return fmt.Errorf("failed to mark installment paid: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
	}()

	return nil
}

// GetDues lists unpaid installments whose due date has passed for one
// hostel.
func (s *serviceImpl) GetDues(ctx context.Context, req gDto.QueryParams, hostelID string) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDues")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldScheduleHostelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hostelID,
				Table:    model.ScheduleTableName,
			},
			gDto.Filter{
				Field:    model.FieldSchedulePaid,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.ScheduleTableName,
			},
			gDto.Filter{
				Field:    model.FieldScheduleDueDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.Now(),
				Table:    model.ScheduleTableName,
			},
		},
	}

	return s.GetSchedules(ctx, req, filter)
}
