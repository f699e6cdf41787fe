package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	adminService "hostelhub/internal/domains/admin/service"
	"hostelhub/internal/domains/payment/model"
	"hostelhub/internal/domains/payment/model/dto"
	"hostelhub/internal/domains/payment/service"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service      service.Payment
	adminService adminService.Admin
	otel         otel.Otel
}

func New(service service.Payment, adminService adminService.Admin, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		adminService: adminService,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordPayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Post("/schedules", handler.GenerateSchedule)
		routerGroup.Get("/schedules", handler.GetSchedules)
		routerGroup.Post("/schedules/{id}/pay", handler.MarkSchedulePaid)
		routerGroup.Get("/dues", handler.GetDues)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
	})
}

// RecordPayment records a received payment.
// @Summary Record a payment
// @Description Record a payment against a booking or a student account.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} response.Message "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	var req dto.RecordPaymentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Record(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment recorded successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Payment recorded successfully")
}

// GetPayments retrieves payments with optional filters.
// @Summary Get all payments
// @Description Retrieve all payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hostel_id query string false "Filter by hostel"
// @Param booking_id query string false "Filter by booking"
// @Param student_id query string false "Filter by student"
// @Param method query string false "Filter by payment method"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldHostelID, model.FieldBookingID, model.FieldStudentID, model.FieldMethod} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by its ID.
// @Summary Get a payment by ID
// @Description Retrieve a payment by its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(w, http.StatusOK, payment)
}

// GenerateSchedule creates an installment schedule for a student.
// @Summary Generate a payment schedule
// @Description Generate monthly installments for a student starting from a given date.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.GenerateScheduleRequest true "Generate Schedule Request"
// @Success 201 {object} response.Message "Payment schedule generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/schedules [post]
// @Security BearerAuth
func (handler *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateSchedule")
	defer scope.End()

	var req dto.GenerateScheduleRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.GenerateSchedule(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate payment schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment schedule generated successfully")

	response.WithMessage(w, http.StatusCreated, "Payment schedule generated successfully")
}

// GetSchedules retrieves payment schedules with optional filters.
// @Summary Get payment schedules
// @Description Retrieve payment schedules with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param student_id query string false "Filter by student"
// @Param hostel_id query string false "Filter by hostel"
// @Param paid query boolean false "Filter by paid status"
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "List of payment schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/schedules [get]
// @Security BearerAuth
func (handler *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if studentID := r.URL.Query().Get(model.FieldScheduleStudentID); studentID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldScheduleStudentID,
			Operator: gDto.FilterOperatorEq,
			Value:    studentID,
			Table:    model.ScheduleTableName,
		})
	}

	if hostelID := r.URL.Query().Get(model.FieldScheduleHostelID); hostelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldScheduleHostelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hostelID,
			Table:    model.ScheduleTableName,
		})
	}

	if paid := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldSchedulePaid)); paid != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSchedulePaid,
			Operator: gDto.FilterOperatorEq,
			Value:    *paid,
			Table:    model.ScheduleTableName,
		})
	}

	schedules, err := handler.service.GetSchedules(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// MarkSchedulePaid settles an installment.
// @Summary Mark an installment as paid
// @Description Mark a payment schedule installment as settled.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.MarkPaidRequest true "Mark Paid Request"
// @Success 200 {object} response.Message "Installment marked as paid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/schedules/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) MarkSchedulePaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkSchedulePaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.MarkPaidRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkPaid(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark installment as paid")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Installment marked as paid by user " + user)

	response.WithMessage(w, http.StatusOK, "Installment marked as paid")
}

// GetDues lists overdue unpaid installments for a hostel.
// @Summary Get due installments
// @Description Retrieve unpaid installments that are past their due date for a hostel.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hostel_id query string false "Hostel ID, defaults to the caller's active hostel context"
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "List of due installments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/dues [get]
// @Security BearerAuth
func (handler *Handler) GetDues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDues")
	defer scope.End()

	hostelID := r.URL.Query().Get(model.FieldScheduleHostelID)
	if hostelID == "" {
		hostelID, _ = handler.adminService.ActiveHostel(ctx)
	}

	if hostelID == "" {
		err := failure.BadRequestFromString("hostel_id is required")
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing hostel_id query parameter")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	dues, err := handler.service.GetDues(ctx, queryParams, hostelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get due installments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Due installments retrieved successfully")

	response.WithJSON(w, http.StatusOK, dues)
}
