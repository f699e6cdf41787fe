package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/internal/domains/admin/model"
	"hostelhub/internal/domains/admin/model/dto"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

// CreateOverride submits a rule override request for review.
// @Summary Create an override request
// @Description Submit a rule override request for the caller's active hostel.
// @Tags Override
// @Accept json
// @Produce json
// @Param request body dto.CreateOverrideRequest true "Create Override Request"
// @Success 201 {object} response.Message "Override request created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/overrides [post]
// @Security BearerAuth
func (handler *Handler) CreateOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOverride")
	defer scope.End()

	var req dto.CreateOverrideRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.overrideService.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create override request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Override request created successfully")

	response.WithMessage(w, http.StatusCreated, "Override request created successfully")
}

// GetOverrides lists override requests.
// @Summary Get all override requests
// @Description Retrieve override requests with optional filtering and pagination.
// @Tags Override
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param hostel_id query string false "Filter by hostel"
// @Success 200 {object} response.Data[dto.GetOverridesResponse] "List of override requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/overrides [get]
// @Security BearerAuth
func (handler *Handler) GetOverrides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverrides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldOverrideStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOverrideStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.OverrideTableName,
		})
	}

	if hostelID := r.URL.Query().Get(model.FieldOverrideHostelID); hostelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOverrideHostelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hostelID,
			Table:    model.OverrideTableName,
		})
	}

	overrides, err := handler.overrideService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get override requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Override requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, overrides)
}

// GetOverrideByID retrieves an override request by its ID.
// @Summary Get an override request by ID
// @Description Retrieve an override request by its unique identifier.
// @Tags Override
// @Accept json
// @Produce json
// @Param id path string true "Override ID"
// @Success 200 {object} response.Data[dto.OverrideResponse] "Override request details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/overrides/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOverrideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverrideByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	override, err := handler.overrideService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get override request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Override request retrieved successfully")

	response.WithJSON(w, http.StatusOK, override)
}

// ApproveOverride approves a pending override request.
// @Summary Approve an override request
// @Description Approve a pending override request.
// @Tags Override
// @Accept json
// @Produce json
// @Param id path string true "Override ID"
// @Success 200 {object} response.Message "Override request approved successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/overrides/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveOverride")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.overrideService.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve override request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Override request approved successfully")

	response.WithMessage(w, http.StatusOK, "Override request approved successfully")
}

// RejectOverride rejects a pending override request.
// @Summary Reject an override request
// @Description Reject a pending override request.
// @Tags Override
// @Accept json
// @Produce json
// @Param id path string true "Override ID"
// @Success 200 {object} response.Message "Override request rejected successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/overrides/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectOverride")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.overrideService.Reject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject override request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Override request rejected successfully")

	response.WithMessage(w, http.StatusOK, "Override request rejected successfully")
}
