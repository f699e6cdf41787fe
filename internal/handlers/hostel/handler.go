package hostel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/hostel/model"
	"hostelhub/internal/domains/hostel/model/dto"
	"hostelhub/internal/domains/hostel/service"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service service.Hostel
	otel    otel.Otel
}

func New(service service.Hostel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hostels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHostel)
		routerGroup.Get("/", handler.GetHostels)
		routerGroup.Get("/{id}", handler.GetHostelByID)
		routerGroup.Patch("/{id}", handler.UpdateHostel)
		routerGroup.Delete("/{id}", handler.DeactivateHostel)
	})
}

// CreateHostel registers a new hostel.
// @Summary Create a new hostel
// @Description Create a new hostel with the provided details.
// @Tags Hostel
// @Accept json
// @Produce json
// @Param request body dto.CreateHostelRequest true "Create Hostel Request"
// @Success 201 {object} response.Message "Hostel created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hostels [post]
// @Security BearerAuth
func (handler *Handler) CreateHostel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHostel")
	defer scope.End()

	var req dto.CreateHostelRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hostel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hostel created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Hostel created successfully")
}

// GetHostels retrieves hostels with optional filters.
// @Summary Get all hostels
// @Description Retrieve all hostels with optional filtering and pagination.
// @Tags Hostel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city query string false "Filter by city"
// @Param gender_policy query string false "Filter by gender policy"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetHostelsResponse] "List of hostels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hostels [get]
func (handler *Handler) GetHostels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHostels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if city := r.URL.Query().Get(model.FieldCity); city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if genderPolicy := r.URL.Query().Get(model.FieldGenderPolicy); genderPolicy != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGenderPolicy,
			Operator: gDto.FilterOperatorEq,
			Value:    genderPolicy,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	hostels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hostels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hostels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hostels)
}

// GetHostelByID retrieves a hostel by its ID.
// @Summary Get a hostel by ID
// @Description Retrieve a hostel by its unique identifier.
// @Tags Hostel
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID"
// @Success 200 {object} response.Data[dto.HostelResponse] "Hostel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hostels/{id} [get]
func (handler *Handler) GetHostelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHostelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hostel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hostel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hostel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hostel)
}

// UpdateHostel updates an existing hostel.
// @Summary Update a hostel by ID
// @Description Update the details of an existing hostel.
// @Tags Hostel
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID"
// @Param request body dto.UpdateHostelRequest true "Update Hostel Request"
// @Success 200 {object} response.Message "Hostel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hostels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHostel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHostel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateHostelRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hostel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hostel updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hostel updated successfully")
}

// DeactivateHostel soft-deletes a hostel.
// @Summary Deactivate a hostel by ID
// @Description Soft-delete a hostel by clearing its active flag.
// @Tags Hostel
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID"
// @Success 200 {object} response.Message "Hostel deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hostels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateHostel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateHostel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate hostel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hostel deactivated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hostel deactivated successfully")
}
