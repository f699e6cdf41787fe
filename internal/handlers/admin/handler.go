package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/admin/model"
	"hostelhub/internal/domains/admin/model/dto"
	"hostelhub/internal/domains/admin/service"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service         service.Admin
	overrideService service.Override
	otel            otel.Otel
}

func New(service service.Admin, overrideService service.Override, otel otel.Otel) Handler {
	return Handler{
		service:         service,
		overrideService: overrideService,
		otel:            otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAdmin)
		routerGroup.Get("/", handler.GetAdmins)
		routerGroup.Put("/context", handler.SwitchContext)
		routerGroup.Get("/{id}", handler.GetAdminByID)
		routerGroup.Patch("/{id}", handler.UpdateAdmin)
		routerGroup.Delete("/{id}", handler.DeactivateAdmin)
		routerGroup.Post("/{id}/assignments", handler.AssignHostel)
		routerGroup.Get("/{id}/assignments", handler.GetAssignments)
		routerGroup.Delete("/{id}/assignments/{hostelID}", handler.UnassignHostel)
	})

	router.Route("/overrides", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOverride)
		routerGroup.Get("/", handler.GetOverrides)
		routerGroup.Get("/{id}", handler.GetOverrideByID)
		routerGroup.Post("/{id}/approve", handler.ApproveOverride)
		routerGroup.Post("/{id}/reject", handler.RejectOverride)
	})
}

// CreateAdmin registers a new admin account.
// @Summary Create a new admin
// @Description Create a new admin account together with its login credentials.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} response.Message "Admin created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins [post]
// @Security BearerAuth
func (handler *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdmin")
	defer scope.End()

	var req dto.CreateAdminRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin created successfully")

	response.WithMessage(w, http.StatusCreated, "Admin created successfully")
}

// GetAdmins retrieves admins with optional filters.
// @Summary Get all admins
// @Description Retrieve all admin accounts with optional filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param full_name query string false "Filter by full name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetAdminsResponse] "List of admins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins [get]
// @Security BearerAuth
func (handler *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdmins")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if fullName := r.URL.Query().Get(model.FieldFullName); fullName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    fullName,
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

	admins, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admins retrieved successfully")

	response.WithJSON(w, http.StatusOK, admins)
}

// GetAdminByID retrieves an admin by its ID.
// @Summary Get an admin by ID
// @Description Retrieve an admin account by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Data[dto.AdminResponse] "Admin details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAdminByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	admin, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin retrieved successfully")

	response.WithJSON(w, http.StatusOK, admin)
}

// UpdateAdmin updates an admin's profile fields.
// @Summary Update an admin by ID
// @Description Update the profile details of an admin account.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Update Admin Request"
// @Success 200 {object} response.Message "Admin updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAdminRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin updated successfully")

	response.WithMessage(w, http.StatusOK, "Admin updated successfully")
}

// DeactivateAdmin disables an admin account.
// @Summary Deactivate an admin by ID
// @Description Deactivate an admin account and its login credentials.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Message "Admin deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin deactivated successfully")

	response.WithMessage(w, http.StatusOK, "Admin deactivated successfully")
}

// AssignHostel assigns a hostel to an admin.
// @Summary Assign a hostel to an admin
// @Description Grant an admin a managing or supervising role on a hostel.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body dto.AssignHostelRequest true "Assign Hostel Request"
// @Success 201 {object} response.Message "Hostel assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id}/assignments [post]
// @Security BearerAuth
func (handler *Handler) AssignHostel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignHostel")
	defer scope.End()

	adminID := chi.URLParam(r, constant.RequestParamID)

	var req dto.AssignHostelRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Assign(ctx, req, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign hostel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hostel assigned successfully")

	response.WithMessage(w, http.StatusCreated, "Hostel assigned successfully")
}

// GetAssignments lists the hostels assigned to an admin.
// @Summary List an admin's hostel assignments
// @Description Retrieve all hostel assignments of an admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Data[dto.GetAssignmentsResponse] "List of assignments"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id}/assignments [get]
// @Security BearerAuth
func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	adminID := chi.URLParam(r, constant.RequestParamID)

	assignments, err := handler.service.ListAssignments(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignments retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignments)
}

// UnassignHostel removes a hostel assignment from an admin.
// @Summary Unassign a hostel from an admin
// @Description Revoke an admin's role on a hostel.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param hostelID path string true "Hostel ID"
// @Success 200 {object} response.Message "Hostel unassigned successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id}/assignments/{hostelID} [delete]
// @Security BearerAuth
func (handler *Handler) UnassignHostel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnassignHostel")
	defer scope.End()

	adminID := chi.URLParam(r, constant.RequestParamID)
	hostelID := chi.URLParam(r, "hostelID")

	if err := handler.service.Unassign(ctx, adminID, hostelID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unassign hostel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hostel unassigned successfully")

	response.WithMessage(w, http.StatusOK, "Hostel unassigned successfully")
}

// SwitchContext switches the caller's active hostel context.
// @Summary Switch active hostel context
// @Description Set the hostel the authenticated admin is currently operating on.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SwitchContextRequest true "Switch Context Request"
// @Success 200 {object} response.Data[dto.AdminResponse] "Context switched successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/context [put]
// @Security BearerAuth
func (handler *Handler) SwitchContext(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SwitchContext")
	defer scope.End()

	var req dto.SwitchContextRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	admin, err := handler.service.SwitchContext(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to switch context")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Context switched successfully")

	response.WithJSON(w, http.StatusOK, admin)
}
