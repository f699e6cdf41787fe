package mess

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/mess/model/dto"
	"hostelhub/internal/domains/mess/service"
	"hostelhub/shared/constant"
	"hostelhub/shared/failure"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mess", func(routerGroup chi.Router) {
		routerGroup.Put("/menus", handler.UpsertMenu)
		routerGroup.Get("/menus/{hostelID}/week", handler.GetWeekMenu)
		routerGroup.Get("/menus/{hostelID}/days/{day}", handler.GetDayMenu)
		routerGroup.Delete("/menus/{id}", handler.DeleteMenu)
	})
}

// UpsertMenu creates or replaces a menu slot.
// @Summary Upsert a mess menu slot
// @Description Create or replace the menu of one meal slot on one day for a hostel.
// @Tags Mess
// @Accept json
// @Produce json
// @Param request body dto.UpsertMenuRequest true "Upsert Menu Request"
// @Success 200 {object} response.Message "Menu saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus [put]
// @Security BearerAuth
func (handler *Handler) UpsertMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertMenu")
	defer scope.End()

	var req dto.UpsertMenuRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert menu")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu saved successfully")
}

// GetWeekMenu retrieves the full weekly menu for a hostel.
// @Summary Get a hostel's weekly menu
// @Description Retrieve all meal slots of the week for a hostel.
// @Tags Mess
// @Accept json
// @Produce json
// @Param hostelID path string true "Hostel ID"
// @Success 200 {object} response.Data[dto.GetMenusResponse] "Weekly menu"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus/{hostelID}/week [get]
func (handler *Handler) GetWeekMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekMenu")
	defer scope.End()

	hostelID := chi.URLParam(r, "hostelID")

	menus, err := handler.service.GetWeek(ctx, hostelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly menu retrieved successfully")

	response.WithJSON(w, http.StatusOK, menus)
}

// GetDayMenu retrieves the menu of one day for a hostel.
// @Summary Get a hostel's menu for a day
// @Description Retrieve all meal slots of a single day for a hostel. Day runs from 0 (Sunday) to 6 (Saturday).
// @Tags Mess
// @Accept json
// @Produce json
// @Param hostelID path string true "Hostel ID"
// @Param day path int true "Day of week (0-6)"
// @Success 200 {object} response.Data[dto.GetMenusResponse] "Daily menu"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus/{hostelID}/days/{day} [get]
func (handler *Handler) GetDayMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDayMenu")
	defer scope.End()

	hostelID := chi.URLParam(r, "hostelID")

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		err = failure.BadRequestFromString("day must be a number between 0 and 6")
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid day path parameter")

		response.WithError(w, err)

		return
	}

	menus, err := handler.service.GetDay(ctx, hostelID, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily menu retrieved successfully")

	response.WithJSON(w, http.StatusOK, menus)
}

// DeleteMenu removes a menu slot.
// @Summary Delete a mess menu slot
// @Description Delete one meal slot by its unique identifier.
// @Tags Mess
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} response.Message "Menu deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenu")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu deleted successfully")
}
