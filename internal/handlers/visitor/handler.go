package visitor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/visitor/model/dto"
	"hostelhub/internal/domains/visitor/service"
	"hostelhub/shared/constant"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service               service.Visitor
	recommendationService service.Recommendation
	otel                  otel.Otel
}

func New(service service.Visitor, recommendationService service.Recommendation, otel otel.Otel) Handler {
	return Handler{
		service:               service,
		recommendationService: recommendationService,
		otel:                  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitors", func(routerGroup chi.Router) {
		routerGroup.Get("/preferences", handler.GetPreference)
		routerGroup.Put("/preferences", handler.UpsertPreference)
		routerGroup.Post("/favorites", handler.AddFavorite)
		routerGroup.Get("/favorites", handler.GetFavorites)
		routerGroup.Delete("/favorites/{hostelID}", handler.RemoveFavorite)
		routerGroup.Post("/activities", handler.RecordActivity)
		routerGroup.Get("/recommendations", handler.GetRecommendations)
		routerGroup.Post("/recommendations/generate", handler.GenerateRecommendations)
	})
}

// GetPreference returns the caller's stored preference profile.
// @Summary Get visitor preferences
// @Description Retrieve the preference profile of the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PreferenceResponse] "Visitor preferences"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/preferences [get]
// @Security BearerAuth
func (handler *Handler) GetPreference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreference")
	defer scope.End()

	preference, err := handler.service.GetPreference(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get preference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preference retrieved successfully")

	response.WithJSON(w, http.StatusOK, preference)
}

// UpsertPreference saves the caller's preference profile.
// @Summary Upsert visitor preferences
// @Description Create or replace the preference profile of the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param request body dto.UpsertPreferenceRequest true "Upsert Preference Request"
// @Success 200 {object} response.Message "Preferences saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/preferences [put]
// @Security BearerAuth
func (handler *Handler) UpsertPreference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertPreference")
	defer scope.End()

	var req dto.UpsertPreferenceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertPreference(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert preference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preferences saved successfully")

	response.WithMessage(w, http.StatusOK, "Preferences saved successfully")
}

// AddFavorite bookmarks a hostel for the caller.
// @Summary Add a favorite hostel
// @Description Bookmark a hostel for the authenticated visitor. Adding the same hostel twice is a no-op.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Add Favorite Request"
// @Success 201 {object} response.Message "Favorite added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/favorites [post]
// @Security BearerAuth
func (handler *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	var req dto.AddFavoriteRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddFavorite(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorite added successfully")

	response.WithMessage(w, http.StatusCreated, "Favorite added successfully")
}

// GetFavorites lists the caller's bookmarked hostels.
// @Summary Get favorite hostels
// @Description Retrieve all hostels bookmarked by the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetFavoritesResponse] "List of favorites"
// @Failure 500 {object} response.Error
// @Router /v1/visitors/favorites [get]
// @Security BearerAuth
func (handler *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFavorites")
	defer scope.End()

	favorites, err := handler.service.GetFavorites(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get favorites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorites retrieved successfully")

	response.WithJSON(w, http.StatusOK, favorites)
}

// RemoveFavorite removes a hostel from the caller's bookmarks.
// @Summary Remove a favorite hostel
// @Description Remove a hostel from the authenticated visitor's bookmarks.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param hostelID path string true "Hostel ID"
// @Success 200 {object} response.Message "Favorite removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/favorites/{hostelID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFavorite")
	defer scope.End()

	hostelID := chi.URLParam(r, "hostelID")

	if err := handler.service.RemoveFavorite(ctx, hostelID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove favorite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Favorite removed successfully")

	response.WithMessage(w, http.StatusOK, "Favorite removed successfully")
}

// RecordActivity records a browsing event for the caller.
// @Summary Record a visitor activity
// @Description Record a view, search or favorite event for the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param request body dto.RecordActivityRequest true "Record Activity Request"
// @Success 201 {object} response.Message "Activity recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/activities [post]
// @Security BearerAuth
func (handler *Handler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordActivity")
	defer scope.End()

	var req dto.RecordActivityRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordActivity(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record activity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activity recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Activity recorded successfully")
}

// GetRecommendations returns the caller's stored recommendations.
// @Summary Get recommendations
// @Description Retrieve the stored hostel recommendations of the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRecommendationsResponse] "List of recommendations"
// @Failure 500 {object} response.Error
// @Router /v1/visitors/recommendations [get]
// @Security BearerAuth
func (handler *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendations")
	defer scope.End()

	recommendations, err := handler.recommendationService.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommendations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommendations retrieved successfully")

	response.WithJSON(w, http.StatusOK, recommendations)
}

// GenerateRecommendations recomputes the caller's recommendations.
// @Summary Generate recommendations
// @Description Recompute and store hostel recommendations for the authenticated visitor.
// @Tags Visitor
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRecommendationsResponse] "Freshly generated recommendations"
// @Failure 500 {object} response.Error
// @Router /v1/visitors/recommendations/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateRecommendations")
	defer scope.End()

	recommendations, err := handler.recommendationService.Generate(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate recommendations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommendations generated successfully")

	response.WithJSON(w, http.StatusOK, recommendations)
}
