package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/search/model"
	"hostelhub/internal/domains/search/model/dto"
	"hostelhub/internal/domains/search/service"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service            service.Search
	savedSearchService service.SavedSearch
	optimizerService   service.Optimizer
	otel               otel.Otel
}

func New(service service.Search, savedSearchService service.SavedSearch, optimizerService service.Optimizer, otel otel.Otel) Handler {
	return Handler{
		service:            service,
		savedSearchService: savedSearchService,
		optimizerService:   optimizerService,
		otel:               otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/search", func(routerGroup chi.Router) {
		routerGroup.Get("/hostels", handler.SearchHostels)
		routerGroup.Get("/queries", handler.GetQueries)
		routerGroup.Get("/optimization", handler.GetOptimizationReport)
		routerGroup.Route("/saved", func(savedGroup chi.Router) {
			savedGroup.Post("/", handler.CreateSavedSearch)
			savedGroup.Get("/", handler.GetSavedSearches)
			savedGroup.Get("/{id}", handler.GetSavedSearchByID)
			savedGroup.Patch("/{id}", handler.UpdateSavedSearch)
			savedGroup.Delete("/{id}", handler.DeleteSavedSearch)
			savedGroup.Post("/{id}/execute", handler.ExecuteSavedSearch)
		})
	})
}

// SearchHostels searches hostels by keyword and structured criteria.
// @Summary Search hostels
// @Description Search active hostels by keyword, city, gender policy, amenities, room type and price range.
// @Tags Search
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Free-text keyword"
// @Param city query string false "City"
// @Param gender_policy query string false "Gender policy"
// @Param room_type query string false "Room type"
// @Param min_price query number false "Minimum monthly price"
// @Param max_price query number false "Maximum monthly price"
// @Param amenities query []string false "Required amenities"
// @Success 200 {object} response.Data[hostelDto.GetHostelsResponse] "Matching hostels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/hostels [get]
func (handler *Handler) SearchHostels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHostels")
	defer scope.End()

	criteria := dto.Criteria{}
	criteria.FromRequest(r)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hostels, err := handler.service.Search(ctx, criteria, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hostels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hostels searched successfully")

	response.WithJSON(w, http.StatusOK, hostels)
}

// GetQueries lists logged search queries.
// @Summary Get logged search queries
// @Description Retrieve the search query log with optional filtering and pagination.
// @Tags Search
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param visitor_id query string false "Filter by visitor"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetSearchQueriesResponse] "List of search queries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/queries [get]
// @Security BearerAuth
func (handler *Handler) GetQueries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQueries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if visitorID := r.URL.Query().Get(model.FieldQueryVisitorID); visitorID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldQueryVisitorID,
			Operator: gDto.FilterOperatorEq,
			Value:    visitorID,
			Table:    model.QueryTableName,
		})
	}

	if city := r.URL.Query().Get(model.FieldQueryCity); city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldQueryCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.QueryTableName,
		})
	}

	queries, err := handler.service.GetQueries(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get search queries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Search queries retrieved successfully")

	response.WithJSON(w, http.StatusOK, queries)
}

// GetOptimizationReport builds the search optimization report.
// @Summary Get the search optimization report
// @Description Analyze recent search queries and browsing activity, reporting zero-result keywords, synonym suggestions and city boost suggestions.
// @Tags Search
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.OptimizationReport] "Optimization report"
// @Failure 500 {object} response.Error
// @Router /v1/search/optimization [get]
// @Security BearerAuth
func (handler *Handler) GetOptimizationReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptimizationReport")
	defer scope.End()

	report, err := handler.optimizerService.Analyze(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build optimization report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Optimization report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// CreateSavedSearch stores a named search for the caller.
// @Summary Create a saved search
// @Description Store a named search with its criteria for the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.CreateSavedSearchRequest true "Create Saved Search Request"
// @Success 201 {object} response.Message "Saved search created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/saved [post]
// @Security BearerAuth
func (handler *Handler) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSavedSearch")
	defer scope.End()

	var req dto.CreateSavedSearchRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.savedSearchService.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create saved search")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved search created successfully")

	response.WithMessage(w, http.StatusCreated, "Saved search created successfully")
}

// GetSavedSearches lists the caller's saved searches.
// @Summary Get saved searches
// @Description Retrieve all saved searches of the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetSavedSearchesResponse] "List of saved searches"
// @Failure 500 {object} response.Error
// @Router /v1/search/saved [get]
// @Security BearerAuth
func (handler *Handler) GetSavedSearches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSavedSearches")
	defer scope.End()

	savedSearches, err := handler.savedSearchService.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get saved searches")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved searches retrieved successfully")

	response.WithJSON(w, http.StatusOK, savedSearches)
}

// GetSavedSearchByID retrieves one of the caller's saved searches.
// @Summary Get a saved search by ID
// @Description Retrieve a saved search owned by the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Saved Search ID"
// @Success 200 {object} response.Data[dto.SavedSearchResponse] "Saved search details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/saved/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSavedSearchByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSavedSearchByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	savedSearch, err := handler.savedSearchService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get saved search by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved search retrieved successfully")

	response.WithJSON(w, http.StatusOK, savedSearch)
}

// UpdateSavedSearch renames a saved search or toggles notifications.
// @Summary Update a saved search by ID
// @Description Update a saved search owned by the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Saved Search ID"
// @Param request body dto.UpdateSavedSearchRequest true "Update Saved Search Request"
// @Success 200 {object} response.Message "Saved search updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/saved/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSavedSearch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateSavedSearchRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.savedSearchService.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update saved search")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved search updated successfully")

	response.WithMessage(w, http.StatusOK, "Saved search updated successfully")
}

// DeleteSavedSearch removes a saved search.
// @Summary Delete a saved search by ID
// @Description Delete a saved search owned by the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Saved Search ID"
// @Success 200 {object} response.Message "Saved search deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/saved/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSavedSearch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.savedSearchService.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete saved search")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved search deleted successfully")

	response.WithMessage(w, http.StatusOK, "Saved search deleted successfully")
}

// ExecuteSavedSearch runs a saved search and returns the matching hostels.
// @Summary Execute a saved search
// @Description Run the stored criteria of a saved search owned by the authenticated visitor.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Saved Search ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[hostelDto.GetHostelsResponse] "Matching hostels"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/saved/{id}/execute [post]
// @Security BearerAuth
func (handler *Handler) ExecuteSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExecuteSavedSearch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hostels, err := handler.savedSearchService.Execute(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to execute saved search")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Saved search executed successfully")

	response.WithJSON(w, http.StatusOK, hostels)
}
