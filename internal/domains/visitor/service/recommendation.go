package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	roomModel "hostelhub/internal/domains/room/model"
	roomRepo "hostelhub/internal/domains/room/repository"
	"hostelhub/internal/domains/visitor/model"
	"hostelhub/internal/domains/visitor/model/dto"
	"hostelhub/internal/domains/visitor/repository"
	"hostelhub/shared"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

// Scoring weights for merged recommendation candidates. They sum to 1.
const (
	weightBehavioral = 0.4
	weightPreference = 0.3
	weightPopularity = 0.2
	weightNovelty    = 0.1
)

type Recommendation interface {
	Generate(ctx context.Context) (dto.GetRecommendationsResponse, error)
	Get(ctx context.Context) (dto.GetRecommendationsResponse, error)
}

type recommendationServiceImpl struct {
	recommendationRepo repository.Recommendation
	preferenceRepo     repository.Preference
	favoriteRepo       repository.Favorite
	activityRepo       repository.Activity
	hostelRepo         hostelRepo.Hostel
	roomRepo           roomRepo.Room
	cfg                *config.Config
	otel               otel.Otel
}

func NewRecommendation(
	recommendationRepo repository.Recommendation,
	preferenceRepo repository.Preference,
	favoriteRepo repository.Favorite,
	activityRepo repository.Activity,
	hostelRepo hostelRepo.Hostel,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	otel otel.Otel,
) Recommendation {
	return &recommendationServiceImpl{
		recommendationRepo: recommendationRepo,
		preferenceRepo:     preferenceRepo,
		favoriteRepo:       favoriteRepo,
		activityRepo:       activityRepo,
		hostelRepo:         hostelRepo,
		roomRepo:           roomRepo,
		cfg:                cfg,
		otel:               otel,
	}
}

// Generate rebuilds the visitor's recommendation set. Candidates come
// from three sources (behavioral match, stated preferences, trending
// bookings), are merged by hostel, scored, and the top N replace the
// visitor's previous set. Favorited hostels never appear.
func (s *recommendationServiceImpl) Generate(ctx context.Context) (res dto.GetRecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rec := s.cfg.App.Recommendation

	topCities, err := s.activityRepo.TopCities(ctx, visitorID, rec.ActivityWindowDays, rec.CandidatesPerSource)
	if err != nil {
		return res, fmt.Errorf("failed to aggregate top cities: %w", err)
	}

	topRoomTypes, err := s.activityRepo.TopRoomTypes(ctx, visitorID, rec.ActivityWindowDays, rec.CandidatesPerSource)
	if err != nil {
		return res, fmt.Errorf("failed to aggregate top room types: %w", err)
	}

	preference, err := s.preferenceRepo.Get(ctx, shared.FilterByID(visitorID, model.FieldPreferenceVisitorID, model.PreferenceTableName))
	if err != nil {
		return res, fmt.Errorf("failed to get preference: %w", err)
	}

	trending, err := s.recommendationRepo.Trending(ctx, rec.TrendingWindowDays, rec.CandidatesPerSource)
	if err != nil {
		return res, fmt.Errorf("failed to rank trending hostels: %w", err)
	}

	candidates, err := s.gatherCandidates(ctx, topCities, preference, trending)
	if err != nil {
		return res, err
	}

	favoriteIDs, err := s.favoriteHostelIDs(ctx, visitorID)
	if err != nil {
		return res, err
	}

	roomTypesByHostel, err := s.roomTypesByHostel(ctx, candidates)
	if err != nil {
		return res, err
	}

	cityScores := normalizeCounts(topCities)
	roomTypeScores := normalizeCounts(topRoomTypes)
	seenCities := termSet(topCities)
	seenRoomTypes := termSet(topRoomTypes)

	trendingScores := map[string]float64{}
	maxTrending := 0

	for _, t := range trending {
		if t.Bookings > maxTrending {
			maxTrending = t.Bookings
		}
	}

	for _, t := range trending {
		if maxTrending > 0 {
			trendingScores[t.HostelID] = float64(t.Bookings) / float64(maxTrending)
		}
	}

	scored := make([]model.Recommendation, 0, len(candidates))

	for _, hostel := range candidates {
		if favoriteIDs[hostel.ID] {
			continue
		}

		behavioral := behavioralScore(cityScores[hostel.City], roomTypesByHostel[hostel.ID], roomTypeScores)
		prefScore := preferenceScore(preference, hostel)
		popularity := trendingScores[hostel.ID]
		novelty := noveltyScore(hostel.City, roomTypesByHostel[hostel.ID], seenCities, seenRoomTypes)

		score := weightBehavioral*behavioral +
			weightPreference*prefScore +
			weightPopularity*popularity +
			weightNovelty*novelty

		scored = append(scored, model.Recommendation{
			ID:        uuid.NewString(),
			VisitorID: visitorID,
			HostelID:  hostel.ID,
			Score:     score,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  visitorID,
				ModifiedBy: visitorID,
			},
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > rec.TopN {
		scored = scored[:rec.TopN]
	}

	for i := range scored {
		scored[i].Rank = i + 1
	}

	visitorFilter := shared.FilterByID(visitorID, model.FieldRecommendationVisitorID, model.RecommendationTableName)

	if err = s.recommendationRepo.Delete(ctx, visitorFilter); err != nil {
		log.Error().Err(err).Msg("failed to clear previous recommendations")

		return res, fmt.Errorf("failed to clear previous recommendations: %w", err)
	}

	if len(scored) > 0 {
		if err = s.recommendationRepo.InsertBulk(ctx, scored); err != nil {
			log.Error().Err(err).Msg("failed to save recommendations")

			return res, fmt.Errorf("failed to save recommendations: %w", err)
		}
	}

	res.FromModels(scored)

	return res, nil
}

func (s *recommendationServiceImpl) Get(ctx context.Context) (res dto.GetRecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	visitorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	models, err := s.recommendationRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldRecommendationRank, SortDir: gDto.SortDirAsc},
		shared.FilterByID(visitorID, model.FieldRecommendationVisitorID, model.RecommendationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recommendations")

		return res, fmt.Errorf("failed to get recommendations: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *recommendationServiceImpl) gatherCandidates(
	ctx context.Context,
	topCities []model.CountedTerm,
	preference model.Preference,
	trending []repository.TrendingHostel,
) (map[string]hostelModel.Hostel, error) {
	perSource := s.cfg.App.Recommendation.CandidatesPerSource
	candidates := map[string]hostelModel.Hostel{}

	if len(topCities) > 0 {
		behavioral, err := s.hostelsByCities(ctx, termList(topCities), perSource)
		if err != nil {
			return nil, err
		}

		mergeCandidates(candidates, behavioral)
	}

	if len(preference.Cities) > 0 {
		preferred, err := s.hostelsByCities(ctx, preference.Cities, perSource)
		if err != nil {
			return nil, err
		}

		mergeCandidates(candidates, preferred)
	}

	if len(trending) > 0 {
		ids := make([]string, 0, len(trending))
		for _, t := range trending {
			ids = append(ids, t.HostelID)
		}

		trendingHostels, err := s.hostelsByIDs(ctx, ids, perSource)
		if err != nil {
			return nil, err
		}

		mergeCandidates(candidates, trendingHostels)
	}

	return candidates, nil
}

func (s *recommendationServiceImpl) hostelsByCities(ctx context.Context, cities []string, limit int) ([]hostelModel.Hostel, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    hostelModel.FieldCity,
				Operator: gDto.FilterOperatorIn,
				Value:    cities,
				Table:    hostelModel.TableName,
			},
			gDto.Filter{
				Field:    hostelModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    hostelModel.TableName,
			},
		},
	}

	hostels, err := s.hostelRepo.GetAll(ctx, gDto.QueryParams{Limit: limit}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate hostels by city: %w", err)
	}

	return hostels, nil
}

func (s *recommendationServiceImpl) hostelsByIDs(ctx context.Context, ids []string, limit int) ([]hostelModel.Hostel, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    hostelModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    hostelModel.TableName,
			},
			gDto.Filter{
				Field:    hostelModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    hostelModel.TableName,
			},
		},
	}

	hostels, err := s.hostelRepo.GetAll(ctx, gDto.QueryParams{Limit: limit}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate hostels by id: %w", err)
	}

	return hostels, nil
}

func (s *recommendationServiceImpl) favoriteHostelIDs(ctx context.Context, visitorID string) (map[string]bool, error) {
	favorites, err := s.favoriteRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(visitorID, model.FieldFavoriteVisitorID, model.FavoriteTableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	ids := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		ids[f.HostelID] = true
	}

	return ids, nil
}

func (s *recommendationServiceImpl) roomTypesByHostel(ctx context.Context, candidates map[string]hostelModel.Hostel) (map[string][]string, error) {
	if len(candidates) == 0 {
		return map[string][]string{}, nil
	}

	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldHostelID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    roomModel.TableName,
			},
		},
	}, roomModel.FieldHostelID, roomModel.FieldType)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate room types: %w", err)
	}

	types := map[string][]string{}

	for _, room := range rooms {
		types[room.HostelID] = append(types[room.HostelID], room.Type)
	}

	return types, nil
}

func mergeCandidates(into map[string]hostelModel.Hostel, hostels []hostelModel.Hostel) {
	for _, h := range hostels {
		into[h.ID] = h
	}
}

// normalizeCounts maps each term to its frequency relative to the most
// frequent term, so scores land in [0, 1].
func normalizeCounts(terms []model.CountedTerm) map[string]float64 {
	scores := map[string]float64{}

	max := 0
	for _, t := range terms {
		if t.Count > max {
			max = t.Count
		}
	}

	if max == 0 {
		return scores
	}

	for _, t := range terms {
		scores[t.Term] = float64(t.Count) / float64(max)
	}

	return scores
}

func termSet(terms []model.CountedTerm) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t.Term] = true
	}

	return set
}

func termList(terms []model.CountedTerm) []string {
	list := make([]string, len(terms))
	for i, t := range terms {
		list[i] = t.Term
	}

	return list
}

// behavioralScore blends the visitor's viewing history into one score:
// half for the city's share of recent views, half for the hostel's
// best-matching room type.
func behavioralScore(cityScore float64, roomTypes []string, roomTypeScores map[string]float64) float64 {
	best := 0.0

	for _, t := range roomTypes {
		if roomTypeScores[t] > best {
			best = roomTypeScores[t]
		}
	}

	return 0.5*cityScore + 0.5*best
}

// preferenceScore measures how well a hostel matches the visitor's
// stated preferences: half for the city, half for amenity overlap.
func preferenceScore(preference model.Preference, hostel hostelModel.Hostel) float64 {
	if preference.ID == "" {
		return 0
	}

	score := 0.0

	for _, city := range preference.Cities {
		if city == hostel.City {
			score += 0.5

			break
		}
	}

	if len(preference.Amenities) > 0 {
		available := make(map[string]bool, len(hostel.Amenities))
		for _, a := range hostel.Amenities {
			available[a] = true
		}

		matched := 0

		for _, a := range preference.Amenities {
			if available[a] {
				matched++
			}
		}

		score += 0.5 * float64(matched) / float64(len(preference.Amenities))
	}

	return score
}

// noveltyScore is a step function: 1.0 when both the city and every
// room type are new to the visitor, 0.5 when only one dimension is
// new, 0.0 when both are familiar.
func noveltyScore(city string, roomTypes []string, seenCities, seenRoomTypes map[string]bool) float64 {
	cityUnseen := !seenCities[city]

	typeUnseen := true

	for _, t := range roomTypes {
		if seenRoomTypes[t] {
			typeUnseen = false

			break
		}
	}

	switch {
	case cityUnseen && typeUnseen:
		return 1.0
	case cityUnseen || typeUnseen:
		return 0.5
	default:
		return 0.0
	}
}
