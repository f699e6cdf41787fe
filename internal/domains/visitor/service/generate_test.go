package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostelhub/config"
	"hostelhub/infras/otel/mocks"
	hostelMocks "hostelhub/internal/domains/hostel/mocks"
	hostelModel "hostelhub/internal/domains/hostel/model"
	roomMocks "hostelhub/internal/domains/room/mocks"
	roomModel "hostelhub/internal/domains/room/model"
	visitorMocks "hostelhub/internal/domains/visitor/mocks"
	"hostelhub/internal/domains/visitor/model"
	"hostelhub/internal/domains/visitor/repository"
	"hostelhub/internal/domains/visitor/service"
	"hostelhub/shared/constant"
)

func newRecommendationService(t *testing.T) (
	service.Recommendation,
	*visitorMocks.MockRecommendation,
	*visitorMocks.MockPreference,
	*visitorMocks.MockFavorite,
	*visitorMocks.MockActivity,
	*hostelMocks.MockHostel,
	*roomMocks.MockRoom,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRecommendationRepo := visitorMocks.NewMockRecommendation(ctrl)
	mockPreferenceRepo := visitorMocks.NewMockPreference(ctrl)
	mockFavoriteRepo := visitorMocks.NewMockFavorite(ctrl)
	mockActivityRepo := visitorMocks.NewMockActivity(ctrl)
	mockHostelRepo := hostelMocks.NewMockHostel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Recommendation.TopN = 2
	cfg.App.Recommendation.CandidatesPerSource = 10
	cfg.App.Recommendation.TrendingWindowDays = 7
	cfg.App.Recommendation.ActivityWindowDays = 30

	svc := service.NewRecommendation(
		mockRecommendationRepo,
		mockPreferenceRepo,
		mockFavoriteRepo,
		mockActivityRepo,
		mockHostelRepo,
		mockRoomRepo,
		cfg,
		mockOtel,
	)

	return svc, mockRecommendationRepo, mockPreferenceRepo, mockFavoriteRepo, mockActivityRepo, mockHostelRepo, mockRoomRepo
}

// Covers the whole pipeline: candidates gathered from activity, stated
// preferences and trending bookings, favorites excluded, scores merged
// and the previous set replaced by the ranked top N.
func TestRecommendationService_Generate(t *testing.T) {
	svc, mockRecommendationRepo, mockPreferenceRepo, mockFavoriteRepo, mockActivityRepo, mockHostelRepo, mockRoomRepo := newRecommendationService(t)

	visitorID := "visitor-id"

	jakartaHostels := []hostelModel.Hostel{
		{ID: "h1", Name: "Dorm Central", City: "jakarta", Active: true},
		{ID: "h3", Name: "City Rooms", City: "jakarta", Active: true},
		{ID: "fav-hostel", Name: "Already Saved", City: "jakarta", Active: true},
	}
	trendingHostels := []hostelModel.Hostel{
		{ID: "h2", Name: "Bandung Stay", City: "bandung", Active: true},
	}

	mockActivityRepo.EXPECT().
		TopCities(gomock.Any(), visitorID, 30, 10).
		Return([]model.CountedTerm{{Term: "jakarta", Count: 4}}, nil)

	mockActivityRepo.EXPECT().
		TopRoomTypes(gomock.Any(), visitorID, 30, 10).
		Return([]model.CountedTerm{{Term: "dorm", Count: 2}}, nil)

	mockPreferenceRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Preference{}, nil)

	mockRecommendationRepo.EXPECT().
		Trending(gomock.Any(), 7, 10).
		Return([]repository.TrendingHostel{{HostelID: "h2", Bookings: 5}}, nil)

	// First call fetches by the visitor's top cities, second by the
	// trending hostel ids.
	mockHostelRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(jakartaHostels, nil)

	mockHostelRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(trendingHostels, nil)

	mockFavoriteRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Favorite{{ID: "fav-id", VisitorID: visitorID, HostelID: "fav-hostel"}}, nil)

	mockRoomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "r1", HostelID: "h1", Type: "dorm"},
			{ID: "r2", HostelID: "h2", Type: "single"},
			{ID: "r3", HostelID: "h3", Type: "single"},
		}, nil)

	mockRecommendationRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	var saved []model.Recommendation

	mockRecommendationRepo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []model.Recommendation) error {
			saved = models

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, visitorID)
	res, err := svc.Generate(ctx)

	assert.NoError(t, err)

	// Top N truncation drops h3; the favorited hostel never appears.
	assert.Len(t, saved, 2)

	assert.Equal(t, "h1", saved[0].HostelID)
	assert.Equal(t, 1, saved[0].Rank)
	assert.InDelta(t, 0.4, saved[0].Score, 0.0001)

	assert.Equal(t, "h2", saved[1].HostelID)
	assert.Equal(t, 2, saved[1].Rank)
	assert.InDelta(t, 0.3, saved[1].Score, 0.0001)

	for _, rec := range saved {
		assert.Equal(t, visitorID, rec.VisitorID)
		assert.NotEqual(t, "fav-hostel", rec.HostelID)
	}

	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "h1", res.Recommendations[0].HostelID)
	assert.Equal(t, "h2", res.Recommendations[1].HostelID)
}

// An empty activity window and no stored preference still produce a
// trending-only set.
func TestRecommendationService_Generate_TrendingOnly(t *testing.T) {
	svc, mockRecommendationRepo, mockPreferenceRepo, mockFavoriteRepo, mockActivityRepo, mockHostelRepo, mockRoomRepo := newRecommendationService(t)

	visitorID := "visitor-id"

	mockActivityRepo.EXPECT().
		TopCities(gomock.Any(), visitorID, 30, 10).
		Return([]model.CountedTerm{}, nil)

	mockActivityRepo.EXPECT().
		TopRoomTypes(gomock.Any(), visitorID, 30, 10).
		Return([]model.CountedTerm{}, nil)

	mockPreferenceRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Preference{}, nil)

	mockRecommendationRepo.EXPECT().
		Trending(gomock.Any(), 7, 10).
		Return([]repository.TrendingHostel{{HostelID: "h2", Bookings: 3}}, nil)

	mockHostelRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]hostelModel.Hostel{{ID: "h2", Name: "Bandung Stay", City: "bandung", Active: true}}, nil)

	mockFavoriteRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Favorite{}, nil)

	mockRoomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{{ID: "r1", HostelID: "h2", Type: "single"}}, nil)

	mockRecommendationRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	var saved []model.Recommendation

	mockRecommendationRepo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []model.Recommendation) error {
			saved = models

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, visitorID)
	res, err := svc.Generate(ctx)

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, "h2", saved[0].HostelID)
	assert.Equal(t, 1, saved[0].Rank)

	// Popularity 0.2 plus full novelty 0.1; nothing behavioral or
	// preference driven.
	assert.InDelta(t, 0.3, saved[0].Score, 0.0001)

	assert.Equal(t, 1, res.TotalData)
}
