package repository

//go:generate go run go.uber.org/mock/mockgen -source=./recommendation.go -destination=../mocks/recommendation_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	bookingModel "hostelhub/internal/domains/booking/model"
	"hostelhub/internal/domains/visitor/model"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/logger"
	gRepo "hostelhub/shared/repository"
)

// TrendingHostel is a hostel ranked by recent booking volume.
type TrendingHostel struct {
	HostelID string `db:"hostel_id"`
	Bookings int    `db:"bookings"`
}

type Recommendation interface {
	InsertBulk(ctx context.Context, models []model.Recommendation) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Recommendation, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Trending(ctx context.Context, windowDays, limit int) ([]TrendingHostel, error)
}

type recommendationRepositoryImpl struct {
	gRepo.Repository[model.Recommendation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRecommendation(db *postgres.Connection, otel otel.Otel) Recommendation {
	return &recommendationRepositoryImpl{
		Repository: gRepo.NewRepository[model.Recommendation](model.RecommendationEntityName, model.RecommendationTableName, model.FieldRecommendationID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Trending ranks hostels by confirmed booking volume inside the window.
func (repo *recommendationRepositoryImpl) Trending(ctx context.Context, windowDays, limit int) ([]TrendingHostel, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".recommendation.Trending")
	defer scope.End()

	query := fmt.Sprintf(`
		SELECT hostel_id, COUNT(*) AS bookings
		FROM %s
		WHERE status IN (:confirmed, :checked_in)
		  AND created_at >= NOW() - make_interval(days => :window_days)
		GROUP BY hostel_id
		ORDER BY bookings DESC
		LIMIT :limit`, bookingModel.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"confirmed":   bookingModel.StatusConfirmed,
		"checked_in":  bookingModel.StatusCheckedIn,
		"window_days": windowDays,
		"limit":       limit,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (recommendation): %w", err)
	}
	defer prepare.Close()

	var trending []TrendingHostel

	if err = prepare.SelectContext(ctx, &trending, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to rank trending hostels: %w", err)
	}

	return trending, nil
}
