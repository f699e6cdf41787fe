package repository

//go:generate go run go.uber.org/mock/mockgen -source=./activity.go -destination=../mocks/activity_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/visitor/model"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/logger"
	gRepo "hostelhub/shared/repository"
)

type Activity interface {
	Insert(ctx context.Context, model model.Activity) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Activity, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	TopCities(ctx context.Context, visitorID string, windowDays, limit int) ([]model.CountedTerm, error)
	TopRoomTypes(ctx context.Context, visitorID string, windowDays, limit int) ([]model.CountedTerm, error)
	CityViewShares(ctx context.Context, windowDays int) ([]model.CountedTerm, error)
}

type activityRepositoryImpl struct {
	gRepo.Repository[model.Activity]
	db   *postgres.Connection
	otel otel.Otel
}

func NewActivity(db *postgres.Connection, otel otel.Otel) Activity {
	return &activityRepositoryImpl{
		Repository: gRepo.NewRepository[model.Activity](model.ActivityEntityName, model.ActivityTableName, model.FieldActivityID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *activityRepositoryImpl) TopCities(ctx context.Context, visitorID string, windowDays, limit int) ([]model.CountedTerm, error) {
	return repo.topTerms(ctx, model.FieldActivityCity, visitorID, windowDays, limit)
}

func (repo *activityRepositoryImpl) TopRoomTypes(ctx context.Context, visitorID string, windowDays, limit int) ([]model.CountedTerm, error) {
	return repo.topTerms(ctx, model.FieldActivityRoomType, visitorID, windowDays, limit)
}

// topTerms aggregates one activity column into (term, count) rows for a
// visitor's recent activity, most frequent first.
func (repo *activityRepositoryImpl) topTerms(ctx context.Context, column, visitorID string, windowDays, limit int) ([]model.CountedTerm, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visitor_activity.topTerms")
	defer scope.End()

	query := fmt.Sprintf(`
		SELECT %s AS term, COUNT(*) AS count
		FROM %s
		WHERE visitor_id = :visitor_id
		  AND %s != ''
		  AND created_at >= NOW() - make_interval(days => :window_days)
		GROUP BY %s
		ORDER BY count DESC
		LIMIT :limit`, column, model.ActivityTableName, column, column)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"visitor_id":  visitorID,
		"window_days": windowDays,
		"limit":       limit,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (visitor_activity): %w", err)
	}
	defer prepare.Close()

	var terms []model.CountedTerm

	if err = prepare.SelectContext(ctx, &terms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to aggregate visitor activity: %w", err)
	}

	return terms, nil
}

// CityViewShares counts recent view events per city across all
// visitors.
func (repo *activityRepositoryImpl) CityViewShares(ctx context.Context, windowDays int) ([]model.CountedTerm, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visitor_activity.CityViewShares")
	defer scope.End()

	query := fmt.Sprintf(`
		SELECT LOWER(city) AS term, COUNT(*) AS count
		FROM %s
		WHERE event_type = :event_type
		  AND city != ''
		  AND created_at >= NOW() - make_interval(days => :window_days)
		GROUP BY LOWER(city)
		ORDER BY count DESC`, model.ActivityTableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"event_type":  model.EventTypeView,
		"window_days": windowDays,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (visitor_activity): %w", err)
	}
	defer prepare.Close()

	var terms []model.CountedTerm

	if err = prepare.SelectContext(ctx, &terms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to aggregate city views: %w", err)
	}

	return terms, nil
}
