package repository

//go:generate go run go.uber.org/mock/mockgen -source=./query.go -destination=../mocks/query_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/search/model"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/logger"
	gRepo "hostelhub/shared/repository"
)

// TermShare is a grouped term with its occurrence count.
type TermShare struct {
	Term  string `db:"term"`
	Count int    `db:"count"`
}

type Query interface {
	Insert(ctx context.Context, model model.Query) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Query, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ZeroResultKeywords(ctx context.Context, windowDays, minOccurrences, limit int) ([]TermShare, error)
	CityQueryShares(ctx context.Context, windowDays int) ([]TermShare, error)
}

type queryRepositoryImpl struct {
	gRepo.Repository[model.Query]
	db   *postgres.Connection
	otel otel.Otel
}

func NewQuery(db *postgres.Connection, otel otel.Otel) Query {
	return &queryRepositoryImpl{
		Repository: gRepo.NewRepository[model.Query](model.QueryEntityName, model.QueryTableName, model.FieldQueryID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ZeroResultKeywords groups recent searches that returned nothing by
// keyword, most frequent first.
func (repo *queryRepositoryImpl) ZeroResultKeywords(ctx context.Context, windowDays, minOccurrences, limit int) ([]TermShare, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".search_query.ZeroResultKeywords")
	defer scope.End()

	query := fmt.Sprintf(`
		SELECT LOWER(keyword) AS term, COUNT(*) AS count
		FROM %s
		WHERE result_count = 0
		  AND keyword != ''
		  AND created_at >= NOW() - make_interval(days => :window_days)
		GROUP BY LOWER(keyword)
		HAVING COUNT(*) >= :min_occurrences
		ORDER BY count DESC
		LIMIT :limit`, model.QueryTableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"window_days":     windowDays,
		"min_occurrences": minOccurrences,
		"limit":           limit,
	}

	return repo.selectShares(ctx, query, args)
}

// CityQueryShares counts recent searches per requested city.
func (repo *queryRepositoryImpl) CityQueryShares(ctx context.Context, windowDays int) ([]TermShare, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".search_query.CityQueryShares")
	defer scope.End()

	query := fmt.Sprintf(`
		SELECT LOWER(city) AS term, COUNT(*) AS count
		FROM %s
		WHERE city != ''
		  AND created_at >= NOW() - make_interval(days => :window_days)
		GROUP BY LOWER(city)
		ORDER BY count DESC`, model.QueryTableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"window_days": windowDays,
	}

	return repo.selectShares(ctx, query, args)
}

func (repo *queryRepositoryImpl) selectShares(ctx context.Context, query string, args map[string]any) ([]TermShare, error) {
	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (search_query): %w", err)
	}
	defer prepare.Close()

	var shares []TermShare

	if err = prepare.SelectContext(ctx, &shares, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to aggregate search queries: %w", err)
	}

	return shares, nil
}
