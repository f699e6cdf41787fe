package repository

//go:generate go run go.uber.org/mock/mockgen -source=./saved_search.go -destination=../mocks/saved_search_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/search/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type SavedSearch interface {
	Insert(ctx context.Context, model model.SavedSearch) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SavedSearch, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SavedSearch, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type savedSearchRepositoryImpl struct {
	gRepo.Repository[model.SavedSearch]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSavedSearch(db *postgres.Connection, otel otel.Otel) SavedSearch {
	return &savedSearchRepositoryImpl{
		Repository: gRepo.NewRepository[model.SavedSearch](model.SavedSearchEntityName, model.SavedSearchTableName, model.FieldSavedSearchID, db, otel),
		db:         db,
		otel:       otel,
	}
}
