package repository

//go:generate go run go.uber.org/mock/mockgen -source=./favorite.go -destination=../mocks/favorite_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/visitor/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type Favorite interface {
	Insert(ctx context.Context, model model.Favorite) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Favorite, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type favoriteRepositoryImpl struct {
	gRepo.Repository[model.Favorite]
	db   *postgres.Connection
	otel otel.Otel
}

func NewFavorite(db *postgres.Connection, otel otel.Otel) Favorite {
	return &favoriteRepositoryImpl{
		Repository: gRepo.NewRepository[model.Favorite](model.FavoriteEntityName, model.FavoriteTableName, model.FieldFavoriteID, db, otel),
		db:         db,
		otel:       otel,
	}
}
