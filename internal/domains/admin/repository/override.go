package repository

//go:generate go run go.uber.org/mock/mockgen -source=./override.go -destination=../mocks/override_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/admin/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type Override interface {
	Insert(ctx context.Context, model model.Override) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Override, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Override, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type overrideRepositoryImpl struct {
	gRepo.Repository[model.Override]
	db   *postgres.Connection
	otel otel.Otel
}

func NewOverride(db *postgres.Connection, otel otel.Otel) Override {
	return &overrideRepositoryImpl{
		Repository: gRepo.NewRepository[model.Override](model.OverrideEntityName, model.OverrideTableName, model.FieldOverrideID, db, otel),
		db:         db,
		otel:       otel,
	}
}
