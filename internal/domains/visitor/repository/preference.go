package repository

//go:generate go run go.uber.org/mock/mockgen -source=./preference.go -destination=../mocks/preference_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/visitor/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type Preference interface {
	Insert(ctx context.Context, model model.Preference) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Preference, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type preferenceRepositoryImpl struct {
	gRepo.Repository[model.Preference]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPreference(db *postgres.Connection, otel otel.Otel) Preference {
	return &preferenceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Preference](model.PreferenceEntityName, model.PreferenceTableName, model.FieldPreferenceID, db, otel),
		db:         db,
		otel:       otel,
	}
}
