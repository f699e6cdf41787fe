package repository

//go:generate go run go.uber.org/mock/mockgen -source=./document.go -destination=../mocks/document_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/student/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type Document interface {
	Insert(ctx context.Context, model model.Document) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Document, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Document, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type documentRepositoryImpl struct {
	gRepo.Repository[model.Document]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDocument(db *postgres.Connection, otel otel.Otel) Document {
	return &documentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Document](model.DocumentEntityName, model.DocumentTableName, model.FieldDocumentID, db, otel),
		db:         db,
		otel:       otel,
	}
}
