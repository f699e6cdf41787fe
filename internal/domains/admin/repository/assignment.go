package repository

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=../mocks/assignment_mock.go -package=mocks

import (
	"context"

	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/internal/domains/admin/model"
	gDto "hostelhub/shared/dto"
	gRepo "hostelhub/shared/repository"
)

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Assignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type assignmentRepositoryImpl struct {
	gRepo.Repository[model.Assignment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.AssignmentEntityName, model.AssignmentTableName, model.FieldAssignmentID, db, otel),
		db:         db,
		otel:       otel,
	}
}
