package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cospace/infras/otel"
	"cospace/infras/postgres"
	"cospace/internal/domains/tariff/model"
	gDto "cospace/shared/dto"
	gRepo "cospace/shared/repository"
)

type Tariff interface {
	Insert(ctx context.Context, model model.Tariff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tariff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tariff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Tariff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tariff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tariff](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
