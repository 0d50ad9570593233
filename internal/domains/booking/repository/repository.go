package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reservo/infras/otel"
	"reservo/infras/postgres"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/reservation"
	"reservo/shared"
	gDto "reservo/shared/dto"
	gRepo "reservo/shared/repository"
	"reservo/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Booking, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status reservation.Status) error
	GetPrimary(ctx context.Context, id int64) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int64) (model.Booking, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPrimary(ctx context.Context, id int64) (model.Booking, error) {
	return r.Repository.GetPrimary(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Booking, error) {
	return r.Repository.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status reservation.Status) error {
	mod := map[string]any{
		model.FieldStatus:    status,
		model.FieldUpdatedAt: timezone.Now(),
	}

	return r.Repository.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
