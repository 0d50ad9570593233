package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PrivateReservation=MockPrivateReservationService

import (
	"context"
	"fmt"
	"reservo/infras/otel"
	"reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/privatereservation/model/dto"
	"reservo/internal/domains/privatereservation/repository"
	"reservo/internal/domains/reservation"
	"reservo/shared/constant"
	"reservo/shared/failure"

	"github.com/rs/zerolog/log"
)

type PrivateReservation interface {
	Create(ctx context.Context, req dto.CreatePrivateReservationRequest) (dto.PrivateReservationResponse, error)
	GetAll(ctx context.Context, query reservation.ListQuery) (dto.GetPrivateReservationsResponse, error)
	Get(ctx context.Context, id int64) (dto.PrivateReservationResponse, error)
	Approve(ctx context.Context, id int64) (dto.PrivateReservationResponse, error)
	Decline(ctx context.Context, id int64) (dto.PrivateReservationResponse, error)
}

type serviceImpl struct {
	repo   repository.PrivateReservation
	engine *reservation.Engine[model.PrivateReservation]
	otel   otel.Otel
}

func New(repo repository.PrivateReservation, otel otel.Otel) PrivateReservation {
	return &serviceImpl{
		repo:   repo,
		engine: reservation.NewEngine[model.PrivateReservation](model.Kind, repo, otel),
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePrivateReservationRequest) (res dto.PrivateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".privatereservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := req.ToModel()
	if err != nil {
		return res, failure.UnprocessableField(model.FieldDate, err.Error())
	}

	record.ID, err = s.repo.InsertReturningID(ctx, record)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create private reservation")

		return res, reservation.StoreFailure(fmt.Errorf("failed to create private reservation: %w", err))
	}

	log.Ctx(ctx).Info().Int64("id", record.ID).Str("date", req.Date).Msg("private reservation created")

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, query reservation.ListQuery) (res dto.GetPrivateReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".privatereservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, meta, err := reservation.List[model.PrivateReservation](ctx, s.repo, model.Kind, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to get private reservations")

		return res, reservation.StoreFailure(err)
	}

	res.FromModels(models, meta)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PrivateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".privatereservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get private reservation")

		return res, reservation.StoreFailure(fmt.Errorf("failed to get private reservation: %w", err))
	}

	if record.ID == 0 {
		return res, failure.NotFound(model.Kind.NotFoundMessage())
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id int64) (dto.PrivateReservationResponse, error) {
	return s.transition(ctx, id, reservation.StatusAccepted)
}

func (s *serviceImpl) Decline(ctx context.Context, id int64) (dto.PrivateReservationResponse, error) {
	return s.transition(ctx, id, reservation.StatusDeclined)
}

func (s *serviceImpl) transition(ctx context.Context, id int64, target reservation.Status) (res dto.PrivateReservationResponse, err error) {
	record, err := s.engine.Transition(ctx, id, target)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}
