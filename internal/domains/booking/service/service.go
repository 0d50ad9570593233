package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"reservo/infras/otel"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/booking/model/dto"
	"reservo/internal/domains/booking/repository"
	"reservo/internal/domains/reservation"
	"reservo/shared/constant"
	"reservo/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, query reservation.ListQuery) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Approve(ctx context.Context, id int64) (dto.BookingResponse, error)
	Decline(ctx context.Context, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	engine *reservation.Engine[model.Booking]
	otel   otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		engine: reservation.NewEngine[model.Booking](model.Kind, repo, otel),
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.UnprocessableField(model.FieldDate, err.Error())
	}

	booking.ID, err = s.repo.InsertReturningID(ctx, booking)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create booking")

		return res, reservation.StoreFailure(fmt.Errorf("failed to create booking: %w", err))
	}

	log.Ctx(ctx).Info().Int64("id", booking.ID).Str("date", req.Date).Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, query reservation.ListQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, meta, err := reservation.List[model.Booking](ctx, s.repo, model.Kind, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to get bookings")

		return res, reservation.StoreFailure(err)
	}

	res.FromModels(models, meta)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, reservation.StoreFailure(fmt.Errorf("failed to get booking: %w", err))
	}

	if booking.ID == 0 {
		return res, failure.NotFound(model.Kind.NotFoundMessage())
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return s.transition(ctx, id, reservation.StatusAccepted)
}

func (s *serviceImpl) Decline(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return s.transition(ctx, id, reservation.StatusDeclined)
}

func (s *serviceImpl) transition(ctx context.Context, id int64, target reservation.Status) (res dto.BookingResponse, err error) {
	booking, err := s.engine.Transition(ctx, id, target)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}
