package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Stats=MockStatsService

import (
	"context"
	"reservo/infras/otel"
	"reservo/internal/domains/reservation"
	"reservo/internal/domains/stats/model/dto"
	"reservo/internal/domains/stats/repository"
	"reservo/shared/constant"

	"github.com/rs/zerolog/log"
)

type Stats interface {
	Daily(ctx context.Context, date string) (dto.DailyStatsResponse, error)
}

type serviceImpl struct {
	repo repository.Stats
	otel otel.Otel
}

func New(repo repository.Stats, otel otel.Otel) Stats {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Daily aggregates both kinds for date. date must already be a valid YYYY-MM-DD string.
func (s *serviceImpl) Daily(ctx context.Context, date string) (res dto.DailyStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Daily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.BookingTotals(ctx, date)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("date", date).Msg("failed to aggregate bookings")

		return res, reservation.StoreFailure(err)
	}

	private, err := s.repo.PrivateReservationTotals(ctx, date)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("date", date).Msg("failed to aggregate private reservations")

		return res, reservation.StoreFailure(err)
	}

	ranges, err := s.repo.AcceptedPeopleRanges(ctx, date)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("date", date).Msg("failed to group people ranges")

		return res, reservation.StoreFailure(err)
	}

	res.FromTotals(date, bookings, private, ranges)

	return res, nil
}
