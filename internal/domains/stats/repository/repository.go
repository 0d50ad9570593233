package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservo/infras/otel"
	"reservo/infras/postgres"
	bookingModel "reservo/internal/domains/booking/model"
	prModel "reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/reservation"
	"reservo/internal/domains/stats/model"
	"reservo/shared/constant"
	"reservo/shared/logger"
)

var (
	bookingTotalsQuery = fmt.Sprintf(
		`SELECT COUNT(*) AS count,
			COUNT(*) FILTER (WHERE status = :accepted) AS accepted,
			COALESCE(SUM(guests) FILTER (WHERE status = :accepted), 0) AS headcount
		FROM %s WHERE date = :date`,
		bookingModel.TableName,
	)

	privateTotalsQuery = fmt.Sprintf(
		`SELECT COUNT(*) AS count,
			COUNT(*) FILTER (WHERE status = :accepted) AS accepted,
			0 AS headcount
		FROM %s WHERE date = :date`,
		prModel.TableName,
	)

	peopleRangesQuery = fmt.Sprintf(
		`SELECT people_range, COUNT(*) AS count
		FROM %s WHERE date = :date AND status = :accepted
		GROUP BY people_range ORDER BY people_range`,
		prModel.TableName,
	)
)

type Stats interface {
	BookingTotals(ctx context.Context, date string) (model.Totals, error)
	PrivateReservationTotals(ctx context.Context, date string) (model.Totals, error)
	AcceptedPeopleRanges(ctx context.Context, date string) ([]model.PeopleRangeCount, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stats {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func args(date string) map[string]any {
	return map[string]any{
		"date":     date,
		"accepted": reservation.StatusAccepted,
	}
}

func (r *repositoryImpl) BookingTotals(ctx context.Context, date string) (model.Totals, error) {
	return r.totals(ctx, "BookingTotals", bookingTotalsQuery, date)
}

func (r *repositoryImpl) PrivateReservationTotals(ctx context.Context, date string) (model.Totals, error) {
	return r.totals(ctx, "PrivateReservationTotals", privateTotalsQuery, date)
}

func (r *repositoryImpl) totals(ctx context.Context, name, query, date string) (model.Totals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var totals model.Totals

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &totals, args(date)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to aggregate data (%s): %w", model.EntityName, err)
	}

	return totals, nil
}

func (r *repositoryImpl) AcceptedPeopleRanges(ctx context.Context, date string) ([]model.PeopleRangeCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stats.AcceptedPeopleRanges")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, peopleRangesQuery)

	ranges := []model.PeopleRangeCount{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, peopleRangesQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return ranges, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &ranges, args(date)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return ranges, fmt.Errorf("failed to group people ranges (%s): %w", model.EntityName, err)
	}

	return ranges, nil
}
