package reservation

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"reservo/infras/otel"
	"reservo/shared/constant"
	"reservo/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errVanished = errors.New("record missing after commit")

// Record is the part of a stored row the transition engine inspects. A zero id
// means the row does not exist.
type Record interface {
	GetID() int64
	GetStatus() Status
}

// Store is the transactional access the transition engine needs. The tx handed to
// fn must be passed back to the *Tx methods; it is nil for stores that are not
// backed by a database.
type Store[T Record] interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (T, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status Status) error
	GetPrimary(ctx context.Context, id int64) (T, error)
}

// Engine applies pending -> accepted/declined exactly once per record.
type Engine[T Record] struct {
	kind  Kind
	store Store[T]
	otel  otel.Otel
}

func NewEngine[T Record](kind Kind, store Store[T], otel otel.Otel) *Engine[T] {
	return &Engine[T]{
		kind:  kind,
		store: store,
		otel:  otel,
	}
}

// Transition moves record id to target. The row is locked for the whole check and
// write, so of two concurrent calls on the same pending record one succeeds and the
// other sees the settled status and gets a ConflictError. Any failure rolls the
// transaction back and leaves the row untouched.
func (e *Engine[T]) Transition(ctx context.Context, id int64, target Status) (res T, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Transition", constant.OtelServiceScopeName, e.kind.Entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"reservation.id":     fmt.Sprint(id),
		"reservation.target": target.String(),
	})

	if !target.IsTerminal() {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s is not a valid target status.", target))
	}

	err = e.store.WithinTx(ctx, func(tx *sqlx.Tx) error {
		current, err := e.store.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to lock %s: %w", e.kind.Entity, err)
		}

		if current.GetID() == 0 {
			return failure.NotFound(e.kind.NotFoundMessage())
		}

		if !current.GetStatus().CanTransitionTo(target) {
			return &ConflictError{Kind: e.kind, Current: current.GetStatus()}
		}

		if err := e.store.UpdateStatusTx(ctx, tx, id, target); err != nil {
			return fmt.Errorf("failed to update %s status: %w", e.kind.Entity, err)
		}

		return nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			return res, err
		}

		log.Ctx(ctx).Error().Err(err).Str("entity", e.kind.Entity).Int64("id", id).Msg("failed to transition status")

		return res, StoreFailure(err)
	}

	res, err = e.store.GetPrimary(ctx, id)
	if err == nil && res.GetID() == 0 {
		err = errVanished
	}

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("entity", e.kind.Entity).Int64("id", id).Msg("failed to reload after transition")

		return res, StoreFailure(err)
	}

	log.Ctx(ctx).Info().
		Str("entity", e.kind.Entity).
		Int64("id", id).
		Str("status", target.String()).
		Msg("status transition committed")

	return res, nil
}
