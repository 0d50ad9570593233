package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"reservo/config"
	"reservo/infras/otel"
	"reservo/internal/domains/auth/model/dto"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

const MessageInvalidCredentials = "Invalid credentials."

// Auth checks the single staff credential configured for the back office. It issues
// no session; callers gate the staff UI on the answer.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff := s.cfg.App.Staff
	if staff.Email == "" || staff.PasswordHash == "" {
		log.Ctx(ctx).Warn().Msg("login attempted but no staff credential is configured")

		return failure.Unauthorized(MessageInvalidCredentials)
	}

	emailMatches := subtle.ConstantTimeCompare([]byte(strings.ToLower(req.Email)), []byte(strings.ToLower(staff.Email))) == 1

	// The hash is always checked so a wrong email costs as much as a wrong password.
	err = password.Verify(req.Password, staff.PasswordHash)
	if err != nil && !errors.Is(err, password.ErrInvalidPassword) {
		log.Ctx(ctx).Error().Err(err).Msg("failed to verify staff password")

		return failure.Unauthorized(MessageInvalidCredentials)
	}

	if err != nil || !emailMatches {
		log.Ctx(ctx).Warn().Str("email", req.Email).Msg("login attempt with wrong credentials")

		return failure.Unauthorized(MessageInvalidCredentials)
	}

	log.Ctx(ctx).Info().Str("email", req.Email).Msg("staff logged in")

	return nil
}
