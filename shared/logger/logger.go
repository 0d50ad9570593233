package logger

import (
	"context"
	"os"
	"reservo/config"
	"reservo/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	zerolog.DefaultContextLogger = &log.Logger

	log.Trace().Msg("Zerolog initialized.")
}

// UseJSONOutput switches to structured JSON lines, used outside development.
func UseJSONOutput(config *config.Config) {
	if config.Server.Env == constant.ServerEnvDevelopment || config.Server.Env == "" {
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("app", config.App.Name).Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// WithRequestID returns a context carrying a logger tagged with the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, requestID)

	return log.With().Str("request_id", requestID).Logger().WithContext(ctx)
}
