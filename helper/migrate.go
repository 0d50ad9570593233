package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"reservo/config"
	"reservo/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

const (
	migrationSource       = "file://migrations/postgres"
	defaultMigrationTable = "schema_migrations"
)

// getConnection targets the primary; migrations never run against the replica.
func getConnection(config *config.Config) (*migrate.Migrate, error) {
	write := config.DB.Postgres.Write

	table := config.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	connectionString := postgres.DSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		getDBName(config, write.Name),
		write.SSLMode,
	) + "&x-migrations-table=" + url.QueryEscape(table)

	mig, err := migrate.New(migrationSource, connectionString)

	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		logVersion(mig, "Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func logVersion(mig *migrate.Migrate, msg string) {
	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn().Err(err).Msg("Could not read schema version")

		return
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(msg)
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
