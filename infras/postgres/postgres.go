package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"reservo/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the replica used for listings and the primary used for writes and
// for reads that must observe a just-committed transaction.
type Connection struct {
	Read        *sqlx.DB
	Write       *sqlx.DB
	LockTimeout time.Duration
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:        CreatePostgresReadConn(*config),
		Write:       CreatePostgresWriteConn(*config),
		LockTimeout: time.Duration(config.DB.Postgres.LockTimeoutMillis) * time.Millisecond,
	}
}

// Ping checks the primary, which every transition depends on.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Write == nil {
		return fmt.Errorf("postgres write connection is not established")
	}

	return c.Write.PingContext(ctx) //nolint:wrapcheck
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access. Without a
// dedicated replica host the primary's settings are used.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read
	if read.Host == "" {
		read = config.DB.Postgres.Write
	}

	return CreatePostgresConnection(
		"read",
		read.Username,
		read.Password,
		read.Host,
		read.Port,
		getDBName(config, read.Name),
		read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// DSN builds the lib/pq connection url.
func DSN(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := DSN(username, password, host, port, dbName, sslMode)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
