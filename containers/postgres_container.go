package containers

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:16.3-alpine"
	postgresDB       = "dynasty_tracker"
	postgresUser     = "dynasty"
	postgresPassword = "secret"
)

// PostgresContainer is a throwaway Postgres with schema/schema.sql applied.
type PostgresContainer struct {
	container *postgres.PostgresContainer
}

func NewPostgresContainer() *PostgresContainer {
	root, err := moduleRoot()
	if err != nil {
		log.Fatal().Err(err).Msg("error finding the schema")
	}

	container, err := postgres.Run(context.Background(), postgresImage,
		postgres.WithDatabase(postgresDB),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		postgres.WithInitScripts(filepath.Join(root, "schema", "schema.sql")),
		testcontainers.WithWaitStrategy(
			// The server restarts once after running the init scripts.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting postgres container")
	}

	log.Debug().Str("image", postgresImage).Msg("started postgres container")
	return &PostgresContainer{container: container}
}

func (c *PostgresContainer) Shutdown() {
	terminate("postgres", c.container)
}

func (c *PostgresContainer) ConnectionString() string {
	connStr, err := c.container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		log.Fatal().Err(err).Msg("error getting postgres connection string")
	}
	return connStr
}
