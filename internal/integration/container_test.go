package integration_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName         = "box_office"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	migrationsSource = "file://../../migrations"
	startupTimeout   = time.Minute
)

// environment is the Postgres and Redis pair one suite runs against. The database is
// migrated to the latest schema before any test starts.
type environment struct {
	postgres  *postgres.PostgresContainer
	redis     *tcredis.RedisContainer
	dsn       string
	redisAddr string
}

func startEnvironment(ctx context.Context) (*environment, error) {
	env := &environment{}

	var err error

	env.postgres, env.dsn, err = startPostgres(ctx)
	if err != nil {
		return nil, err
	}

	env.redis, env.redisAddr, err = startRedis(ctx)
	if err != nil {
		return nil, errors.Join(err, env.terminate())
	}

	err = migrateUp(env.dsn)
	if err != nil {
		return nil, errors.Join(err, env.terminate())
	}

	return env, nil
}

func (e *environment) terminate() error {
	return errors.Join(
		testcontainers.TerminateContainer(e.postgres),
		testcontainers.TerminateContainer(e.redis),
	)
}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		// fixtures and expected bodies are written in UTC
		testcontainers.WithEnv(map[string]string{"TZ": "UTC"}),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx/v5", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
					dbUser, dbPassword, net.JoinHostPort(host, port.Port()), dbName)
			}).WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", errors.Join(
			fmt.Errorf("failed to read postgres connection string: %w", err),
			testcontainers.TerminateContainer(container),
		)
	}

	return container, dsn, nil
}

func startRedis(ctx context.Context) (*tcredis.RedisContainer, string, error) {
	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start redis container: %w", err)
	}

	// the application dials host:port rather than a redis:// URL
	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, "", errors.Join(
			fmt.Errorf("failed to read redis endpoint: %w", err),
			testcontainers.TerminateContainer(container),
		)
	}

	return container, addr, nil
}

func migrateUp(dsn string) error {
	db, err := sql.Open("pgx/v5", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsSource, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
