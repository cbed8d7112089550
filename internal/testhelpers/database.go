package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/starwars-blog/api/config"
	"github.com/starwars-blog/api/internal/database"
)

// TestConfig returns a configuration pointing at databaseURL
func TestConfig(databaseURL string) *config.Config {
	return &config.Config{
		Environment:        config.Test,
		ServerPort:         "3000",
		ServerHost:         "127.0.0.1",
		ShutdownTimeout:    5 * time.Second,
		CORSOrigins:        []string{"*"},
		DatabaseURL:        databaseURL,
		DBMaxOpenConns:     5,
		DBMaxIdleConns:     5,
		DBConnMaxLifetime:  time.Hour,
		FavoritesRateLimit: 60,
		LogLevel:           "error",
		LogFormat:          "json",
	}
}

// SetupSQLite opens a private in-memory sqlite database with the schema migrated
func SetupSQLite(t *testing.T) *database.DB {
	t.Helper()

	url := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.New(TestConfig(url))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("error closing test database: %v", err)
		}
	})
	return db
}

// SetupSeededSQLite is SetupSQLite plus the fixture rows
func SetupSeededSQLite(t *testing.T) *database.DB {
	t.Helper()

	db := SetupSQLite(t)
	require.NoError(t, database.Seed(context.Background(), db.DB))
	return db
}

func requireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
}

// PostgresURL starts a PostgreSQL container and returns its connection URL
func PostgresURL(t *testing.T) string {
	t.Helper()
	requireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "starwars",
				"POSTGRES_PASSWORD": "starwars",
				"POSTGRES_DB":       "starwars",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://starwars:starwars@%s:%s/starwars?sslmode=disable", host, port.Port())
}

// SetupPostgres opens a migrated database backed by a PostgreSQL container
func SetupPostgres(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(TestConfig(PostgresURL(t)))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupRedis starts a Redis container and returns a connected client
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	requireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := TestConfig("")
	cfg.RedisURL = fmt.Sprintf("redis://%s:%s/0", host, port.Port())
	client, err := database.NewRedisClient(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
