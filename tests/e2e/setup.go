//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"paseos-api/cmd/bootstrap"
	"paseos-api/cmd/bootstrap/components"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/pkg/config"
	"paseos-api/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// sharedContainer is started on first use and reused by every suite in the process.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	err       error

	port    string
	timeout time.Duration
	request func() testcontainers.ContainerRequest
}

func (sc *sharedContainer) info(t *testing.T) ContainerInfo {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
		defer cancel()
		sc.container, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: sc.request(),
			Started:          true,
		})
	})
	require.NoError(t, sc.err, "container for %s did not start", sc.port)

	ctx := context.Background()
	port, err := sc.container.MappedPort(ctx, nat.Port(sc.port))
	require.NoError(t, err)
	host, err := sc.container.Host(ctx)
	require.NoError(t, err)
	return ContainerInfo{Host: host, Port: port}
}

var postgres = &sharedContainer{
	port:    "5432/tcp",
	timeout: 3 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
				"TZ":                "America/Guayaquil",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(ContainerInfo{Host: host, Port: port})
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "paseos-e2e"},
		}
	},
}

// redis backs quiz sessions and the listing cache
var redisServer = &sharedContainer{
	port:    "6379/tcp",
	timeout: time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "paseos-e2e"},
		}
	},
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())
}

type environment struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
	redis  *redis.Client
}

func setupE2EEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)
	pg := postgres.info(t)
	rd := redisServer.info(t)

	dbConfig := createDatabase(t, pg)
	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigrations(pool), "migrations failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seeding failed")

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = rd.Addr()
	// each test process gets its own key space on the shared redis
	cfg.Redis.KeyPrefix = "paseos-e2e-" + dbConfig.DBName
	// the broker stays disabled so quiz verdicts go to the no-op publisher

	env := environment{pool: pool, cfg: cfg}
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.router, &env.redis),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app did not start")
	require.NotNil(t, env.redis, "redis client missing; is the container reachable?")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready", "postgres", pg.Addr(), "redis", rd.Addr(), "database", dbConfig.DBName)
	return env
}

// createDatabase makes a fresh database per test process and drops it afterwards.
func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	t.Helper()
	name := "paseos_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// CREATE DATABASE fails while template1 is in use by a parallel process
	var createErr error
	for attempt := range 5 {
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:         pg.Host,
		Port:         pg.Port.Port(),
		User:         pgUser,
		Password:     pgPassword,
		DBName:       name,
		SSLMode:      "disable",
		TimeZone:     "America/Guayaquil",
		MaxConns:     10,
		TxMaxRetries: 3,
		TxRetryBase:  10 * time.Millisecond,
	}
}

// applyMigrations runs every migrations/*.sql file in name order.
func applyMigrations(pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no migrations found under " + root)
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// go test runs in the package directory, so walk up to go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from an empty
// schema, the reference seed and an empty redis key space.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := setupE2EEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Redis = env.redis
	s.Config = env.cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
	require.NoError(s.T(), s.flushRedis(), "failed to flush redis")
}

func (s *SharedSuite) flushRedis() error {
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, s.Config.Redis.KeyPrefix+":*", 200).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Redis.Del(ctx, keys...).Err()
}
