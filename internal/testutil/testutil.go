package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/teyvat-archive/internal/api"
	"github.com/dom/teyvat-archive/internal/config"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository"
	"github.com/dom/teyvat-archive/internal/repository/memory"
	repoPostgres "github.com/dom/teyvat-archive/internal/repository/postgres"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB starts a PostgreSQL container with the team schema migrated.
// Skipped under -short since it needs a Docker daemon.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_teyvat_archive"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	testDB := &TestDB{Container: container}
	t.Cleanup(func() {
		testDB.Cleanup()
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	testDB.DSN = dsn

	db, err := repoPostgres.NewConnection(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	testDB.DB = db

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// Truncate clears saved teams for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	if err := tdb.DB.Exec("TRUNCATE TABLE teams").Error; err != nil {
		t.Fatalf("failed to truncate teams: %v", err)
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	cfg := config.New()
	cfg.Port = "0"
	cfg.Environment = "test"
	cfg.LogLevel = "error"
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Repos    *repository.Repositories
	Services *service.Services
	Metrics  *metrics.Manager
	Config   *config.Config
}

// NewTestServer serves the full router over the embedded catalog with an
// in-memory team store.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	repos, err := memory.NewRepositories()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return newTestServer(t, repos)
}

// NewTestServerWithDB is NewTestServer with teams persisted in tdb
func NewTestServerWithDB(t *testing.T, tdb *TestDB) *TestServer {
	t.Helper()

	repos, err := memory.NewRepositories()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	repos.Team = repoPostgres.NewTeamRepository(tdb.DB)
	return newTestServer(t, repos)
}

func newTestServer(t *testing.T, repos *repository.Repositories) *TestServer {
	cfg := TestConfig()
	m := metrics.NewManager()
	services := service.NewServices(repos, m)
	router := api.NewRouter(services, m, cfg, zap.NewNop())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Metrics:  m,
		Config:   cfg,
	}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}
