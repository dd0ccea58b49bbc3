package testutils

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/database"
	"studio-admin-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testDBUser     = "studio"
	testDBPassword = "studio"
	testDBName     = "studio_admin_test"
)

// testDatabase is the postgres container shared by every suite in the test binary
type testDatabase struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

var (
	sharedOnce    sync.Once
	sharedInitErr error
	shared        *testDatabase
)

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared postgres container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { shared, sharedInitErr = startTestDatabase() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start test database: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and removes the container. TestMain calls it once.
func CleanupSharedContainer() {
	if shared == nil {
		return
	}
	log := logger.New().WithField("component", "testutils")
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.WithField("error", err).Warn("could not remove test database container")
	}
	shared = nil
}

// RunWithTestSuite runs testFunc against a clean database
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	var tables []string
	for _, model := range database.Models() {
		if named, ok := model.(interface{ TableName() string }); ok {
			tables = append(tables, `"`+named.TableName()+`"`)
		}
	}
	s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE")
}

func startTestDatabase() (*testDatabase, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, resource.GetPort("5432/tcp"), testDBName)

	// postgres restarts once during first boot, so wait for a plain ping before migrating
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"component": "testutils",
		"container": resource.Container.Name,
	}).Info("test database ready")

	return &testDatabase{
		pool:     pool,
		resource: resource,
		db:       db,
		config: &config.Config{
			DatabaseURL:   dsn,
			Port:          "8080",
			LogLevel:      "debug",
			Environment:   "test",
			JWTSecret:     "test-secret",
			HoursPerPoint: 4,
			HourlyRate:    150,
		},
	}, nil
}
