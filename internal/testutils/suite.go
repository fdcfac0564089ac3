package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"rtk-backend/internal/config"
	"rtk-backend/internal/database"
	"rtk-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDatabaseEnv points integration tests at an existing, disposable
// Postgres database instead of a Docker container.
const TestDatabaseEnv = "RTK_TEST_DATABASE_URL"

const (
	postgresImage = "postgres"
	postgresTag   = "15-alpine"
	postgresUser  = "rtk"
	postgresPass  = "rtk-test"
	postgresDB    = "rtk_test"
)

// Shared, process-wide resources
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite carries the shared database handle for integration suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite connects (once per process) to the test database and
// returns a per-suite wrapper.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedDatabase() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize test database: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// RunIntegration runs the package tests and releases the shared database,
// also when the run is interrupted. Use it from TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutils.RunIntegration(m)) }
func RunIntegration(m *testing.M) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.New().Warn("Integration tests interrupted, cleaning up")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(c)
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the shared connection and purges the
// container when one was started.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		log := logger.New().WithField("container", sharedResource.Container.Name)
		log.Info("Purging Docker container")
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.WithError(err).Warn("Could not purge shared resource")
		}
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans the database; the connection outlives suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every model table that exists.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, t := range database.TableNames() {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

func initSharedDatabase() error {
	dsn := os.Getenv(TestDatabaseEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgresContainer(); err != nil {
			return err
		}
	}

	if err := waitForDatabase(dsn); err != nil {
		return err
	}

	sharedConfig = &config.Config{
		DatabaseURL:        dsn,
		Port:               "8080",
		LogLevel:           "debug",
		Environment:        "test",
		DefaultConfidence:  0.9,
		DefaultMissionTime: 100,
		HRMultiplier:       1e6,
		ExportDir:          os.TempDir(),
	}
	logger.New().Info("Test database ready")
	return nil
}

func startPostgresContainer() (string, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPass,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	return fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		postgresUser, postgresPass, resource.GetPort("5432/tcp"), postgresDB), nil
}

// waitForDatabase pings until Postgres accepts connections, then migrates
// the schema through database.Initialize.
func waitForDatabase(dsn string) error {
	connect := func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}

	if sharedPool == nil {
		if err := connect(); err != nil {
			return fmt.Errorf("could not connect to %s: %w", TestDatabaseEnv, err)
		}
		return nil
	}
	if err := sharedPool.Retry(connect); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}
	return nil
}
