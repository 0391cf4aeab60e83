package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
)

// TestDBOption customizes NewTestManager
type TestDBOption func(*testDBOptions)

type testDBOptions struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	recorder     Recorder
}

// WithTestLogger routes SQL and migration logs to logger
func WithTestLogger(l coreport.Logger) TestDBOption {
	return func(o *testDBOptions) { o.logger = l }
}

// WithTestTimeProvider sets the clock used for GORM timestamps and migrations
func WithTestTimeProvider(tp coreport.TimeProvider) TestDBOption {
	return func(o *testDBOptions) { o.timeProvider = tp }
}

// WithTestRecorder attaches query and pool metrics
func WithTestRecorder(r Recorder) TestDBOption {
	return func(o *testDBOptions) { o.recorder = r }
}

// TestConfig returns a SQLite configuration in dir
func TestConfig(dir string) *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            filepath.Join(dir, "payments_test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		SlowQuery:       time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      0,
	}
}

// NewTestManager connects to a fresh migrated SQLite database that is removed when the test ends
func NewTestManager(t testing.TB, opts ...TestDBOption) *Manager {
	t.Helper()

	o := &testDBOptions{
		logger:       logger.NewNoopLogger(),
		timeProvider: timeprovider.NewRealTimeProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}

	manager := NewManager(TestConfig(t.TempDir()), o.logger, o.timeProvider, o.recorder)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return manager
}

// TruncateAllTables empties every table between subtests
func (m *Manager) TruncateAllTables(t testing.TB) {
	t.Helper()

	for _, table := range []string{"ledger_entries", "transaction_correlations", "transactions"} {
		if err := m.db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
