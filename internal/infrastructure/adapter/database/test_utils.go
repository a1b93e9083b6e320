package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// TestDBManager provides an isolated in-memory sqlite database per test
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// One connection is shared by the whole pool so concurrent units serialize
// the same way competing writers do on a real server.
func NewTestDBManager(t *testing.T, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", name, testDBCounter.Add(1)),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	log := logger.NewNoopLogger()
	manager := NewManager(config, log, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// UnitOfWork returns a unit of work with a short retry policy
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.Manager.DB(), m.Logger, m.TimeProvider, WithRetryConfig(RetryConfig{
		MaxRetries:    3,
		RetryInterval: 5 * time.Millisecond,
		MaxInterval:   20 * time.Millisecond,
	}))
}

// CreateTestUser inserts a payer with the given balance in minor units
func (m *TestDBManager) CreateTestUser(t *testing.T, id uint64, email string, balance int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        id,
		Username:  fmt.Sprintf("user%d", id),
		FullName:  fmt.Sprintf("Test User %d", id),
		Email:     email,
		Balance:   balance,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestStudent inserts a student with the given tuition in minor units
func (m *TestDBManager) CreateTestStudent(t *testing.T, studentID, fullName string, tuition int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	student := model.Student{
		StudentID:     studentID,
		FullName:      fullName,
		TuitionAmount: tuition,
		AcademicYear:  "2024-2025",
		Semester:      "1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.DB().Create(&student).Error; err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
}

// FailCreatesOn makes every INSERT into table fail until the returned func is called.
// It simulates a crash in the middle of a unit of work.
func (m *TestDBManager) FailCreatesOn(t *testing.T, table string) func() {
	t.Helper()

	var enabled atomic.Bool
	enabled.Store(true)

	name := "test:fail_create_" + table
	err := m.DB().Callback().Create().Before("gorm:create").Register(name, func(db *gorm.DB) {
		if enabled.Load() && db.Statement.Table == table {
			_ = db.AddError(fmt.Errorf("simulated failure writing %s", table))
		}
	})
	if err != nil {
		t.Fatalf("Failed to register failure callback: %v", err)
	}

	return func() { enabled.Store(false) }
}
