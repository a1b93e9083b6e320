package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManagerWithTimeProvider creates a new migration manager with time provider
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion. It is a no-op when already there.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	if err := m.runVersionedMigrations(db, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.autoMigrateModels(db); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(db); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.isPostgres() {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			m.logger.Error("Failed to create advanced indexes", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

func (m *MigrationManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Transaction{},
		&model.TransactionLock{},
		&model.OTPCode{},
		&model.TransactionHistory{},
	)
}

// runVersionedMigrations runs data fixes that must precede AutoMigrate for an existing schema
func (m *MigrationManager) runVersionedMigrations(db *gorm.DB, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		return m.migrateFrom1_0_0To1_1_0(db)
	default:
		return fmt.Errorf("no migration path from schema version %s", currentVersion)
	}
}

// migrateFrom1_0_0To1_1_0 collapses duplicate lock rows written before the unique
// (resource_type, resource_id) index existed, since they would block its creation.
// Per resource the row that expires last survives; id breaks ties.
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(db *gorm.DB) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	result := db.Exec(`
		DELETE FROM transaction_locks
		WHERE EXISTS (
			SELECT 1 FROM transaction_locks newer
			WHERE newer.resource_type = transaction_locks.resource_type
				AND newer.resource_id = transaction_locks.resource_id
				AND (newer.expires_at > transaction_locks.expires_at
					OR (newer.expires_at = transaction_locks.expires_at AND newer.id > transaction_locks.id))
		)`)
	if result.Error != nil {
		return result.Error
	}

	m.logger.Info("Duplicate lock rows removed", map[string]any{"removed": result.RowsAffected})
	return nil
}

// createIndexes creates the portable indexes that gorm tags do not express
func (m *MigrationManager) createIndexes(db *gorm.DB) error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_transaction_locks_resource ON transaction_locks (resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_payer_status ON transactions (payer_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_history_user_created ON transaction_history (user_id, created_at)",
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
