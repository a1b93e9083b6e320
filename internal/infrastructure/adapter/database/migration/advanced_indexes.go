package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// CreateAdvancedIndexes creates partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []indexStatement{
		{
			// check-active and history only care about in-flight rows per payer
			name: "idx_transactions_in_flight",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_in_flight
				ON transactions (payer_id, created_at)
				WHERE status IN ('pending', 'otp_sent', 'otp_verified')`,
		},
		{
			name: "idx_students_unpaid",
			sql: `CREATE INDEX IF NOT EXISTS idx_students_unpaid
				ON students (student_id)
				WHERE is_paid = false`,
		},
		{
			name: "idx_otp_codes_active",
			sql: `CREATE INDEX IF NOT EXISTS idx_otp_codes_active
				ON otp_codes (transaction_id, created_at DESC)
				WHERE is_used = false`,
		},
		{
			name: "idx_transaction_history_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transaction_history_created_at_brin
				ON transaction_history USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}

	db := m.db.WithContext(ctx)
	for _, stmt := range statements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies table settings. Failures are logged and skipped.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// Lock rows are rewritten on every takeover; leave room for HOT updates.
	if err := db.Exec(`ALTER TABLE transaction_locks SET (fillfactor = 70)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transaction_locks", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN payer_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for payer_id", map[string]any{
			"error": err.Error(),
		})
	}
}
