package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/tuition-payment/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	gormlogger "gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from users"))
	assert.Equal(t, "INSERT", extractQueryType("INSERT INTO transactions (code) VALUES (?)"))
	assert.Equal(t, "UPDATE", extractQueryType("UPDATE students SET is_paid = true"))
	assert.Equal(t, "DELETE", extractQueryType("DELETE FROM transaction_locks WHERE expires_at <= ?"))
	assert.Equal(t, "", extractQueryType("CREATE INDEX idx ON t (c)"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "USERS", extractTableName(`SELECT * FROM "users" WHERE id = 1`))
	assert.Equal(t, "TRANSACTION_LOCKS", extractTableName("INSERT INTO `transaction_locks` (resource_type) VALUES (?)"))
	assert.Equal(t, "STUDENTS", extractTableName("UPDATE students SET is_paid = true"))
	assert.Equal(t, "OTP_CODES", extractTableName("SELECT *\n\tFROM otp_codes\n\tORDER BY id"))
	assert.Equal(t, "", extractTableName("PRAGMA foreign_keys"))
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseGormLevel("SILENT"))
	assert.Equal(t, gormlogger.Error, parseGormLevel("error"))
	assert.Equal(t, gormlogger.Warn, parseGormLevel("warn"))
	assert.Equal(t, gormlogger.Info, parseGormLevel("whatever"))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	query := func() (string, int64) { return "SELECT * FROM students WHERE student_id = 'S1'", 1 }
	ctx := coreport.WithRequestID(context.Background(), "req-7")

	t.Run("Fast query logs at debug with request id", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(coreport.Duration(3 * time.Millisecond)).Once()
		log.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-7" &&
				fields["type"] == "SELECT" &&
				fields["table"] == "STUDENTS" &&
				fields["rows"] == int64(1)
		})).Once()

		NewDatabaseLoggerWithTimeProvider(log, clock, "info").Trace(ctx, begin, query, nil)
	})

	t.Run("Slow query warns", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(coreport.Duration(time.Second)).Once()
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		NewDatabaseLoggerWithTimeProvider(log, clock, "warn").Trace(ctx, begin, query, nil)
	})

	t.Run("Errors are reported", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond)).Once()
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "disk I/O error"
		})).Once()

		NewDatabaseLoggerWithTimeProvider(log, clock, "error").Trace(ctx, begin, query, errors.New("disk I/O error"))
	})

	t.Run("Record not found stays at debug", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond)).Once()
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		NewDatabaseLoggerWithTimeProvider(log, clock, "error").Trace(ctx, begin, query, gormlogger.ErrRecordNotFound)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)

		NewDatabaseLoggerWithTimeProvider(log, clock, "silent").Trace(ctx, begin, query, errors.New("ignored"))
	})
}

func TestDatabaseLoggerLogMode(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Warn("pool warning", mock.Anything).Once()

	base := NewDatabaseLoggerWithTimeProvider(log, nil, "silent")
	base.Info(context.Background(), "ignored")

	base.LogMode(gormlogger.Warn).Warn(context.Background(), "pool warning")
}
