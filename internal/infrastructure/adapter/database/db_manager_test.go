package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLifecycle(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	ctx := context.Background()

	require.NoError(t, tdb.Manager.Ping(ctx))

	version, err := tdb.Manager.MigrationManager().GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	metrics := tdb.Manager.PoolMetrics()
	assert.Equal(t, 1, metrics.MaxOpenConnections)
	assert.InDelta(t, metrics.Saturation(), tdb.Manager.PoolSaturation(), 1e-9)

	assert.NotNil(t, tdb.Manager.CreateUnitOfWork())
	assert.NotNil(t, tdb.Manager.GetErrorMapper())
}

func TestManagerUnsupportedDriver(t *testing.T) {
	clock := timeprovider.NewManualTimeProvider(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	manager := NewManager(&Config{Driver: "oracle"}, logger.NewNoopLogger(), clock)

	_, err := manager.Connect()
	assert.ErrorContains(t, err, "unsupported database driver")
	assert.Error(t, manager.Ping(context.Background()))
	assert.NoError(t, manager.Close())
	assert.Equal(t, ConnectionPoolMetrics{}, manager.PoolMetrics())
}

func TestConnectionPoolMonitor(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)

	monitor := NewConnectionPoolMonitor(tdb.Manager, tdb.Logger)
	assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())

	require.NoError(t, monitor.Start(time.Hour))
	assert.Equal(t, 1, monitor.GetMetrics().MaxOpenConnections)

	monitor.Stop()
	monitor.Stop()
}

func TestConnectionPoolMonitorRecord(t *testing.T) {
	tdb, clock := newUnitOfWorkFixture(t)
	monitor := NewConnectionPoolMonitor(tdb.Manager, tdb.Logger)

	first := monitor.record(sql.DBStats{MaxOpenConnections: 10, InUse: 9, WaitCount: 4})
	assert.Zero(t, first.NewWaits, "no baseline yet")
	assert.InDelta(t, 0.9, first.Saturation(), 1e-9)
	assert.Equal(t, clock.Now(), first.SampledAt)

	clock.Advance(30 * time.Second)
	second := monitor.record(sql.DBStats{MaxOpenConnections: 10, InUse: 2, WaitCount: 7})
	assert.Equal(t, int64(3), second.NewWaits)
	assert.Equal(t, second, monitor.GetMetrics())

	assert.Zero(t, ConnectionPoolMetrics{InUse: 3}.Saturation())
}
