package lock

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperRemovesExpiredLocks(t *testing.T) {
	m, tdb, clock := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Acquire(ctx, entity.ResourceStudentTuition, "S1", 1, time.Minute))
	clock.Advance(2 * time.Minute)

	sweeper := NewSweeper(m, 10*time.Millisecond, logger.NewNoopLogger())
	sweeper.Start(ctx)
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		var rows int64
		err := tdb.DB().Model(&model.TransactionLock{}).Count(&rows).Error
		return err == nil && rows == 0
	}, time.Second, 20*time.Millisecond)
}

func TestSweeperStopIsIdempotent(t *testing.T) {
	m, _, _ := newTestManager(t)

	sweeper := NewSweeper(m, 0, logger.NewNoopLogger())
	assert.Equal(t, DefaultSweepInterval, sweeper.interval)

	// Stop before Start must not block
	sweeper.Stop()
	sweeper.Stop()
}
