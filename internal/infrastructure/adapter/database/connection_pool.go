package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// saturationWarnRatio is the in-use share of MaxOpenConns that triggers a warning
const saturationWarnRatio = 0.8

// ConnectionPoolMetrics is one sample of the pool
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	// NewWaits is how many units had to queue for a connection since the previous sample
	NewWaits  int64
	SampledAt time.Time
}

// Saturation returns InUse as a share of MaxOpenConnections, or 0 when unbounded
func (m ConnectionPoolMetrics) Saturation() float64 {
	if m.MaxOpenConnections <= 0 {
		return 0
	}
	return float64(m.InUse) / float64(m.MaxOpenConnections)
}

// ConnectionPoolMonitor samples the pool on a ticker and warns when units of work queue for connections
type ConnectionPoolMonitor struct {
	db       *Manager
	logger   coreport.Logger
	last     ConnectionPoolMetrics
	mutex    sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a monitor over the manager's pool
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start takes a first sample synchronously, then samples every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.sample(); err != nil {
					m.logger.Error("Failed to sample connection pool", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop ends sampling. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// GetMetrics returns the latest sample, zero before the first one
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) sample() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	current := m.record(sqlDB.Stats())

	if current.Saturation() > saturationWarnRatio || current.NewWaits > 0 {
		m.logger.Warn("Database connection pool under pressure", map[string]any{
			"in_use":     current.InUse,
			"max_open":   current.MaxOpenConnections,
			"idle":       current.IdleConnections,
			"new_waits":  current.NewWaits,
			"saturation": current.Saturation(),
			"wait_time":  current.WaitDuration.String(),
		})
	}
	return nil
}

// record stores stats as the latest sample, computing waits since the previous one
func (m *ConnectionPoolMonitor) record(stats sql.DBStats) ConnectionPoolMetrics {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		SampledAt:          m.db.timeProvider.Now(),
	}
	if !m.last.SampledAt.IsZero() {
		current.NewWaits = stats.WaitCount - m.last.WaitCount
	}
	m.last = current
	return current
}
