package lock

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// DefaultSweepInterval is used when no interval is configured
const DefaultSweepInterval = time.Minute

// Sweeper periodically removes expired lock rows
type Sweeper struct {
	manager  *Manager
	interval time.Duration
	logger   coreport.Logger
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
	started  bool
	mutex    sync.Mutex
}

// NewSweeper creates a sweeper that runs every interval
func NewSweeper(manager *Manager, interval time.Duration, logger coreport.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		manager:  manager,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start launches the sweep loop. Calling it more than once has no effect.
func (s *Sweeper) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.logger.Info("Starting lock sweeper", map[string]any{"interval": s.interval.String()})

	ticker := time.NewTicker(s.interval)
	go func() {
		defer close(s.doneChan)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweepOnce(ctx)
			case <-s.stopChan:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight sweep to finish
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})

	s.mutex.Lock()
	started := s.started
	s.mutex.Unlock()

	if started {
		<-s.doneChan
		s.logger.Info("Lock sweeper stopped", nil)
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if _, err := s.manager.Sweep(sweepCtx); err != nil {
		s.logger.Error("Lock sweep failed", map[string]any{"error": err.Error()})
	}
}
