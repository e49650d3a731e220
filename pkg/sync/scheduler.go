package sync

import (
	"context"
	"errors"
	"log"
	"time"
)

// SchedulerOptions tunes the background sync loop.
type SchedulerOptions struct {
	// Tick is how often the scheduler scans for stale connections.
	Tick time.Duration

	// Interval is how old a connection's last sync may be before it is
	// synced again.
	Interval time.Duration
}

// Scheduler periodically re-syncs connections whose cache has gone stale.
type Scheduler struct {
	syncer   *Syncer
	tick     time.Duration
	interval time.Duration
}

// NewScheduler builds a scheduler around an existing Syncer.
func NewScheduler(syncer *Syncer, opts SchedulerOptions) *Scheduler {
	if opts.Tick == 0 {
		opts.Tick = 5 * time.Minute
	}
	if opts.Interval == 0 {
		opts.Interval = 2 * time.Hour
	}
	return &Scheduler{
		syncer:   syncer,
		tick:     opts.Tick,
		interval: opts.Interval,
	}
}

// Start runs the scan loop until ctx is cancelled. It performs one scan
// immediately on entry.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

// scan syncs every stale connection sequentially. Per-connection
// concurrency inside a run is already bounded by the Canvas client, and
// serial runs keep the load on the upstream instances flat.
func (s *Scheduler) scan(ctx context.Context) {
	cutoff := time.Now().Add(-s.interval)

	stale, err := s.syncer.connections.ListStaleConnections(cutoff)
	if err != nil {
		log.Printf("sync scheduler: listing stale connections: %v", err)
		return
	}

	for _, connection := range stale {
		if ctx.Err() != nil {
			return
		}

		_, err := s.syncer.Run(ctx, connection.UserID, connection.ID, "scheduled")
		if errors.Is(err, ErrSyncInProgress) {
			continue
		}
		if err != nil {
			log.Printf("sync scheduler: connection %s: %v", connection.ID, err)
		}
	}
}
