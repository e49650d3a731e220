package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// ErrSyncInProgress is returned when a run for the connection is already
// underway.
var ErrSyncInProgress = errors.New("sync already in progress for this connection")

// Fetcher is the slice of the Canvas client a sync run needs.
type Fetcher interface {
	FetchAll(ctx context.Context) (*canvas.SyncPayload, error)
}

// ClientFactory builds a Fetcher for a connection's URL and token.
// Tests swap this out to avoid real HTTP.
type ClientFactory func(canvasURL, token string) Fetcher

// Result reports what one sync run did.
type Result struct {
	Log             *model.SyncLog `json:"sync_log"`
	ItemsSynced     int            `json:"items_synced"`
	PartialFailures int            `json:"partial_failures,omitempty"`
}

// Syncer runs Canvas syncs against the cache. Safe for concurrent use.
type Syncer struct {
	connections store.ConnectionsStore
	cache       store.CacheStore
	syncLogs    store.SyncLogsStore
	newClient   ClientFactory

	mu       sync.Mutex
	inFlight map[string]context.CancelFunc
}

// NewSyncer builds a Syncer. A nil factory uses the real Canvas client
// with the given options.
func NewSyncer(connections store.ConnectionsStore, cache store.CacheStore, syncLogs store.SyncLogsStore, factory ClientFactory) *Syncer {
	if factory == nil {
		factory = func(canvasURL, token string) Fetcher {
			return canvas.NewClient(canvasURL, token, canvas.Options{})
		}
	}
	return &Syncer{
		connections: connections,
		cache:       cache,
		syncLogs:    syncLogs,
		newClient:   factory,
		inFlight:    make(map[string]context.CancelFunc),
	}
}

func flightKey(userID, connectionID uuid.UUID) string {
	return userID.String() + ":" + connectionID.String()
}

// InProgress reports whether a run for the connection is underway.
func (s *Syncer) InProgress(userID, connectionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[flightKey(userID, connectionID)]
	return ok
}

// Cancel aborts an in-flight run for the connection. Returns false when
// nothing was running.
func (s *Syncer) Cancel(userID, connectionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, ok := s.inFlight[flightKey(userID, connectionID)]
	if ok {
		cancel()
	}
	return ok
}

func (s *Syncer) acquire(ctx context.Context, userID, connectionID uuid.UUID) (context.Context, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := flightKey(userID, connectionID)
	if _, ok := s.inFlight[key]; ok {
		return nil, nil, ErrSyncInProgress
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.inFlight[key] = cancel

	release := func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
		cancel()
	}
	return runCtx, release, nil
}

// Run performs one full sync of the connection's Canvas data into the
// cache. syncType is recorded on the sync log, "manual" or "scheduled".
func (s *Syncer) Run(ctx context.Context, userID, connectionID uuid.UUID, syncType string) (*Result, error) {
	connection, err := s.connections.FetchConnection(userID, connectionID)
	if err != nil {
		return nil, err
	}

	ctx, release, err := s.acquire(ctx, userID, connectionID)
	if err != nil {
		return nil, err
	}
	defer release()

	syncLog, err := s.syncLogs.CreateSyncLog(userID, connectionID, syncType)
	if err != nil {
		return nil, err
	}

	payload, err := s.newClient(connection.CanvasURL, connection.Token).FetchAll(ctx)
	if err != nil {
		return nil, s.fail(syncLog.ID, connectionID, err)
	}

	data := BuildSyncData(payload)

	written, err := s.cache.ApplySyncData(userID, connectionID, data)
	if err != nil {
		return nil, s.fail(syncLog.ID, connectionID, err)
	}

	if err := s.syncLogs.CompleteSyncLog(syncLog.ID, written); err != nil {
		return nil, err
	}

	done, err := s.syncLogs.FetchSyncLog(userID, syncLog.ID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Log:             done,
		ItemsSynced:     written,
		PartialFailures: payload.PartialFailures,
	}, nil
}

// Conflicts re-fetches the connection's Canvas data and reports cached
// assignments whose upstream fields diverged. Nothing is written, the
// next sync run overwrites the cache either way.
func (s *Syncer) Conflicts(ctx context.Context, userID, connectionID uuid.UUID) ([]Conflict, error) {
	connection, err := s.connections.FetchConnection(userID, connectionID)
	if err != nil {
		return nil, err
	}

	payload, err := s.newClient(connection.CanvasURL, connection.Token).FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return DetectConflicts(s.cache, connectionID, payload)
}

// fail closes the sync log and downgrades the connection. A rejected
// token marks the connection expired so the UI can prompt for a new one.
func (s *Syncer) fail(logID, connectionID uuid.UUID, cause error) error {
	status := model.ConnectionStatusError
	if errors.Is(cause, canvas.ErrInvalidToken) {
		status = model.ConnectionStatusExpired
	}

	if err := s.syncLogs.FailSyncLog(logID, cause.Error()); err != nil {
		return fmt.Errorf("recording sync failure: %v (original error: %w)", err, cause)
	}
	if err := s.connections.SetConnectionStatus(connectionID, status); err != nil {
		return fmt.Errorf("updating connection status: %v (original error: %w)", err, cause)
	}
	return cause
}
