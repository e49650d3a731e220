// Package sync orchestrates Canvas sync runs.
//
// A Syncer drives one run end to end: it opens a sync log, fetches the
// connection's courses, assignments and grades from Canvas, converts
// them into cache upserts, applies them in a single transaction and
// closes the log as completed or failed. At most one run per connection
// is in flight at a time; a second trigger gets ErrSyncInProgress.
//
// A Scheduler wakes on a fixed tick and kicks off runs for every
// connection whose last sync is older than the configured interval.
//
// # Usage
//
//	syncer := sync.NewSyncer(connections, cache, syncLogs, nil)
//	result, err := syncer.Run(ctx, userID, connectionID, "manual")
//	if errors.Is(err, sync.ErrSyncInProgress) {
//	    // a run for this connection is already underway
//	}
//
// # Conflicts
//
// DetectConflicts compares a fetched payload against the cached rows and
// reports which fields changed upstream since the last sync, so the API
// can surface them before they are overwritten.
package sync
