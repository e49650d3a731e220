package model

//go:generate go run github.com/dmarkham/enumer -type AssignmentStatus -trimprefix AssignmentStatus -transform snake -json -sql -output assignment_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type SyncStatus -trimprefix SyncStatus -transform snake -json -sql -output sync_status.gen.go
//go:generate go run github.com/dmarkham/enumer -type ConnectionStatus -trimprefix ConnectionStatus -transform snake -json -sql -output connection_status.gen.go

// AssignmentStatus tracks where an assignment sits in its lifecycle.
// Derivation order matters: a graded assignment is completed even if it
// was also overdue.
type AssignmentStatus int

const (
	AssignmentStatusUpcoming AssignmentStatus = iota
	AssignmentStatusInProgress
	AssignmentStatusCompleted
	AssignmentStatusOverdue
	AssignmentStatusSubmitted
)

// SyncStatus tracks a sync run in the sync_logs table.
type SyncStatus int

const (
	SyncStatusPending SyncStatus = iota
	SyncStatusSyncing
	SyncStatusCompleted
	SyncStatusFailed
)

// ConnectionStatus tracks the health of a Canvas connection.
type ConnectionStatus int

const (
	ConnectionStatusConnected ConnectionStatus = iota
	ConnectionStatusDisconnected
	ConnectionStatusError
	ConnectionStatusExpired
)
