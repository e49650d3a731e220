package audit

import "fmt"

// SyncEvent represents a Canvas sync run audit event.
// SyncType is "manual" or "scheduled".
type SyncEvent struct {
	UserID       string
	ClientIP     string
	ConnectionID string
	SyncType     string
	ItemsSynced  int
	Success      bool
	ErrorMessage string
}

func (e SyncEvent) MessageID() string {
	return "sync"
}

func (e SyncEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s synced connection %s (%d items, %s)", e.UserID, e.ConnectionID, e.ItemsSynced, e.SyncType)
	}
	msg := fmt.Sprintf("%s failed to sync connection %s", e.UserID, e.ConnectionID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SyncEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SyncEvent) Facility() int {
	return FacilityAuth
}

func (e SyncEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDCanvas: {
			"connection": e.ConnectionID,
		},
		SDIDAction: {
			"operation": "sync",
			"result":    result,
			"type":      e.SyncType,
		},
	}
	if e.ClientIP != "" {
		sd[SDIDClient] = map[string]string{"ip": e.ClientIP}
	}
	if e.Success {
		sd[SDIDAction]["items"] = fmt.Sprintf("%d", e.ItemsSynced)
	}
	return sd
}
