package audit

import "fmt"

// ConnectionEvent represents a Canvas connection lifecycle audit event.
// Operation is "connect" or "disconnect". Tokens never appear in events.
type ConnectionEvent struct {
	UserID       string
	ClientIP     string
	ConnectionID string
	CanvasURL    string
	Operation    string
	Success      bool
	ErrorMessage string
}

func (e ConnectionEvent) MessageID() string {
	return "connection"
}

func (e ConnectionEvent) Message() string {
	if e.Success {
		if e.Operation == "disconnect" {
			return fmt.Sprintf("%s disconnected Canvas instance %s", e.UserID, e.CanvasURL)
		}
		return fmt.Sprintf("%s connected Canvas instance %s", e.UserID, e.CanvasURL)
	}
	msg := fmt.Sprintf("%s failed to %s Canvas instance %s", e.UserID, e.Operation, e.CanvasURL)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ConnectionEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ConnectionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ConnectionEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDCanvas: {
			"url": e.CanvasURL,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.ConnectionID != "" {
		sd[SDIDCanvas]["connection"] = e.ConnectionID
	}
	return sd
}
