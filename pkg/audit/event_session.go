package audit

import "fmt"

// SessionEvent represents a session authentication audit event
type SessionEvent struct {
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e SessionEvent) MessageID() string {
	return "session"
}

func (e SessionEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s presented a valid session token", e.UserID)
	}
	msg := fmt.Sprintf("%s failed session authentication", e.UserID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SessionEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SessionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SessionEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "authenticate",
			"result":    result,
		},
	}
}
