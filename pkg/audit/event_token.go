package audit

import "fmt"

// TokenValidationEvent represents a Canvas API token validation attempt
type TokenValidationEvent struct {
	UserID       string
	ClientIP     string
	CanvasURL    string
	Valid        bool
	ErrorMessage string
}

func (e TokenValidationEvent) MessageID() string {
	return "token-validate"
}

func (e TokenValidationEvent) Message() string {
	if e.Valid {
		return fmt.Sprintf("%s validated an API token against %s", e.UserID, e.CanvasURL)
	}
	msg := fmt.Sprintf("%s presented an invalid API token for %s", e.UserID, e.CanvasURL)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e TokenValidationEvent) Severity() Severity {
	if e.Valid {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e TokenValidationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e TokenValidationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Valid {
		result = "failure"
	}
	return map[string]map[string]string{
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
			"operation": "validate-token",
			"result":    result,
		},
	}
}
