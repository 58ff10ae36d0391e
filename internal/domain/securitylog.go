package domain

import "time"

// ActivityType classifies a security event.
type ActivityType string

const (
	ActivityLogin       ActivityType = "login"
	ActivityLoginFailed ActivityType = "login_failed"
	ActivityTransfer    ActivityType = "transfer"
	ActivitySignup      ActivityType = "signup"
	ActivityLogout      ActivityType = "logout"
	ActivitySuspicious  ActivityType = "suspicious"
)

// Severity is the severity level of a security event.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SecurityLog is an immutable security-event record appended as a side
// effect of auth and transfer operations. UserID may be empty when a failed
// login cannot be attributed to a known account.
type SecurityLog struct {
	ID           string
	UserID       string
	ActivityType ActivityType
	Timestamp    time.Time
	Description  string
	IPAddress    string
	Severity     Severity
}
