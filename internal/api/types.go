// Package api is the typed client for the PAM backend REST API. The
// console holds no authoritative data: every type here is an ephemeral
// view of a backend response.
package api

import "encoding/json"

// User is a console operator or managed account.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	Roles    []Role `json:"roles,omitempty"`
	// Permissions is the flat permission-code list attached at the
	// JWT/profile level, distinct from the role tree below.
	Permissions []string `json:"permissions,omitempty"`
}

// Role groups policies and direct permissions.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Policies    []Policy     `json:"policies,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Policy is an access policy attached to roles.
type Policy struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type,omitempty"`
	Status       string       `json:"status,omitempty"`
	TimeStart    string       `json:"time_start,omitempty"`
	TimeEnd      string       `json:"time_end,omitempty"`
	IPRange      string       `json:"ip_range,omitempty"`
	SessionLimit int          `json:"session_limit,omitempty"`
	RequireMFA   bool         `json:"require_mfa,omitempty"`
	Roles        []Role       `json:"roles,omitempty"`
	Permissions  []Permission `json:"permissions,omitempty"`
}

const (
	PolicyStatusActive   = "active"
	PolicyStatusDisabled = "disabled"
)

// Permission is a single grantable capability, e.g. "manage_users".
type Permission struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// Session is a privileged session record.
type Session struct {
	ID          string  `json:"id"`
	User        string  `json:"user"`
	Target      string  `json:"target"`
	OS          string  `json:"os,omitempty"`
	Protocol    string  `json:"protocol,omitempty"`
	IP          string  `json:"ip,omitempty"`
	Status      string  `json:"status"`
	Risk        string  `json:"risk,omitempty"`
	RiskScore   float64 `json:"risk_score,omitempty"`
	LastCommand string  `json:"last_command,omitempty"`
	Duration    string  `json:"duration,omitempty"`
}

const (
	SessionStatusActive = "active"
	SessionStatusClosed = "closed"
	SessionStatusFailed = "failed"
)

// AuditLog is one backend audit record. Details is a free-form blob
// whose shape depends on the action code.
type AuditLog struct {
	ID        int64           `json:"id"`
	Timestamp string          `json:"timestamp"`
	User      string          `json:"user,omitempty"`
	UserID    int64           `json:"user_id,omitempty"`
	Action    string          `json:"action"`
	Category  string          `json:"category,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// VaultRequest is an approval-gated request to reveal a stored secret.
type VaultRequest struct {
	ID         int64  `json:"id"`
	SecretID   int64  `json:"secret_id"`
	Requester  string `json:"requester"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Approver   string `json:"approver,omitempty"`
	ValidFrom  string `json:"valid_from,omitempty"`
	ValidUntil string `json:"valid_until,omitempty"`
}

const (
	VaultRequestPending   = "PENDING"
	VaultRequestApproved  = "APPROVED"
	VaultRequestDenied    = "DENIED"
	VaultRequestCancelled = "CANCELLED"
)

// RevealedSecret is the one-shot payload of an approved reveal.
type RevealedSecret struct {
	SecretID int64  `json:"secret_id"`
	Name     string `json:"name,omitempty"`
	Value    string `json:"value"`
}

// Incident is a SOC investigation record with backend-computed UEBA
// signals and a correlated event timeline.
type Incident struct {
	ID            int64           `json:"id"`
	Status        string          `json:"status"`
	Severity      string          `json:"severity,omitempty"`
	RiskScore     float64         `json:"risk_score,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Signals       []UEBASignal    `json:"signals,omitempty"`
	Timeline      []TimelineEvent `json:"timeline,omitempty"`
}

const (
	IncidentOpen          = "OPEN"
	IncidentInvestigating = "INVESTIGATING"
	IncidentResolved      = "RESOLVED"
	IncidentClosed        = "CLOSED"
)

// UEBASignal is a read-only anomaly signal surfaced in the incident view.
type UEBASignal struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Severity string  `json:"severity,omitempty"`
}

// TimelineEvent is one entry of an incident timeline. Time carries the
// backend's fixed "2006-01-02 15:04:05" format.
type TimelineEvent struct {
	Time    string `json:"time"`
	Action  string `json:"action"`
	User    string `json:"user,omitempty"`
	Details string `json:"details,omitempty"`
}

// Notification is a backend-pushed audit event for the operator feed.
type Notification struct {
	ID        int64           `json:"id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	Read      bool            `json:"read"`
}

// Settings is the backend configuration document, patched per section.
type Settings struct {
	General      map[string]any `json:"general,omitempty"`
	Security     map[string]any `json:"security,omitempty"`
	Integrations map[string]any `json:"integrations,omitempty"`
}
