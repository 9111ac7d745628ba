package entities

import "time"

type AuditEventType string

const (
	AuditEventRegister AuditEventType = "register"
	AuditEventLogin    AuditEventType = "login"
	AuditEventLogout   AuditEventType = "logout"
	AuditEventSeed     AuditEventType = "seed"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent is one row of the account activity trail. UserID is nil when
// the actor is unknown, e.g. a failed login or a seed run.
type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      *uint          `json:"user_id,omitempty"`
	EventType   AuditEventType `json:"event_type"`
	Description string         `json:"description"`
	IPAddress   string         `json:"ip_address,omitempty"`
	UserAgent   string         `json:"user_agent,omitempty"`
	Status      AuditStatus    `json:"status"`
	ErrorMsg    string         `json:"error_msg,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
