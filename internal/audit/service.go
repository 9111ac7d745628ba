// Package audit records account activity: registrations, logins, logouts
// and catalog seed runs. Failures to write the trail are logged and never
// reach the caller, so a broken audit table cannot lock users out.
package audit

import (
	"time"
	"unicode/utf8"

	"github.com/mrlokans/learning/internal/database"
	"github.com/mrlokans/learning/internal/database/audit"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

const maxFieldLen = 500

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	log  *logger.Logger
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return database.Wrap("log audit event", s.repo.LogEvent(event))
}

// LogAuth records a register, login or logout attempt. userID is nil when
// the attempt did not resolve to a user.
func (s *Service) LogAuth(eventType entities.AuditEventType, userID *uint, ipAddr, userAgent string, err error) {
	event := &entities.AuditEvent{
		UserID:    userID,
		EventType: eventType,
		IPAddress: ipAddr,
		UserAgent: truncate(userAgent, maxFieldLen),
		Status:    entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxFieldLen)
	}
	s.record(event)
}

// LogSeed records a fixture load with its summary line.
func (s *Service) LogSeed(description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventSeed,
		Description: truncate(description, maxFieldLen),
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxFieldLen)
	}
	s.record(event)
}

// Recent returns up to limit events, newest first, optionally of one type.
func (s *Service) Recent(eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error) {
	events, err := s.repo.GetEvents(eventType, limit)
	return events, database.Wrap("list audit events", err)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	n, err := s.repo.DeleteOldEvents(time.Now().Add(-retention))
	return n, database.Wrap("prune audit events", err)
}

func (s *Service) record(event *entities.AuditEvent) {
	if err := s.Log(event); err != nil {
		s.log.Warn("failed to write audit event", "event_type", string(event.EventType), "error", err)
	}
}

// truncate shortens s to at most maxLen bytes, ending in "...". The cut
// backs up to a rune boundary so the result stays valid UTF-8.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
