package audit

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/learning/internal/database"
	auditRepo "github.com/mrlokans/learning/internal/database/audit"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "audit.db"), gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(auditRepo.NewRepository(db.DB), logger.NewNop()), db.DB
}

func TestService_Log(t *testing.T) {
	svc, _ := setupTestService(t)

	event := &entities.AuditEvent{
		EventType:   entities.AuditEventSeed,
		Description: "manual entry",
		Status:      entities.AuditStatusSuccess,
	}
	require.NoError(t, svc.Log(event))
	assert.NotZero(t, event.ID)
}

func TestService_Log_WrapsStorageError(t *testing.T) {
	svc, _ := setupTestService(t)

	err := svc.Log(&entities.AuditEvent{EventType: "bogus", Status: entities.AuditStatusSuccess})
	var se *database.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "log audit event", se.Op)
}

func TestService_LogAuth(t *testing.T) {
	svc, db := setupTestService(t)

	require.NoError(t, db.Exec(
		`INSERT INTO users (first_name, last_name, email, password, role) VALUES ('A', 'B', 'a@b.c', 'pw', 'student')`,
	).Error)
	userID := uint(1)

	svc.LogAuth(entities.AuditEventLogin, &userID, "10.0.0.1", "curl/8.0", nil)
	svc.LogAuth(entities.AuditEventLogin, nil, "10.0.0.2", strings.Repeat("x", 600), errors.New("invalid email or password"))

	events, err := svc.Recent(entities.AuditEventLogin, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	byStatus := map[entities.AuditStatus]entities.AuditEvent{}
	for _, e := range events {
		byStatus[e.Status] = e
	}

	ok := byStatus[entities.AuditStatusSuccess]
	require.NotNil(t, ok.UserID)
	assert.Equal(t, userID, *ok.UserID)
	assert.Equal(t, "10.0.0.1", ok.IPAddress)

	failed := byStatus[entities.AuditStatusFailed]
	assert.Nil(t, failed.UserID)
	assert.Equal(t, "invalid email or password", failed.ErrorMsg)
	assert.Len(t, failed.UserAgent, maxFieldLen)
}

func TestService_LogSeed(t *testing.T) {
	svc, _ := setupTestService(t)

	svc.LogSeed("courses: 3 created", nil)
	svc.LogSeed("", errors.New("invalid fixture"))

	events, err := svc.Recent(entities.AuditEventSeed, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestService_RecordFailureIsSwallowed(t *testing.T) {
	svc, db := setupTestService(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.NotPanics(t, func() {
		svc.LogAuth(entities.AuditEventLogout, nil, "", "", nil)
	})
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	require.NoError(t, svc.Log(&entities.AuditEvent{
		EventType: entities.AuditEventLogin,
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now().Add(-72 * time.Hour),
	}))
	svc.LogAuth(entities.AuditEventLogin, nil, "", "", nil)

	deleted, err := svc.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmno", 10))

	// Cyrillic letters are two bytes each; byte 7 falls inside "г"
	got := truncate("абвгдежз", 10)
	assert.Equal(t, "абв...", got)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 10)
}

func TestService_LogAuth_TruncatesCyrillic(t *testing.T) {
	svc, _ := setupTestService(t)

	svc.LogAuth(entities.AuditEventLogin, nil, "", strings.Repeat("Браузер ", 100), errors.New(strings.Repeat("ошибка ", 100)))

	events, err := svc.Recent(entities.AuditEventLogin, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, utf8.ValidString(events[0].UserAgent))
	assert.True(t, utf8.ValidString(events[0].ErrorMsg))
	assert.LessOrEqual(t, len(events[0].UserAgent), maxFieldLen)
	assert.True(t, strings.HasSuffix(events[0].ErrorMsg, "..."))
}
