package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	tests := []struct {
		name string
		in   []interface{}
		want []interface{}
	}{
		{"empty", nil, nil},
		{"plain values pass through", []interface{}{"course", "Algebra"}, []interface{}{"course", "Algebra"}},
		{"password redacted", []interface{}{"password", "hunter2"}, []interface{}{"password", "[REDACTED]"}},
		{"email redacted case-insensitively", []interface{}{"User_Email", "a@b.c"}, []interface{}{"User_Email", "[REDACTED]"}},
		{"dangling key kept", []interface{}{"op", "register", "orphan"}, []interface{}{"op", "register", "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeKVs(tt.in))
		})
	}
}

func TestLogger_RedactsBeforeEncoding(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &Logger{SugaredLogger: zap.New(core).Sugar()}

	log.With("email", "student@example.com").Info("registered", "user_id", 7)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "[REDACTED]", fields["email"])
		assert.EqualValues(t, 7, fields["user_id"])
	}
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		log, err := New(mode)
		assert.NoError(t, err)
		assert.NotNil(t, log)
	}
}
