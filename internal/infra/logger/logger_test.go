package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		wantErr bool
		enabled zapcore.Level
	}{
		{name: "production info", level: "info", env: "production", enabled: zapcore.InfoLevel},
		{name: "local debug", level: "debug", env: "local", enabled: zapcore.DebugLevel},
		{name: "warn", level: "warn", env: "staging", enabled: zapcore.WarnLevel},
		{name: "invalid level", level: "loud", env: "local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.enabled-1))
		})
	}
}
