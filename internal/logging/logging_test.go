package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env     string
		verbose bool
		level   zapcore.Level
	}{
		{"development", false, zapcore.InfoLevel},
		{"development", true, zapcore.DebugLevel},
		{"production", false, zapcore.InfoLevel},
		{"production", true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.env, tt.verbose)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tt.level), "%s verbose=%v", tt.env, tt.verbose)
		assert.False(t, log.Core().Enabled(tt.level-1), "%s verbose=%v", tt.env, tt.verbose)
	}
}
