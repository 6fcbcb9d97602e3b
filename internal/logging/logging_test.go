package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		level        string
		wantEncoding string
		wantLevel    zap.AtomicLevel
	}{
		{
			name:         "defaults",
			wantEncoding: "json",
			wantLevel:    zap.NewAtomicLevelAt(zap.WarnLevel),
		},
		{
			name:         "development",
			format:       "development",
			wantEncoding: "console",
			wantLevel:    zap.NewAtomicLevelAt(zap.DebugLevel),
		},
		{
			name:         "explicit level",
			level:        "error",
			wantEncoding: "json",
			wantLevel:    zap.NewAtomicLevelAt(zap.ErrorLevel),
		},
		{
			name:         "warning alias",
			level:        "WARNING",
			wantEncoding: "json",
			wantLevel:    zap.NewAtomicLevelAt(zap.WarnLevel),
		},
		{
			name:         "unparseable level is ignored",
			format:       "development",
			level:        "loud",
			wantEncoding: "console",
			wantLevel:    zap.NewAtomicLevelAt(zap.DebugLevel),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_FORMAT", tt.format)
			if tt.level != "" {
				t.Setenv("LOG_LEVEL", tt.level)
			} else {
				unsetenv(t, "LOG_LEVEL")
			}

			config := NewConfig()
			assert.Equal(t, tt.wantEncoding, config.Encoding)
			assert.Equal(t, tt.wantLevel.Level(), config.Level.Level())
			assert.Equal(t, []string{"stderr"}, config.OutputPaths)
		})
	}
}

func TestNew(t *testing.T) {
	unsetenv(t, "LOG_FORMAT")
	unsetenv(t, "LOG_LEVEL")

	logger, err := New("test")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
