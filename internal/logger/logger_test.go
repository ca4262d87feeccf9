package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
)

func TestNew_InstallsGlobal(t *testing.T) {
	log, err := New(&config.Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)

	assert.Same(t, log, zap.L())
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	log, err := New(&config.Config{LogLevel: "loud", LogFormat: "console"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zap.DebugLevel))
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
}

func TestNew_WithRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "petcare.log")

	log, err := New(&config.Config{LogLevel: "info", LogFile: file})
	require.NoError(t, err)

	log.Info("hello")
	assert.FileExists(t, file)
}
