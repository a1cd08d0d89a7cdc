package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kingrea/openstudio/internal/config"
)

func TestNewWritesJSONLines(t *testing.T) {
	projectDir := t.TempDir()
	logger, err := New(projectDir, "warn")
	require.NoError(t, err)

	logger.Named("openstudio.model.FanConstantVolume").Warn("required availability schedule not set, using always on")
	logger.Info("dropped below level")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(projectDir, config.ProjectDirName, "logs", FileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "openstudio.model.FanConstantVolume", entry["logger"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewAppends(t *testing.T) {
	projectDir := t.TempDir()
	for i := 0; i < 2; i++ {
		logger, err := New(projectDir, "info")
		require.NoError(t, err)
		logger.Info("opened", zap.Int("run", i))
		require.NoError(t, logger.Close())
	}
	data, err := os.ReadFile(filepath.Join(projectDir, config.ProjectDirName, "logs", FileName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\"opened\""))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestCloseNil(t *testing.T) {
	var l *Logger
	assert.NoError(t, l.Close())
	Nop().Info("discarded")
}
