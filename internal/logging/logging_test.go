package logging_test

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

	"github.com/katalvlaran/floodgrid/internal/config"
	"github.com/katalvlaran/floodgrid/internal/logging"
)

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, err := logging.New(config.LoggingConfig{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("hover", zap.Int("component", 4))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "hover", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 4, entry["component"])
}

func TestNew_LevelFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, err := logging.New(config.LoggingConfig{Level: "chatty", Format: "console", Output: path})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
