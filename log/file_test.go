package log_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dreamerjackson/moonbag/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moonbag.log")

	var p, c = log.NewFilePlugin(path, zapcore.InfoLevel)
	var logger = log.NewLogger(p)
	logger.Debug("hidden")
	logger.Info("feed normalized", zap.String("feed", "stablecoins"), zap.Int("records", 3))
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "feed normalized", entry["msg"])
	assert.Equal(t, "stablecoins", entry["feed"])
	assert.EqualValues(t, 3, entry["records"])
	assert.Contains(t, entry, "caller")
	assert.Equal(t, log.App, entry["app"])
}

func TestRotatingFile(t *testing.T) {
	w := log.RotatingFile("/var/log/moonbag/feeds.log")
	assert.Equal(t, "/var/log/moonbag/feeds.log", w.Filename)
	assert.Equal(t, 50, w.MaxSize)
	assert.Equal(t, 5, w.MaxBackups)
	assert.Equal(t, 7, w.MaxAge)
	assert.True(t, w.Compress)
}

func TestNew(t *testing.T) {
	_, _, err := log.New("loud", "")
	assert.Error(t, err)

	logger, c, err := log.New("warn", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.NoError(t, c.Close())

	path := filepath.Join(t.TempDir(), "x.log")
	logger, c, err = log.New("DEBUG", path)
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, c.Close())
	assert.FileExists(t, path)
}
