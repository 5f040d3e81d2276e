package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWritesFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "epglk.log")

	logger := InitLogger(&LogConfig{
		Level:    zapcore.WarnLevel,
		FileName: fileName,
	})
	defer zap.ReplaceGlobals(zap.NewNop())

	assert.Same(t, logger, zap.L())

	zap.L().Info("ignored")
	zap.L().Warn("Filtered EPG saved.", zap.String("output", "diaLK.xml"))
	_ = logger.Sync()

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "ignored")
	assert.Contains(t, string(content), `"level":"WARN"`)
	assert.Contains(t, string(content), `"output":"diaLK.xml"`)
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, zapcore.InfoLevel, cfg.Level)
	assert.True(t, cfg.IsStdout)
	assert.Empty(t, cfg.FileName)
}
