package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json logger writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		log, err := New(&Config{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)

		log.Info("xin chào")
		require.NoError(t, log.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"xin chào"`)
		assert.Contains(t, string(data), `"level":"info"`)
		assert.Contains(t, string(data), `"ts":`)
	})

	t.Run("level filters lower entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		log, err := New(&Config{Level: "warn", Format: "json", Output: path})
		require.NoError(t, err)

		log.Info("quiet")
		log.Warn("loud")
		require.NoError(t, log.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "quiet")
		assert.Contains(t, string(data), "loud")
	})

	t.Run("console format builds", func(t *testing.T) {
		log, err := New(&Config{Level: "info", Format: "console", Output: "stdout"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("empty output defaults to stdout", func(t *testing.T) {
		log, err := New(&Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("unopenable log file fails construction", func(t *testing.T) {
		_, err := New(&Config{
			Level:  "info",
			Format: "json",
			Output: filepath.Join(t.TempDir(), "no-such-dir", "app.log"),
		})
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		" WARN ": zapcore.WarnLevel,
		"":       zapcore.InfoLevel,
		"bogus":  zapcore.InfoLevel,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}
