package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snapsync/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func resolveError() error {
	err := zerr.Wrap(zerr.New("asset not found"), "failed to resolve checksum")
	return zerr.With(err, "checksum", "abc")
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *logger.Logger)
		goldenName string
	}{
		{
			name:       "info with args",
			log:        func(l *logger.Logger) { l.Info("synchronized", "fetched", 3, "batches", 1) },
			goldenName: "logger_info_args",
		},
		{
			name:       "warn with args",
			log:        func(l *logger.Logger) { l.Warn("remote slow", "address", "127.0.0.1:7420") },
			goldenName: "logger_warn_args",
		},
		{
			name: "debug enabled",
			log: func(l *logger.Logger) {
				l.SetDebug(true)
				l.Debug("fetch round", "round", "projects", "checksums", 2)
			},
			goldenName: "logger_debug_enabled",
		},
		{
			name:       "error chain",
			log:        func(l *logger.Logger) { l.Error(resolveError()) },
			goldenName: "logger_error_chain",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("connection refused")) },
			goldenName: "logger_error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newLogger(t)
			tt.log(l)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugDisabledByDefault(t *testing.T) {
	l, buf := newLogger(t)

	l.Debug("hidden", "k", "v")

	assert.Empty(t, buf.String())
}

func TestLogger_SetDebugOff(t *testing.T) {
	l, buf := newLogger(t)

	l.SetDebug(true)
	l.SetDebug(false)
	l.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Info("synchronized", "fetched", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "synchronized", record["msg"])
	assert.InDelta(t, 3, record["fetched"], 0)
}

func TestLogger_JSONError(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Error(resolveError())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "failed to resolve checksum: asset not found", record["error"])
	assert.Equal(t, map[string]any{"checksum": "abc"}, record["metadata"])
}

func TestLogger_JSONKeepsOutputAndLevel(t *testing.T) {
	l, buf := newLogger(t)
	l.SetDebug(true)
	l.SetJSON(true)

	l.Debug("round")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
}

func TestLogger_SwitchBackToPretty(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)
	l.SetJSON(false)

	l.Info("plain")

	assert.Equal(t, "plain\n", buf.String())
}
