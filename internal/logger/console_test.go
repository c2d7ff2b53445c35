package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "warn")

	log.Debugf("debug %s", "one")
	log.Infof("info %s", "two")
	log.Warnf("warn %s", "three")
	log.Errorf("error %s", "four")

	out := buf.String()
	assert.NotContains(t, out, "debug one")
	assert.NotContains(t, out, "info two")
	assert.Contains(t, out, "[WARN] warn three")
	assert.Contains(t, out, "[ERROR] error four")
}

func TestConsoleLoggerDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "")

	log.Debugf("hidden")
	log.Infof("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown")
}

func TestConsoleLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "chatty")

	log.Tracef("hidden")
	log.Warnf("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleLoggerTimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Infof("message")

	line := strings.TrimSpace(buf.String())
	// "[HH:MM:SS] [INFO] message"
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] \[INFO\] message$`, line)
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	log := NewConsoleLogger(nil, "trace")

	// Must not panic.
	log.Infof("discarded")
	log.Errorf("discarded")
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, "debug", normalizeLogLevel("DEBUG"))
	assert.Equal(t, "warn", normalizeLogLevel("  warn  "))
	assert.Equal(t, "info", normalizeLogLevel(""))
	assert.Equal(t, "info", normalizeLogLevel("bogus"))
}
