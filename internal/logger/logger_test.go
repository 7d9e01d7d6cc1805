// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripColors(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

// newTestLogger builds a plain logger on a fresh buffer and discards the
// setup announcement so tests only see their own records.
func newTestLogger(cfg Config) (Logger, *bytes.Buffer) {
	buffer := new(bytes.Buffer)
	cfg.Colors = false
	log := New(buffer, cfg)
	buffer.Reset()
	return log, buffer
}

func emitAll(log Logger, msg string) {
	log.Error(msg)
	log.Warn(msg)
	log.Info(msg)
	log.HTTP(msg)
	log.Verbose(msg)
	log.Debug(msg)
	log.Silly(msg)
}

func countLines(buffer *bytes.Buffer) int {
	return strings.Count(buffer.String(), "\n")
}

func TestThresholdFiltering(t *testing.T) {
	t.Parallel()

	for i, threshold := range AllLevels() {
		i, threshold := i, threshold
		t.Run("threshold "+threshold.String(), func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Level = threshold
			log, buffer := newTestLogger(cfg)

			emitAll(log, "x")
			assert.Equal(t, i+1, countLines(buffer))
		})
	}
}

func TestErrorThresholdSuppressesEverythingElse(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Level = LevelError
	log, buffer := newTestLogger(cfg)

	log.Warn("x")
	assert.Zero(t, countLines(buffer))

	log.Error("x")
	require.Equal(t, 1, countLines(buffer))
	assert.Contains(t, buffer.String(), "ERROR")
	assert.Contains(t, buffer.String(), "x")
}

func TestKillSwitch(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Enabled = false
	buffer := new(bytes.Buffer)
	log := New(buffer, cfg)

	// even the setup announcement is suppressed
	assert.Zero(t, buffer.Len())

	emitAll(log, "x")
	assert.Zero(t, buffer.Len())
}

func TestDefaultConfigEmitsEveryLevel(t *testing.T) {
	t.Parallel()

	log, buffer := newTestLogger(DefaultConfig())
	emitAll(log, "x")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	for i, level := range AllLevels() {
		assert.Contains(t, lines[i], "["+level.Tag()+"]")
	}
}

func TestLineFormat(t *testing.T) {
	t.Parallel()

	linePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\]\[[^\]]+\]: hello$`)

	t.Run("plain line matches the documented shape", func(t *testing.T) {
		t.Parallel()

		log, buffer := newTestLogger(DefaultConfig())
		log.Info("hello")

		line := strings.TrimRight(buffer.String(), "\n")
		assert.Regexp(t, linePattern, line)
	})

	t.Run("colors are cosmetic only", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		log := New(buffer, DefaultConfig())
		buffer.Reset()
		log.Info("hello")

		line := strings.TrimRight(buffer.String(), "\n")
		assert.Contains(t, line, "\x1b[")
		assert.Regexp(t, linePattern, stripColors(line))
	})
}

func TestCallerAttribution(t *testing.T) {
	t.Parallel()

	t.Run("reports the call site relative to the working directory", func(t *testing.T) {
		t.Parallel()

		_, thisFile, _, ok := runtime.Caller(0)
		require.True(t, ok)
		wd, err := os.Getwd()
		require.NoError(t, err)
		expected, err := filepath.Rel(wd, thisFile)
		require.NoError(t, err)

		log, buffer := newTestLogger(DefaultConfig())
		log.Info("attributed")
		assert.Contains(t, buffer.String(), "["+expected+"]")
	})

	t.Run("reports the fallback literal when no frame qualifies", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Resolver = NoopResolver{}
		log, buffer := newTestLogger(cfg)
		log.Info("unattributed")
		assert.Contains(t, buffer.String(), "["+UnknownFilePath+"]")
	})

	t.Run("levels outside the allow-list carry no path bracket", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Attributed = []Level{LevelError}
		log, buffer := newTestLogger(cfg)
		log.Info("plain")

		line := strings.TrimRight(buffer.String(), "\n")
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\]: plain$`, line)
	})
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	log, buffer := newTestLogger(DefaultConfig())
	log.Info("same message")
	log.Info("same message")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// identical except for the leading timestamp
	assert.Equal(t, lines[0][len(timestampLayout):], lines[1][len(timestampLayout):])
}

func TestSetupAnnouncement(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	cfg := DefaultConfig()
	cfg.Colors = false
	New(buffer, cfg)

	require.Equal(t, 1, countLines(buffer))
	assert.Contains(t, buffer.String(), "[INFO]")
	assert.Contains(t, buffer.String(), setupMessage)
}

func TestConcurrentCallsWriteWholeLines(t *testing.T) {
	t.Parallel()

	log, buffer := newTestLogger(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("concurrent")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	for _, line := range lines {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\]\[[^\]]+\]: concurrent$`, line)
	}
}
