// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

const timestampLayout = "2006-01-02 15:04:05"

const setupMessage = "logger initialized"

// Logger describes the interface that must be implemented by all loggers.
// Every method emits a single record at the named severity, subject to the
// configured minimum severity and the global enable switch.
type Logger interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	HTTP(msg string)
	Verbose(msg string)
	Debug(msg string)
	Silly(msg string)
}

// record is the ephemeral tuple built per emitted call and written
// immediately. It is never retained.
type record struct {
	at       time.Time
	level    Level
	message  string
	location string
	located  bool
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

// instance is a Logger implementation writing colorized lines to a single
// stream. The configuration is immutable after construction; the mutex only
// serializes writes so concurrent callers never interleave partial lines.
type instance struct {
	mu         sync.Mutex
	out        io.Writer
	cfg        Config
	attributed map[Level]bool
	resolver   CallerResolver

	levelPaint map[Level]*color.Color
	pathPaint  *color.Color
}

// New creates a logger writing to w with the given configuration and
// announces successful setup with one informational record, filtered like any
// other record.
func New(w io.Writer, cfg Config) Logger {
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = StackResolver{}
	}

	attributed := make(map[Level]bool, len(cfg.Attributed))
	for _, level := range cfg.Attributed {
		attributed[level] = true
	}

	l := &instance{
		out:        w,
		cfg:        cfg,
		attributed: attributed,
		resolver:   resolver,
	}
	if cfg.Colors {
		l.levelPaint, l.pathPaint = newPainters()
	}

	l.emit(LevelInfo, setupMessage)
	return l
}

// newPainters builds per-instance color painters with colors forced on, so
// the configuration decides about colorization instead of TTY detection.
func newPainters() (map[Level]*color.Color, *color.Color) {
	painters := map[Level]*color.Color{
		LevelError:   color.New(color.FgRed),
		LevelWarn:    color.New(color.FgYellow),
		LevelInfo:    color.New(color.FgGreen),
		LevelHTTP:    color.New(color.FgCyan),
		LevelDebug:   color.New(color.FgBlue),
		LevelVerbose: color.New(color.FgHiBlack),
		LevelSilly:   color.New(color.FgHiBlack),
	}
	for _, painter := range painters {
		painter.EnableColor()
	}

	pathPaint := color.New(color.FgMagenta)
	pathPaint.EnableColor()
	return painters, pathPaint
}

func (l *instance) Error(msg string)   { l.emit(LevelError, msg) }
func (l *instance) Warn(msg string)    { l.emit(LevelWarn, msg) }
func (l *instance) Info(msg string)    { l.emit(LevelInfo, msg) }
func (l *instance) HTTP(msg string)    { l.emit(LevelHTTP, msg) }
func (l *instance) Verbose(msg string) { l.emit(LevelVerbose, msg) }
func (l *instance) Debug(msg string)   { l.emit(LevelDebug, msg) }
func (l *instance) Silly(msg string)   { l.emit(LevelSilly, msg) }

// emit runs the shared pipeline: enable gate, threshold gate, record
// construction, optional attribution, rendering, single write.
func (l *instance) emit(level Level, msg string) {
	if !l.cfg.Enabled {
		return
	}
	if level > l.cfg.Level {
		return
	}

	rec := record{at: time.Now(), level: level, message: msg}
	if l.attributed[level] {
		rec.located = true
		location, ok := l.resolver.Resolve()
		if !ok {
			location = UnknownFilePath
		}
		rec.location = location
	}

	line := l.render(rec)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

// render assembles the line structure and then, separately, applies the color
// annotation. Colors never change the semantic content of the line.
func (l *instance) render(rec record) string {
	timestamp := rec.at.Format(timestampLayout)
	levelTag := "[" + rec.level.Tag() + "]"
	pathTag := ""
	if rec.located {
		pathTag = "[" + rec.location + "]"
	}

	if l.cfg.Colors {
		paint := l.levelPaint[rec.level]
		timestamp = paint.Sprint(timestamp)
		levelTag = paint.Sprint(levelTag)
		if rec.located {
			pathTag = l.pathPaint.Sprint(pathTag)
		}
	}

	return timestamp + " " + levelTag + pathTag + ": " + rec.message
}
