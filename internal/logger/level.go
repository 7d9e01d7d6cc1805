// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import "strings"

// Level is one of the seven ordered logging verbosity tiers. Lower values are
// more severe; a record is emitted when its level is at or above the
// configured minimum severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelHTTP
	LevelVerbose
	LevelDebug
	LevelSilly
)

var levelNames = map[Level]string{
	LevelError:   "error",
	LevelWarn:    "warn",
	LevelInfo:    "info",
	LevelHTTP:    "http",
	LevelVerbose: "verbose",
	LevelDebug:   "debug",
	LevelSilly:   "silly",
}

// String returns the canonical lower-case name of the level, or an empty
// string for values outside the enumeration.
func (l Level) String() string {
	return levelNames[l]
}

// Tag returns the upper-case name used in the rendered log line.
func (l Level) Tag() string {
	return strings.ToUpper(l.String())
}

// LevelFromString parses a level name case-insensitively. Unknown or empty
// input falls back to the least severe level so that a misconfigured
// environment never silences the process or blocks startup.
func LevelFromString(level string) Level {
	switch strings.ToLower(level) {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "http":
		return LevelHTTP
	case "verbose":
		return LevelVerbose
	case "debug":
		return LevelDebug
	case "silly":
		return LevelSilly
	default:
		return LevelSilly
	}
}

// AllLevels returns every level in the enumeration, most severe first.
func AllLevels() []Level {
	return []Level{
		LevelError,
		LevelWarn,
		LevelInfo,
		LevelHTTP,
		LevelVerbose,
		LevelDebug,
		LevelSilly,
	}
}
