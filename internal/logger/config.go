// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"github.com/caarlos0/env/v11"
)

// disablingLiteral is the only ENABLE_DEBUG value that turns the logger off.
const disablingLiteral = "false"

// Config is the immutable logger configuration. It is resolved once at
// process start and never changes afterwards, so concurrent reads need no
// synchronization.
type Config struct {
	// Level is the minimum severity threshold; records less severe than it
	// are suppressed.
	Level Level
	// Enabled is the global kill switch. When false no record is emitted
	// regardless of level.
	Enabled bool
	// Colors toggles ANSI color annotation of the rendered line. The line
	// structure is identical either way.
	Colors bool
	// Attributed lists the levels whose records are annotated with the
	// caller source location. It currently covers every level but is kept
	// as an allow-list so a subset can be configured without code changes.
	Attributed []Level
	// Resolver locates the originating call site. When nil the stack-walking
	// resolver is used.
	Resolver CallerResolver
}

type envVars struct {
	LogLevel    string `env:"LOG_LEVEL"`
	EnableDebug string `env:"ENABLE_DEBUG"`
}

// DefaultConfig returns the most permissive configuration: everything is
// emitted, colorized, and attributed.
func DefaultConfig() Config {
	return Config{
		Level:      LevelSilly,
		Enabled:    true,
		Colors:     true,
		Attributed: AllLevels(),
	}
}

// ConfigFromEnv resolves the configuration from the LOG_LEVEL and
// ENABLE_DEBUG environment variables. Invalid or missing values fall back to
// the defaults instead of failing: a logging misconfiguration must never
// block startup.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	var vars envVars
	if err := env.Parse(&vars); err != nil {
		return cfg
	}

	cfg.Level = LevelFromString(vars.LogLevel)
	cfg.Enabled = vars.EnableDebug != disablingLiteral
	return cfg
}
