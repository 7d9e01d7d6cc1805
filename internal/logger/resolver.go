// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// UnknownFilePath is reported when no qualifying stack frame can be found.
const UnknownFilePath = "unknown file path"

// maxStackDepth bounds the outward walk on pathological stacks.
const maxStackDepth = 64

// CallerResolver locates the source file that requested a log record.
type CallerResolver interface {
	// Resolve returns the call site path relative to the working directory
	// and true, or false when no qualifying frame exists.
	Resolve() (string, bool)
}

// ownPackageDir is the directory holding the logger implementation; frames
// from it are never reported as the call site.
var ownPackageDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

// StackResolver walks the call stack outward from the logging entry point and
// reports the first frame that belongs to neither the logger itself, the Go
// runtime, nor third-party module code.
type StackResolver struct{}

var _ CallerResolver = StackResolver{}

func (StackResolver) Resolve() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for skip := 1; skip < maxStackDepth; skip++ {
		_, file, _, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if isLoggerFrame(file) || isForeignFrame(file) {
			continue
		}

		rel, err := filepath.Rel(wd, file)
		if err != nil {
			return "", false
		}
		return rel, true
	}

	return "", false
}

// isLoggerFrame reports whether file is part of the logger implementation.
// Test files in the logger package are legitimate call sites.
func isLoggerFrame(file string) bool {
	return filepath.Dir(file) == ownPackageDir && !strings.HasSuffix(file, "_test.go")
}

// isForeignFrame reports whether file belongs to the Go distribution or to a
// third-party module in the module cache.
func isForeignFrame(file string) bool {
	if strings.Contains(filepath.ToSlash(file), "/pkg/mod/") {
		return true
	}
	goroot := runtime.GOROOT()
	return goroot != "" && strings.HasPrefix(file, goroot)
}

// NoopResolver never finds a call site. It is used where stack introspection
// is unavailable or undesired; attribution then reports the fallback literal.
type NoopResolver struct{}

var _ CallerResolver = NoopResolver{}

func (NoopResolver) Resolve() (string, bool) {
	return "", false
}
