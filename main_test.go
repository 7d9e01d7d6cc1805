// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"testing"

	"github.com/gostencil/stencil/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.New(io.Discard, logger.Config{Enabled: false})
	ctx := logger.WithContext(context.Background(), log)

	cmd.SetArgs([]string{"version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, versionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, versionString(Version, "", runtime.Version())+"\n", buffer.String())
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0.0 (2024-06-01), Go Version: "+runtime.Version(), versionString("1.0.0", "2024-06-01", runtime.Version()))
	assert.Equal(t, "1.0.0, Go Version: "+runtime.Version(), versionString("1.0.0", "", runtime.Version()))
}
