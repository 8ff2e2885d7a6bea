package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// An HCL syntax error is guaranteed to panic inside app.NewApp.
	invalidHCL := `
		cube "sales" {
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "catalog.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	runErr := run(out, []string{filePath})

	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, runErr.Error(), "application startup panicked")
	assert.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	catalog := `
cube "sales" {}

view "AB" {
  id           = 1
  dimensions   = ["a", "b"]
  row_estimate = 1000
  layout { id = 101 }
}

view "A" {
  id           = 2
  dimensions   = ["a"]
  row_estimate = 100
  layout { id = 201 }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "catalog.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(catalog), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", filePath})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, `Materialization plan for cube "sales"`)
	assert.Contains(t, output, "AB (id=1, rows=1000) <- base table")
	assert.Contains(t, output, "A (id=2, rows=100) <- AB (id=1)")
}
