package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name with body in a temporary directory and returns its
// absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, body string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")

	require.NoError(t, os.WriteFile(absPath, []byte(body), 0o600), "Failed to write temp file")
	return absPath
}
