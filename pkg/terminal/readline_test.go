package terminal_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/readinput/pkg/terminal"
)

func TestReadline_ReadsPipedLines(t *testing.T) {
	interactive := false
	out := &bytes.Buffer{}
	rl, err := terminal.NewReadline(terminal.ReadlineConfig{
		Stdin:            io.NopCloser(strings.NewReader("42\n")),
		Stdout:           out,
		ForceInteractive: &interactive,
	})
	require.NoError(t, err)
	defer rl.Close()

	require.NoError(t, rl.Prompt("Age: "))
	line, err := rl.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "42", line)
}

func TestAuto_FallsBackToText(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	term, closeTerm, err := terminal.Auto(nil, f, "")
	require.NoError(t, err)
	defer closeTerm()

	_, ok := term.(*terminal.Text)
	assert.True(t, ok, "a regular file is not a terminal")
}
