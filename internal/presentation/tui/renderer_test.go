package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIntro_Plain(t *testing.T) {
	r, err := NewRenderer(true)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteIntro(buf, r, "# Setup\n\nPick a **port**."))

	assert.Contains(t, buf.String(), "Setup")
	assert.Contains(t, buf.String(), "port")
}

func TestWriteIntro_FallsBackToRaw(t *testing.T) {
	failing := Renderer(func(string) (string, error) { return "", errors.New("boom") })

	buf := &bytes.Buffer{}
	require.NoError(t, WriteIntro(buf, failing, "raw text\n\n"))
	assert.Equal(t, "raw text\n", buf.String())
}

func TestAnswer_PlainWriter(t *testing.T) {
	assert.Equal(t, "42", Answer(&bytes.Buffer{}, "42"))
}
