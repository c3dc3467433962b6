package terminal_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/readinput/pkg/domain"
	"github.com/aretw0/readinput/pkg/terminal"
)

func TestText_ReadLine(t *testing.T) {
	term := terminal.NewText(strings.NewReader("first\r\nsecond\nlast"), io.Discard)

	line, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	line, err = term.ReadLine()
	require.NoError(t, err, "unterminated last line is still delivered")
	assert.Equal(t, "last", line)

	_, err = term.ReadLine()
	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.ErrorIs(t, err, io.EOF)
}

func TestText_ReadLineError(t *testing.T) {
	boom := errors.New("boom")
	term := terminal.NewText(&failingReader{err: boom}, io.Discard)

	_, err := term.ReadLine()
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInputClosed)
}

func TestText_PromptAndMessage(t *testing.T) {
	out := &bytes.Buffer{}
	term := terminal.NewText(strings.NewReader(""), out)

	require.NoError(t, term.Prompt("Age: "))
	require.NoError(t, term.Message("bad"))

	assert.Equal(t, "Age: bad\n", out.String())
}

func TestText_FlushesBufferedWriter(t *testing.T) {
	sink := &bytes.Buffer{}
	w := bufio.NewWriter(sink)
	term := terminal.NewText(strings.NewReader(""), w)

	require.NoError(t, term.Prompt("> "))
	assert.Equal(t, "> ", sink.String())
}

func TestText_SharedBufferedReader(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("1\n2\n"))

	a := terminal.NewText(r, io.Discard)
	first, err := a.ReadLine()
	require.NoError(t, err)

	b := terminal.NewText(r, io.Discard)
	second, err := b.ReadLine()
	require.NoError(t, err)

	assert.Equal(t, "1", first)
	assert.Equal(t, "2", second, "read-ahead bytes survive across terminals")
}

func TestText_StyledMessages(t *testing.T) {
	t.Run("Ascii Profile Stays Plain", func(t *testing.T) {
		out := &bytes.Buffer{}
		term := terminal.NewText(strings.NewReader(""), out,
			terminal.WithStyledMessages(true), terminal.WithProfile(termenv.Ascii))

		require.NoError(t, term.Message("bad"))
		assert.Equal(t, "bad\n", out.String())
	})

	t.Run("ANSI Profile Colors", func(t *testing.T) {
		out := &bytes.Buffer{}
		term := terminal.NewText(strings.NewReader(""), out,
			terminal.WithStyledMessages(true), terminal.WithProfile(termenv.ANSI))

		require.NoError(t, term.Message("bad"))
		assert.Contains(t, out.String(), "\x1b[")
		assert.Contains(t, out.String(), "bad")
	})
}

func TestIsInteractive_NotATerminal(t *testing.T) {
	assert.False(t, terminal.IsInteractive(nil))
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
