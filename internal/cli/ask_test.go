package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/readinput/internal/config"
	"github.com/aretw0/readinput/pkg/domain"
)

func run(t *testing.T, kind Kind, input string, opts AskOptions) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdin = strings.NewReader(input)
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	err := Ask(kind, opts)
	return stdout.String(), stderr.String(), err
}

func TestAsk_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		input string
		want  string
	}{
		{"Int", KindInt, "x\n-42\n", "-42\n"},
		{"Uint", KindUint, "-1\n7\n", "7\n"},
		{"Float", KindFloat, "1.5\n", "1.5\n"},
		{"Bool", KindBool, "yes\ntrue\n", "true\n"},
		{"Char", KindChar, "ab\nz\n", "z\n"},
		{"String", KindString, "  hello world \n", "hello world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.kind, tt.input, AskOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAsk_PromptGoesToStderr(t *testing.T) {
	out, errOut, err := run(t, KindInt, "abc\n5\n", AskOptions{Prompt: "n? ", Repeat: true, Err: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
	assert.Equal(t, "n? nope\nn? ", errOut)
}

func TestAsk_Bounds(t *testing.T) {
	out, errOut, err := run(t, KindInt, "0\n11\n10\n", AskOptions{Prompt: "> ", Min: "1", Max: "10", Err: "out"})
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Equal(t, "> out\nout\n", errOut)
}

func TestAsk_InvalidBound(t *testing.T) {
	_, _, err := run(t, KindInt, "1\n", AskOptions{Min: "one"})
	assert.ErrorContains(t, err, "invalid --min")
}

func TestAsk_Choice(t *testing.T) {
	out, errOut, err := run(t, KindChoice, "maybe\nno\n", AskOptions{Choices: []string{"yes", "no"}})
	require.NoError(t, err)
	assert.Equal(t, "no\n", out)
	assert.Equal(t, "Choose one of [yes, no]: Please choose one of: yes, no\nChoose one of [yes, no]: ", errOut)

	_, _, err = run(t, KindChoice, "x\n", AskOptions{})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestAsk_Exclude(t *testing.T) {
	out, _, err := run(t, KindString, "quit\nstay\n", AskOptions{Exclude: []string{"quit"}})
	require.NoError(t, err)
	assert.Equal(t, "stay\n", out)
}

func TestAsk_Default(t *testing.T) {
	def := "3"
	out, _, err := run(t, KindInt, "\n", AskOptions{Default: &def, Min: "10"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", out, "defaults bypass tests")

	bad := "three"
	_, _, err = run(t, KindInt, "\n", AskOptions{Default: &bad})
	assert.ErrorContains(t, err, "invalid --default")
}

func TestAsk_InputClosed(t *testing.T) {
	out, _, err := run(t, KindInt, "x\n", AskOptions{})
	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.Empty(t, out)
}

func TestAsk_UnknownKind(t *testing.T) {
	_, _, err := run(t, Kind("duration"), "", AskOptions{})
	assert.ErrorContains(t, err, "unknown kind")
}

func TestAsk_Intro(t *testing.T) {
	_, errOut, err := run(t, KindInt, "1\n", AskOptions{Intro: "# Guess"})
	require.NoError(t, err)
	assert.Contains(t, errOut, "Guess")
}

func TestAsk_Metrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readinput.prom")
	_, _, err := run(t, KindInt, "x\n4\n", AskOptions{MetricsFile: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `readinput_input_attempts_total{question="int"} 2`)
	assert.Contains(t, string(data), `readinput_input_rejects_total{question="int",reason="parse"} 1`)
}

func TestAsk_Logging(t *testing.T) {
	_, errOut, err := run(t, KindInt, "x\n4\n", AskOptions{LogLevel: "debug"})
	require.NoError(t, err)
	assert.Contains(t, errOut, "input rejected")
}

func TestApplyConfig(t *testing.T) {
	opts := AskOptions{Err: "flag"}
	opts.ApplyConfig(config.Config{Prompt: "cfg> ", Repeat: true, Error: "cfg", MaxInputSize: 16})

	assert.Equal(t, "cfg> ", opts.Prompt)
	assert.True(t, opts.Repeat)
	assert.Equal(t, "flag", opts.Err)
	assert.Equal(t, 16, opts.MaxInput)
	assert.True(t, opts.Sanitize)
}
