package readinput_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/readinput"
)

func TestDefaultSettings(t *testing.T) {
	tests := []struct {
		name   string
		got    func() (readinput.Settings, bool)
		prompt string
	}{
		{"bool", readinput.DefaultSettings[bool], "Please input true or false: "},
		{"int8", readinput.DefaultSettings[int8], "Please input an integer: "},
		{"int64", readinput.DefaultSettings[int64], "Please input an integer: "},
		{"uint", readinput.DefaultSettings[uint], "Please input a positive integer: "},
		{"uint8", readinput.DefaultSettings[uint8], "Please input a positive integer: "},
		{"float32", readinput.DefaultSettings[float32], "Please input a number: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := tt.got()
			assert.True(t, ok)
			assert.Equal(t, tt.prompt, s.Prompt)
			assert.NotEmpty(t, s.Err)
		})
	}

	_, ok := readinput.DefaultSettings[string]()
	assert.False(t, ok, "strings have no default prompt")
}

func TestNewDefault_Integer(t *testing.T) {
	out := &bytes.Buffer{}
	v := readinput.NewDefault[int]().
		Input(strings.NewReader("1.5\n-3\n")).
		Output(out).
		Get()

	assert.Equal(t, -3, v)
	assert.Equal(t,
		"Please input an integer: Only type integers.\nPlease input an integer: ",
		out.String())
}

func TestNewDefault_Unsigned(t *testing.T) {
	out := &bytes.Buffer{}
	v := readinput.NewDefault[uint]().
		Input(strings.NewReader("-3\n3\n")).
		Output(out).
		Get()

	assert.Equal(t, uint(3), v)
	assert.Contains(t, out.String(), "Only type positive integers.")
}

func TestNewDefault_BoolWithDefault(t *testing.T) {
	out := &bytes.Buffer{}
	v := readinput.NewDefault[bool]().
		Input(strings.NewReader("yes\n\n")).
		Output(out).
		Default(true).
		Get()

	assert.True(t, v)
	assert.Contains(t, out.String(), "Only type true or false.")
}

func TestRune(t *testing.T) {
	out := &bytes.Buffer{}
	r := readinput.Rune().
		Input(strings.NewReader("ab\ny\n")).
		Output(out).
		Get()

	assert.Equal(t, 'y', r)
	assert.Equal(t,
		"Please input a character: Only type a single character.\nPlease input a character: ",
		out.String())
}
