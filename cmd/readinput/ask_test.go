package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/readinput/internal/cli"
	"github.com/aretw0/readinput/internal/testutils"
)

func TestAskOptions_Flags(t *testing.T) {
	t.Setenv("READINPUT_CONFIG", "")
	cmd := newAskCmd(cli.KindInt, "", true)
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"-p", "n? ", "-r", "--min", "1", "--not", "3,4", "--max-input", "64", "-d", ""}))

	opts, err := askOptions(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "n? ", opts.Prompt)
	assert.True(t, opts.Repeat)
	assert.Equal(t, "1", opts.Min)
	assert.Equal(t, []string{"3", "4"}, opts.Exclude)
	assert.True(t, opts.Sanitize)
	require.NotNil(t, opts.Default)
	assert.Equal(t, "", *opts.Default)
}

func TestAskOptions_Config(t *testing.T) {
	path := testutils.WriteFile(t, "readinput.yaml", "prompt: \"cfg> \"\nerror: bad\n")

	cmd := newAskCmd(cli.KindBool, "", false)
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-e", "flag"}))

	opts, err := askOptions(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "cfg> ", opts.Prompt)
	assert.Equal(t, "flag", opts.Err)
	assert.Nil(t, opts.Default)
	assert.Empty(t, opts.Min)
}

func TestRootCommands(t *testing.T) {
	for _, name := range []string{"int", "uint", "float", "bool", "char", "string", "choice", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}
