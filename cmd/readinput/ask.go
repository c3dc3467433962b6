package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aretw0/readinput/internal/cli"
	"github.com/aretw0/readinput/internal/config"
)

func newAskCmd(kind cli.Kind, short string, ordered bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := askOptions(cmd.Flags())
			if err != nil {
				return err
			}
			return cli.Ask(kind, opts)
		},
	}

	f := cmd.Flags()
	f.StringP("prompt", "p", "", "Prompt shown before reading")
	f.BoolP("repeat", "r", false, "Show the prompt again after every rejection")
	f.StringP("error", "e", "", "Message shown when a value is rejected")
	f.StringP("default", "d", "", "Value returned for an empty line")
	f.String("intro", "", "Markdown shown once before the first prompt")
	f.Bool("sanitize", false, "Reject oversized, non-UTF-8 or control-character input")
	f.Int("max-input", 0, "Largest accepted line in bytes (implies --sanitize)")
	f.Bool("styled", false, "Colour messages and the answer")
	f.String("history", "", "History file for the interactive line editor")
	f.String("log-level", "", "Log session events to stderr (debug, info, warn, error)")
	f.String("metrics-file", "", "Write Prometheus metrics for the session to this file")
	if ordered {
		f.String("min", "", "Smallest accepted value")
		f.String("max", "", "Largest accepted value")
		f.StringSlice("not", nil, "Values to reject")
	}
	if ordered || kind == cli.KindChoice {
		f.StringSlice("choices", nil, "Accepted values")
	}
	return cmd
}

func askOptions(f *pflag.FlagSet) (cli.AskOptions, error) {
	var opts cli.AskOptions
	opts.Prompt, _ = f.GetString("prompt")
	opts.Repeat, _ = f.GetBool("repeat")
	opts.Err, _ = f.GetString("error")
	if f.Changed("default") {
		def, _ := f.GetString("default")
		opts.Default = &def
	}
	opts.Intro, _ = f.GetString("intro")
	opts.Sanitize, _ = f.GetBool("sanitize")
	opts.MaxInput, _ = f.GetInt("max-input")
	opts.Sanitize = opts.Sanitize || opts.MaxInput > 0
	opts.Styled, _ = f.GetBool("styled")
	opts.History, _ = f.GetString("history")
	opts.LogLevel, _ = f.GetString("log-level")
	opts.MetricsFile, _ = f.GetString("metrics-file")
	// Flags missing from a command read back as zero values.
	opts.Min, _ = f.GetString("min")
	opts.Max, _ = f.GetString("max")
	opts.Exclude, _ = f.GetStringSlice("not")
	opts.Choices, _ = f.GetStringSlice("choices")

	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return opts, fmt.Errorf("load config: %w", err)
	}
	opts.ApplyConfig(cfg)
	return opts, nil
}

func init() {
	rootCmd.AddCommand(
		newAskCmd(cli.KindInt, "Ask for a signed integer", true),
		newAskCmd(cli.KindUint, "Ask for an unsigned integer", true),
		newAskCmd(cli.KindFloat, "Ask for a floating point number", true),
		newAskCmd(cli.KindBool, "Ask for true or false", false),
		newAskCmd(cli.KindChar, "Ask for a single character", true),
		newAskCmd(cli.KindString, "Ask for a line of text", true),
		newAskCmd(cli.KindChoice, "Ask for one of a list of values", false),
	)
}
