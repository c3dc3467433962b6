package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/readinput/internal/config"
	"github.com/aretw0/readinput/internal/logging"
	promadapter "github.com/aretw0/readinput/pkg/adapters/prometheus"
	"github.com/aretw0/readinput/pkg/domain"
	"github.com/aretw0/readinput/pkg/terminal"
)

// AskOptions configures one CLI question. Empty strings mean "not set".
type AskOptions struct {
	Prompt   string
	Repeat   bool
	Err      string
	Default  *string
	Min      string
	Max      string
	Choices  []string
	Exclude  []string
	Intro    string
	Sanitize bool
	MaxInput int
	Styled   bool
	History  string
	LogLevel string
	// MetricsFile receives a Prometheus text exposition of the session.
	MetricsFile string

	// Streams; nil means the process streams. Prompts go to Stderr so the
	// answer on Stdout can be captured by a shell.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ApplyConfig fills unset options from a config file.
func (o *AskOptions) ApplyConfig(cfg config.Config) {
	if o.Prompt == "" {
		o.Prompt = cfg.Prompt
		o.Repeat = o.Repeat || cfg.Repeat
	}
	if o.Err == "" {
		o.Err = cfg.Error
	}
	if o.MaxInput == 0 {
		o.MaxInput = cfg.MaxInputSize
	}
	o.Sanitize = o.Sanitize || cfg.Sanitize || cfg.MaxInputSize > 0
	o.Styled = o.Styled || cfg.Styled
	if o.History == "" {
		o.History = cfg.History
	}
	if o.LogLevel == "" {
		o.LogLevel = cfg.LogLevel
	}
}

func (o *AskOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o *AskOptions) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

// createLogger writes to stderr at the configured level, or discards when unset.
func (o *AskOptions) createLogger() *slog.Logger {
	if o.LogLevel == "" {
		return logging.NewNop()
	}
	return logging.New(logging.ParseLevel(o.LogLevel), o.stderr())
}

// openTerminal uses readline when attached to a TTY and plain text otherwise.
func (o *AskOptions) openTerminal() (terminal.Terminal, func() error, error) {
	styled := terminal.WithStyledMessages(o.Styled)
	if o.Stdin == nil && o.Stderr == nil {
		return terminal.Auto(os.Stdin, os.Stderr, o.History, styled)
	}
	t := terminal.NewText(o.Stdin, o.stderr(), styled)
	return t, func() error { return nil }, nil
}

// metrics returns hooks feeding a private registry and a function that
// writes it out, or no-ops when MetricsFile is unset.
func (o *AskOptions) metrics(question string) (domain.Hooks, func() error, error) {
	if o.MetricsFile == "" {
		return domain.Hooks{}, func() error { return nil }, nil
	}
	reg := prometheus.NewRegistry()
	c, err := promadapter.NewCollector(reg, "readinput")
	if err != nil {
		return domain.Hooks{}, nil, err
	}
	return c.Hooks(question), func() error {
		return prometheus.WriteToTextfile(o.MetricsFile, reg)
	}, nil
}
