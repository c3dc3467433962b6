package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/aretw0/readinput/pkg/domain"
)

// ReadlineConfig configures an interactive Readline terminal.
type ReadlineConfig struct {
	// HistoryFile persists accepted lines across runs. Empty disables history.
	HistoryFile string
	// Stdin and Stdout default to the process streams.
	Stdin  io.ReadCloser
	Stdout io.Writer
	// ForceInteractive skips TTY detection (used by tests and pipes).
	ForceInteractive *bool
}

// Readline implements Terminal with line editing.
// Prompt text is buffered and handed to readline on the next read, so
// editing redraws never erase it.
type Readline struct {
	inst    *readline.Instance
	pending string
}

// NewReadline opens an interactive terminal. Close must be called to restore
// the terminal state.
func NewReadline(cfg ReadlineConfig) (*Readline, error) {
	rc := &readline.Config{
		HistoryFile:            cfg.HistoryFile,
		DisableAutoSaveHistory: cfg.HistoryFile == "",
		Stdin:                  cfg.Stdin,
		Stdout:                 cfg.Stdout,
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
	}
	if cfg.ForceInteractive != nil {
		interactive := *cfg.ForceInteractive
		rc.FuncIsTerminal = func() bool { return interactive }
	}
	inst, err := readline.NewEx(rc)
	if err != nil {
		return nil, fmt.Errorf("open readline: %w", err)
	}
	return &Readline{inst: inst}, nil
}

func (r *Readline) Prompt(text string) error {
	r.pending += text
	return nil
}

func (r *Readline) ReadLine() (string, error) {
	r.inst.SetPrompt(r.pending)
	r.pending = ""

	line, err := r.inst.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, err)
	default:
		return "", err
	}
}

func (r *Readline) Message(text string) error {
	_, err := fmt.Fprintln(r.inst.Stdout(), text)
	return err
}

// Close releases the terminal and writes history.
func (r *Readline) Close() error {
	return r.inst.Close()
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Auto returns a Readline terminal when in and out are both terminals, and a
// Text terminal over them otherwise. The returned close function is always
// safe to call.
func Auto(in, out *os.File, historyFile string, opts ...Option) (Terminal, func() error, error) {
	if IsInteractive(in) && IsInteractive(out) {
		rl, err := NewReadline(ReadlineConfig{HistoryFile: historyFile, Stdin: in, Stdout: out})
		if err != nil {
			return nil, nil, err
		}
		return rl, rl.Close, nil
	}
	var r io.Reader
	if in != nil {
		r = in
	}
	var w io.Writer
	if out != nil {
		w = out
	}
	return NewText(r, w, opts...), func() error { return nil }, nil
}
