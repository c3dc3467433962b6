package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/aretw0/readinput/pkg/domain"
)

// Terminal defines the I/O capabilities an input session needs.
type Terminal interface {
	// Prompt shows text without a trailing newline.
	Prompt(text string) error
	// ReadLine blocks for one line of input. The line terminator is stripped.
	ReadLine() (string, error)
	// Message shows text on its own line.
	Message(text string) error
}

// Text implements Terminal over a plain reader and writer.
type Text struct {
	Reader *bufio.Reader
	Writer io.Writer

	styled  bool
	profile termenv.Profile
	output  *termenv.Output
}

// Option defines configuration for Text.
type Option func(*Text)

// WithStyledMessages renders messages in red when the writer supports color.
func WithStyledMessages(enabled bool) Option {
	return func(t *Text) {
		t.styled = enabled
	}
}

// WithProfile forces a color profile instead of detecting it from the writer.
func WithProfile(p termenv.Profile) Option {
	return func(t *Text) {
		t.profile = p
	}
}

var (
	stdinOnce   sync.Once
	stdinReader *bufio.Reader
)

// Stdin returns the process-wide buffered reader over os.Stdin.
// Sharing one buffer keeps read-ahead bytes available to later sessions.
func Stdin() *bufio.Reader {
	stdinOnce.Do(func() {
		stdinReader = bufio.NewReader(os.Stdin)
	})
	return stdinReader
}

// NewText creates a Text terminal. A nil reader means standard input and a
// nil writer means standard output. A *bufio.Reader is used as is, so the
// same buffered reader can be shared by several terminals; os.Stdin always
// maps to Stdin.
func NewText(r io.Reader, w io.Writer, opts ...Option) *Text {
	t := &Text{Writer: w, profile: -1}
	if f, ok := r.(*os.File); ok && f == os.Stdin {
		r = nil
	}
	switch rr := r.(type) {
	case nil:
		t.Reader = Stdin()
	case *bufio.Reader:
		t.Reader = rr
	default:
		t.Reader = bufio.NewReader(r)
	}
	if t.Writer == nil {
		t.Writer = os.Stdout
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.styled {
		var outOpts []termenv.OutputOption
		if t.profile >= 0 {
			outOpts = append(outOpts, termenv.WithProfile(t.profile))
		}
		t.output = termenv.NewOutput(t.Writer, outOpts...)
	}
	return t
}

func (t *Text) Prompt(text string) error {
	if _, err := io.WriteString(t.Writer, text); err != nil {
		return err
	}
	flush(t.Writer)
	return nil
}

func (t *Text) ReadLine() (string, error) {
	line, err := t.Reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// An unterminated last line is still a line; the next call reports the close.
		if line == "" {
			return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, io.EOF)
		}
	}
	return trimEOL(line), nil
}

func (t *Text) Message(text string) error {
	if t.output != nil {
		text = t.output.String(text).Foreground(t.output.Color("1")).String()
	}
	_, err := fmt.Fprintln(t.Writer, text)
	flush(t.Writer)
	return err
}

// flush is best effort: a failed flush never fails the session.
func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
