package readinput

import (
	"bufio"
	"io"
	"log/slog"
	"slices"

	"github.com/aretw0/readinput/internal/engine"
	"github.com/aretw0/readinput/pkg/constraint"
	"github.com/aretw0/readinput/pkg/domain"
	"github.com/aretw0/readinput/pkg/parse"
	"github.com/aretw0/readinput/pkg/terminal"
)

// DefaultErr is the fallback message shown when a failure has no message of its own.
const DefaultErr = engine.DefaultErr

// ErrMatcher maps a parse error to a user-facing message.
// Returning ok == false defers to the fallback message.
type ErrMatcher = engine.ErrMatcher

// Builder stores the settings used to fetch one value of type T.
//
// Every configuration method returns an updated copy; the receiver is never
// modified, so two builders derived from the same base never observe each
// other's later changes. A Builder can run Get any number of times.
type Builder[T any] struct {
	prompt   engine.Prompt
	err      string
	tests    []engine.Test[T]
	match    ErrMatcher
	parse    parse.Parser[T]
	in       io.Reader
	out      io.Writer
	term     terminal.Terminal
	styled   bool
	logger   *slog.Logger
	hooks    domain.Hooks
	sanitize bool
	maxInput int
}

// New creates a Builder that converts text with p.
func New[T any](p parse.Parser[T]) Builder[T] {
	return Builder[T]{
		err:   DefaultErr,
		parse: p,
	}
}

// Prompt sets a message shown once before the first read.
func (b Builder[T]) Prompt(msg string) Builder[T] {
	b.prompt = engine.Prompt{Text: msg}
	return b
}

// RepeatPrompt sets a message shown before every read.
func (b Builder[T]) RepeatPrompt(msg string) Builder[T] {
	b.prompt = engine.Prompt{Text: msg, Repeat: true}
	return b
}

// ErrMsg changes the fallback error message.
func (b Builder[T]) ErrMsg(msg string) Builder[T] {
	b.err = msg
	return b
}

// Test adds a validation check. Failing values show the fallback message.
func (b Builder[T]) Test(pred func(T) bool) Builder[T] {
	return b.addTest(pred, "", false)
}

// TestMsg adds a validation check with its own error message.
func (b Builder[T]) TestMsg(pred func(T) bool, msg string) Builder[T] {
	return b.addTest(pred, msg, true)
}

// Inside adds a check that the value satisfies c (a range, a set or a predicate).
func (b Builder[T]) Inside(c constraint.Constraint[T]) Builder[T] {
	return b.addTest(c.Compile(), "", false)
}

// InsideMsg is Inside with its own error message.
func (b Builder[T]) InsideMsg(c constraint.Constraint[T], msg string) Builder[T] {
	return b.addTest(c.Compile(), msg, true)
}

// ClearTests removes every check added so far.
func (b Builder[T]) ClearTests() Builder[T] {
	b.tests = nil
	return b
}

// ErrMatch sets a mapper from parse errors to messages.
func (b Builder[T]) ErrMatch(m ErrMatcher) Builder[T] {
	b.match = m
	return b
}

// Input reads lines from r instead of standard input. Builders sharing an
// input share its read buffer, so no buffered line is lost between runs.
func (b Builder[T]) Input(r io.Reader) Builder[T] {
	if _, ok := r.(*bufio.Reader); !ok && r != nil {
		r = bufio.NewReader(r)
	}
	b.in = r
	return b
}

// Output writes prompts and messages to w instead of standard output.
func (b Builder[T]) Output(w io.Writer) Builder[T] {
	b.out = w
	return b
}

// Terminal replaces the input and output streams with t.
func (b Builder[T]) Terminal(t terminal.Terminal) Builder[T] {
	b.term = t
	return b
}

// Styled renders error messages in color when the output supports it.
func (b Builder[T]) Styled(enabled bool) Builder[T] {
	b.styled = enabled
	return b
}

// Logger sets the structured logger. Attempts are logged at Debug.
func (b Builder[T]) Logger(l *slog.Logger) Builder[T] {
	b.logger = l
	return b
}

// Hooks registers observability callbacks, merged after any set earlier.
func (b Builder[T]) Hooks(h domain.Hooks) Builder[T] {
	b.hooks = b.hooks.Merge(h)
	return b
}

// Sanitize rejects lines longer than limit bytes or with invalid UTF-8 and
// strips control characters before parsing. A limit <= 0 uses
// terminal.DefaultMaxInputSize or the READINPUT_MAX_INPUT_SIZE override.
func (b Builder[T]) Sanitize(limit int) Builder[T] {
	b.sanitize = true
	b.maxInput = limit
	return b
}

// Default sets a value returned when the user submits an empty line. The
// default is never parsed or tested.
func (b Builder[T]) Default(v T) Once[T] {
	return Once[T]{builder: b, def: v}
}

// Get fetches a valid value, re-prompting until one is entered.
// It panics if the input cannot be read; use TryGet to handle that case.
func (b Builder[T]) Get() T {
	v, err := b.TryGet()
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet fetches a valid value, re-prompting until one is entered. The only
// error it returns is an I/O failure (see domain.ErrInputClosed).
func (b Builder[T]) TryGet() (T, error) {
	cfg := b.config()
	cfg.Terminal = b.resolveTerminal()
	return engine.Run(cfg, nil)
}

// Check runs the parse and test pipeline on text without any I/O. It
// returns the value and an empty message on success, or the message that
// would be shown.
func (b Builder[T]) Check(text string) (T, string, bool) {
	v, fail := engine.Check(b.config(), text)
	if fail != nil {
		return v, fail.Message, false
	}
	return v, "", true
}

func (b Builder[T]) addTest(pred constraint.Predicate[T], msg string, hasMsg bool) Builder[T] {
	b.tests = append(slices.Clip(b.tests), engine.Test[T]{Pred: pred, Msg: msg, HasMsg: hasMsg})
	return b
}

func (b Builder[T]) resolveTerminal() terminal.Terminal {
	if b.term != nil {
		return b.term
	}
	return terminal.NewText(b.in, b.out, terminal.WithStyledMessages(b.styled))
}

func (b Builder[T]) config() *engine.Config[T] {
	return &engine.Config[T]{
		Prompt:   b.prompt,
		Err:      b.err,
		Tests:    b.tests,
		Match:    b.match,
		Parse:    b.parse,
		Logger:   b.logger,
		Hooks:    b.hooks,
		Sanitize: b.sanitize,
		MaxInput: b.maxInput,
	}
}
