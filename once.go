package readinput

import (
	"io"
	"log/slog"

	"github.com/aretw0/readinput/internal/engine"
	"github.com/aretw0/readinput/pkg/constraint"
	"github.com/aretw0/readinput/pkg/domain"
	"github.com/aretw0/readinput/pkg/terminal"
)

// Once is a Builder with a default value, created by Builder.Default.
// It is meant to be used for a single Get.
type Once[T any] struct {
	builder Builder[T]
	def     T
}

func (o Once[T]) Prompt(msg string) Once[T] {
	o.builder = o.builder.Prompt(msg)
	return o
}

func (o Once[T]) RepeatPrompt(msg string) Once[T] {
	o.builder = o.builder.RepeatPrompt(msg)
	return o
}

func (o Once[T]) ErrMsg(msg string) Once[T] {
	o.builder = o.builder.ErrMsg(msg)
	return o
}

func (o Once[T]) Test(pred func(T) bool) Once[T] {
	o.builder = o.builder.Test(pred)
	return o
}

func (o Once[T]) TestMsg(pred func(T) bool, msg string) Once[T] {
	o.builder = o.builder.TestMsg(pred, msg)
	return o
}

func (o Once[T]) Inside(c constraint.Constraint[T]) Once[T] {
	o.builder = o.builder.Inside(c)
	return o
}

func (o Once[T]) InsideMsg(c constraint.Constraint[T], msg string) Once[T] {
	o.builder = o.builder.InsideMsg(c, msg)
	return o
}

func (o Once[T]) ClearTests() Once[T] {
	o.builder = o.builder.ClearTests()
	return o
}

func (o Once[T]) ErrMatch(m ErrMatcher) Once[T] {
	o.builder = o.builder.ErrMatch(m)
	return o
}

func (o Once[T]) Input(r io.Reader) Once[T] {
	o.builder = o.builder.Input(r)
	return o
}

func (o Once[T]) Output(w io.Writer) Once[T] {
	o.builder = o.builder.Output(w)
	return o
}

func (o Once[T]) Terminal(t terminal.Terminal) Once[T] {
	o.builder = o.builder.Terminal(t)
	return o
}

func (o Once[T]) Styled(enabled bool) Once[T] {
	o.builder = o.builder.Styled(enabled)
	return o
}

func (o Once[T]) Logger(l *slog.Logger) Once[T] {
	o.builder = o.builder.Logger(l)
	return o
}

func (o Once[T]) Hooks(h domain.Hooks) Once[T] {
	o.builder = o.builder.Hooks(h)
	return o
}

func (o Once[T]) Sanitize(limit int) Once[T] {
	o.builder = o.builder.Sanitize(limit)
	return o
}

// Default replaces the default value.
func (o Once[T]) Default(v T) Once[T] {
	o.def = v
	return o
}

// Get fetches a valid value, or the default when the line is empty.
// It panics if the input cannot be read.
func (o Once[T]) Get() T {
	v, err := o.TryGet()
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet is Get returning the I/O failure instead of panicking.
func (o Once[T]) TryGet() (T, error) {
	cfg := o.builder.config()
	cfg.Terminal = o.builder.resolveTerminal()
	def := o.def
	return engine.Run(cfg, &def)
}
