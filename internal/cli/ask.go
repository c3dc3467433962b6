package cli

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/readinput"
	"github.com/aretw0/readinput/internal/presentation/tui"
	"github.com/aretw0/readinput/pkg/constraint"
	"github.com/aretw0/readinput/pkg/parse"
	"github.com/aretw0/readinput/pkg/terminal"
)

// Kind names a value type the CLI can ask for.
type Kind string

const (
	KindInt    Kind = "int"
	KindUint   Kind = "uint"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindChar   Kind = "char"
	KindString Kind = "string"
	KindChoice Kind = "choice"
)

// ErrNoChoices is returned when a choice question has nothing to choose from.
var ErrNoChoices = errors.New("choice needs at least one option")

// Ask asks one question and prints the accepted answer on stdout.
func Ask(kind Kind, opts AskOptions) error {
	answer, err := ask(kind, &opts)
	if err != nil {
		return err
	}
	if opts.Styled {
		answer = tui.Answer(opts.stdout(), answer)
	}
	_, err = fmt.Fprintln(opts.stdout(), answer)
	return err
}

func ask(kind Kind, opts *AskOptions) (string, error) {
	switch kind {
	case KindInt:
		return askOrdered(kind, opts, readinput.NewDefault[int64](), parse.Scalar[int64](),
			func(v int64) string { return strconv.FormatInt(v, 10) })
	case KindUint:
		return askOrdered(kind, opts, readinput.NewDefault[uint64](), parse.Scalar[uint64](),
			func(v uint64) string { return strconv.FormatUint(v, 10) })
	case KindFloat:
		return askOrdered(kind, opts, readinput.NewDefault[float64](), parse.Scalar[float64](),
			func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	case KindBool:
		return askWith(kind, opts, readinput.NewDefault[bool](), parse.Scalar[bool](), strconv.FormatBool)
	case KindChar:
		return askOrdered(kind, opts, readinput.Rune(), parse.Rune(),
			func(r rune) string { return string(r) })
	case KindString:
		return askOrdered(kind, opts, readinput.NewBasic[string](), parse.Scalar[string](), identity)
	case KindChoice:
		if len(opts.Choices) == 0 {
			return "", ErrNoChoices
		}
		b := readinput.NewBasic[string]().
			RepeatPrompt(fmt.Sprintf("Choose one of [%s]: ", strings.Join(opts.Choices, ", "))).
			ErrMsg("Please choose one of: " + strings.Join(opts.Choices, ", "))
		return askOrdered(kind, opts, b, parse.Scalar[string](), identity)
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

// askOrdered adds the bound, choice and exclusion flags, which need an ordering.
func askOrdered[T cmp.Ordered](kind Kind, opts *AskOptions, b readinput.Builder[T], p parse.Parser[T], format func(T) string) (string, error) {
	if opts.Min != "" {
		v, err := p(opts.Min)
		if err != nil {
			return "", fmt.Errorf("invalid --min: %w", err)
		}
		b = b.Inside(constraint.Min(v))
	}
	if opts.Max != "" {
		v, err := p(opts.Max)
		if err != nil {
			return "", fmt.Errorf("invalid --max: %w", err)
		}
		b = b.Inside(constraint.Max(v))
	}
	if len(opts.Choices) > 0 {
		values, err := parseAll(p, opts.Choices)
		if err != nil {
			return "", fmt.Errorf("invalid choice: %w", err)
		}
		b = b.Inside(constraint.Set(values...))
	}
	for _, raw := range opts.Exclude {
		v, err := p(raw)
		if err != nil {
			return "", fmt.Errorf("invalid --not: %w", err)
		}
		b = b.Inside(constraint.NotEqual(v))
	}
	return askWith(kind, opts, b, p, format)
}

func askWith[T any](kind Kind, opts *AskOptions, b readinput.Builder[T], p parse.Parser[T], format func(T) string) (string, error) {
	if opts.Prompt != "" {
		if opts.Repeat {
			b = b.RepeatPrompt(opts.Prompt)
		} else {
			b = b.Prompt(opts.Prompt)
		}
	}
	if opts.Err != "" {
		b = b.ErrMsg(opts.Err)
	}
	if opts.Sanitize {
		b = b.Sanitize(opts.MaxInput)
	}

	var def *T
	if opts.Default != nil {
		d, err := p(*opts.Default)
		if err != nil {
			return "", fmt.Errorf("invalid --default: %w", err)
		}
		def = &d
	}

	hooks, writeMetrics, err := opts.metrics(string(kind))
	if err != nil {
		return "", err
	}

	term, closeTerm, err := opts.openTerminal()
	if err != nil {
		return "", err
	}
	defer closeTerm()

	if opts.Intro != "" {
		plain := opts.Stderr != nil || !terminal.IsInteractive(os.Stderr)
		r, err := tui.NewRenderer(plain)
		if err != nil {
			r = nil
		}
		if err := tui.WriteIntro(opts.stderr(), r, opts.Intro); err != nil {
			return "", err
		}
	}

	b = b.Terminal(term).Logger(opts.createLogger()).Hooks(hooks)

	var v T
	if def != nil {
		v, err = b.Default(*def).TryGet()
	} else {
		v, err = b.TryGet()
	}
	if err != nil {
		return "", err
	}

	if err := writeMetrics(); err != nil {
		return "", fmt.Errorf("write metrics: %w", err)
	}
	return format(v), nil
}

func parseAll[T any](p parse.Parser[T], raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := p(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func identity(s string) string { return s }
