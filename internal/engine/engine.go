// Package engine runs the read, parse, validate and retry loop behind every
// input session.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/readinput/internal/logging"
	"github.com/aretw0/readinput/pkg/constraint"
	"github.com/aretw0/readinput/pkg/domain"
	"github.com/aretw0/readinput/pkg/parse"
	"github.com/aretw0/readinput/pkg/terminal"
)

// DefaultErr is the fallback message used when a failure carries no message of its own.
const DefaultErr = "That value does not pass. Please try again"

// Prompt is the text shown before reading.
type Prompt struct {
	Text   string
	Repeat bool // shown again before every retry
}

// Test is one compiled validation unit.
type Test[T any] struct {
	Pred   constraint.Predicate[T]
	Msg    string
	HasMsg bool
}

// ErrMatcher maps a parse error to a message. ok == false defers to the fallback.
type ErrMatcher func(err error) (msg string, ok bool)

// Config is everything one run needs. The engine never mutates it.
type Config[T any] struct {
	Prompt   Prompt
	Err      string
	Tests    []Test[T]
	Match    ErrMatcher
	Parse    parse.Parser[T]
	Terminal terminal.Terminal
	Logger   *slog.Logger
	Hooks    domain.Hooks

	// Sanitize runs terminal.SanitizeInputLimit on each line before the empty check.
	Sanitize bool
	MaxInput int
}

// Failure is a recoverable rejection of one line.
type Failure struct {
	Reason    domain.RejectReason
	Message   string
	TestIndex int
	Err       error
}

// Check parses and validates one trimmed line. It never touches the terminal.
func Check[T any](cfg *Config[T], text string) (T, *Failure) {
	v, err := cfg.Parse(text)
	if err != nil {
		msg := cfg.Err
		if cfg.Match != nil {
			if m, ok := cfg.Match(err); ok {
				msg = m
			}
		}
		return v, &Failure{Reason: domain.ReasonParse, Message: msg, TestIndex: -1, Err: err}
	}

	for i, t := range cfg.Tests {
		if t.Pred(v) {
			continue
		}
		msg := cfg.Err
		if t.HasMsg {
			msg = t.Msg
		}
		return v, &Failure{Reason: domain.ReasonTest, Message: msg, TestIndex: i}
	}
	return v, nil
}

// Run drives one session to completion. def, when non-nil, is returned for an
// empty line without parsing or testing it. The only error Run returns is an
// I/O failure of the terminal.
func Run[T any](cfg *Config[T], def *T) (T, error) {
	var zero T
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.Terminal.Prompt(cfg.Prompt.Text); err != nil {
		return zero, fmt.Errorf("write prompt: %w", err)
	}

	for attempt := 1; ; attempt++ {
		raw, err := cfg.Terminal.ReadLine()
		if err != nil {
			logger.Warn("input read failed", "attempt", attempt, "error", err)
			return zero, fmt.Errorf("read input: %w", err)
		}
		logger.Debug("input received", "attempt", attempt, "input", raw)
		if cfg.Hooks.OnAttempt != nil {
			cfg.Hooks.OnAttempt(&domain.AttemptEvent{EventBase: base(domain.EventAttempt, attempt), Input: raw})
		}

		v, fail := step(cfg, raw, def)
		if fail == nil {
			logger.Debug("input accepted", "attempt", attempt, "defaulted", v.defaulted)
			if cfg.Hooks.OnAccept != nil {
				cfg.Hooks.OnAccept(&domain.AcceptEvent{EventBase: base(domain.EventAccept, attempt), Defaulted: v.defaulted})
			}
			return v.value, nil
		}

		logger.Debug("input rejected", "attempt", attempt, "reason", fail.Reason, "message", fail.Message)
		if cfg.Hooks.OnReject != nil {
			cfg.Hooks.OnReject(&domain.RejectEvent{
				EventBase: base(domain.EventReject, attempt),
				Reason:    fail.Reason,
				Message:   fail.Message,
				TestIndex: fail.TestIndex,
				Err:       fail.Err,
			})
		}
		if err := cfg.Terminal.Message(fail.Message); err != nil {
			return zero, fmt.Errorf("write message: %w", err)
		}
		if cfg.Prompt.Repeat {
			if err := cfg.Terminal.Prompt(cfg.Prompt.Text); err != nil {
				return zero, fmt.Errorf("write prompt: %w", err)
			}
		}
	}
}

type outcome[T any] struct {
	value     T
	defaulted bool
}

func step[T any](cfg *Config[T], raw string, def *T) (outcome[T], *Failure) {
	if cfg.Sanitize {
		clean, err := terminal.SanitizeInputLimit(raw, cfg.MaxInput)
		if err != nil {
			return outcome[T]{}, &Failure{Reason: domain.ReasonSanitize, Message: cfg.Err, TestIndex: -1, Err: err}
		}
		raw = clean
	}

	text := strings.TrimSpace(raw)
	if text == "" && def != nil {
		return outcome[T]{value: *def, defaulted: true}, nil
	}

	v, fail := Check(cfg, text)
	if fail != nil {
		return outcome[T]{}, fail
	}
	return outcome[T]{value: v}, nil
}

func base(t domain.EventType, attempt int) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, Attempt: attempt}
}
