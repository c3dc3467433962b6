package parse

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Parser converts text into a value of type T.
type Parser[T any] func(text string) (T, error)

// Basic is the set of kinds Scalar understands.
type Basic interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var (
	// ErrSyntax is returned when text is not in the expected format.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is returned when text is well formed but out of range for the type.
	ErrRange = errors.New("value out of range")
)

// Error describes a failed conversion.
type Error struct {
	Kind  string // target kind, e.g. "int8"
	Input string
	Err   error // ErrSyntax, ErrRange or a custom error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Scalar returns a parser for any Basic type.
func Scalar[T Basic]() Parser[T] {
	return func(text string) (T, error) {
		var v T
		rv := reflect.ValueOf(&v).Elem()
		kind := rv.Kind()
		switch kind {
		case reflect.String:
			rv.SetString(text)
		case reflect.Bool:
			b, err := strictBool(text)
			if err != nil {
				return v, &Error{Kind: kind.String(), Input: text, Err: err}
			}
			rv.SetBool(b)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
			if err != nil {
				return v, &Error{Kind: kind.String(), Input: text, Err: numError(err)}
			}
			rv.SetInt(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
			if err != nil {
				return v, &Error{Kind: kind.String(), Input: text, Err: numError(err)}
			}
			rv.SetUint(n)
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(text, rv.Type().Bits())
			if err != nil {
				return v, &Error{Kind: kind.String(), Input: text, Err: numError(err)}
			}
			rv.SetFloat(f)
		default:
			return v, &Error{Kind: kind.String(), Input: text, Err: fmt.Errorf("unsupported kind %s", kind)}
		}
		return v, nil
	}
}

// Rune returns a parser that accepts exactly one character.
func Rune() Parser[rune] {
	return func(text string) (rune, error) {
		if utf8.RuneCountInString(text) != 1 {
			return 0, &Error{Kind: "rune", Input: text, Err: ErrSyntax}
		}
		r, _ := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError {
			return 0, &Error{Kind: "rune", Input: text, Err: ErrSyntax}
		}
		return r, nil
	}
}

// Text returns a parser for any type whose pointer implements
// encoding.TextUnmarshaler, such as netip.Addr or big.Int.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Parser[T] {
	return func(text string) (T, error) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(text)); err != nil {
			return v, err
		}
		return v, nil
	}
}

// URL returns a parser for absolute URLs.
func URL() Parser[*url.URL] {
	return func(text string) (*url.URL, error) {
		u, err := url.Parse(text)
		if err != nil {
			return nil, err
		}
		if !u.IsAbs() || u.Host == "" {
			return nil, &Error{Kind: "url", Input: text, Err: errors.New("relative URL without scheme")}
		}
		return u, nil
	}
}

// Map adapts a parser through a conversion step that may reject the value.
func Map[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(text string) (U, error) {
		v, err := p(text)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v)
	}
}

func strictBool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, ErrSyntax
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrSyntax
}
