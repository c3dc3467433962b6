package readinput

import (
	"reflect"

	"github.com/aretw0/readinput/pkg/parse"
)

// Settings is a prompt and fallback message pair for one kind of value.
type Settings struct {
	Prompt string
	Err    string
}

var defaultSettings = map[reflect.Kind]Settings{
	reflect.Bool:    {"Please input true or false: ", "Only type true or false."},
	reflect.Int:     {"Please input an integer: ", "Only type integers."},
	reflect.Uint:    {"Please input a positive integer: ", "Only type positive integers."},
	reflect.Float64: {"Please input a number: ", "Only type numbers or decimal point."},
}

var runeSettings = Settings{"Please input a character: ", "Only type a single character."}

// DefaultSettings returns the prompt and fallback message NewDefault uses
// for T. ok is false for kinds without defaults (strings).
func DefaultSettings[T parse.Basic]() (Settings, bool) {
	var v T
	s, ok := defaultSettings[family(reflect.TypeOf(v).Kind())]
	return s, ok
}

// NewDefault creates a Builder for a built-in kind with a repeating prompt
// and fallback message suited to that kind, e.g. "Please input an integer: ".
func NewDefault[T parse.Basic]() Builder[T] {
	b := NewBasic[T]()
	if s, ok := DefaultSettings[T](); ok {
		b = b.RepeatPrompt(s.Prompt).ErrMsg(s.Err)
	}
	return b
}

// Rune creates a Builder for a single character with the character prompt.
func Rune() Builder[rune] {
	return New(parse.Rune()).
		RepeatPrompt(runeSettings.Prompt).
		ErrMsg(runeSettings.Err)
}

func family(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	}
	return k
}
