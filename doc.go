/*
Package readinput reads a line from a terminal, parses it into a typed value, validates it and re-prompts until the value is valid.

It replaces the parse-validate-retry loop every command-line program ends up writing by hand. Semantic failures (bad text, failed checks) never leave the loop: they print one message and the user tries again. The only error that reaches the caller is a broken input stream.

# Concept

A Builder holds the settings for one question: prompt text, fallback error message, an ordered list of tests, a parse-error mapper and the streams to talk to. Tests are evaluated in the order they were added and the first failing test decides the message. Constraints (ranges, sets, predicates) come from package constraint and all compile to the same predicate shape.

Builder.Default turns a Builder into a Once, which returns the default for an empty line without parsing or testing it.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/readinput"
		"github.com/aretw0/readinput/pkg/constraint"
	)

	func main() {
		guess := readinput.NewBasic[int]().
			RepeatPrompt("Please input your guess: ").
			InsideMsg(constraint.Max(100), "That number is more than 100. Please try again").
			InsideMsg(constraint.Min(1), "That number is less than 1. Please try again").
			ErrMsg("That does not look like a number. Please try again").
			Get()

		fmt.Println("You guessed:", guess)

		lives := readinput.NewDefault[uint8]().Default(3).Get()
		fmt.Println("Lives:", lives)
	}

Custom types plug in through a parse.Parser; any encoding.TextUnmarshaler works with parse.Text:

	addr := readinput.New(parse.Text[netip.Addr]()).
		Prompt("Server address: ").
		ErrMatch(readinput.WithDescription).
		Get()
*/
package readinput
