/*
Package terminal implements the line-oriented I/O collaborator used by input sessions.

A Terminal shows prompt text, blocks for one line of input and shows failure
messages. Two implementations are provided:

  - Text: a buffered reader over any io.Reader plus any io.Writer. This is the
    default (standard input/output) and the one used in tests.
  - Readline: an interactive terminal with line editing and optional history,
    for programs attached to a TTY.

Auto picks Readline when both given streams are terminals and Text otherwise.

# Usage

	term := terminal.NewText(strings.NewReader("42\n"), &buf)
	term.Prompt("Age: ")
	line, err := term.ReadLine() // "42"
*/
package terminal
