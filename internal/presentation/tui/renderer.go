// Package tui renders CLI decoration: markdown introductions and answer styling.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Renderer transforms content before it is written.
type Renderer func(string) (string, error)

// NewRenderer returns a markdown renderer using glamour. With plain set, it
// uses the no-color style so output stays stable in pipes and tests.
func NewRenderer(plain bool) (Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if plain {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// WriteIntro renders markdown with r and writes it to w. Rendering failures
// fall back to the raw text.
func WriteIntro(w io.Writer, r Renderer, markdown string) error {
	out := markdown
	if r != nil {
		if rendered, err := r(markdown); err == nil {
			out = rendered
		}
	}
	_, err := io.WriteString(w, strings.TrimRight(out, "\n")+"\n")
	return err
}

// Answer styles an accepted value for display on w.
func Answer(w io.Writer, value string) string {
	o := termenv.NewOutput(w)
	return o.String(value).Bold().String()
}
