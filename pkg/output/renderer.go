package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal text
type Renderer func(markdown string) (string, error)

// PlainRenderer returns markdown unchanged
func PlainRenderer() Renderer {
	return func(markdown string) (string, error) {
		return markdown, nil
	}
}

// NewRenderer returns a glamour renderer when styled is true and a plain one otherwise.
// It also falls back to plain when glamour cannot be initialised.
func NewRenderer(styled bool) Renderer {
	if !styled {
		return PlainRenderer()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return PlainRenderer()
	}

	return func(markdown string) (string, error) {
		out, err := r.Render(markdown)
		if err != nil {
			return "", err
		}
		return strings.Trim(out, "\n"), nil
	}
}
