package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// defaultWrap is the word wrap width for rendered markdown.
const defaultWrap = 80

// RenderMarkdown renders md for the terminal. With styled unset the
// "notty" style is used, which keeps the output free of escape sequences.
func RenderMarkdown(md string, styled bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(defaultWrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
