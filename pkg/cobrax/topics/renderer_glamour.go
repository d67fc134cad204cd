package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a custom style
	Width int    // 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer. Styling is disabled
// when plain is set, e.g. for piped output or NO_COLOR.
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto", Width: 80}
	if plain {
		r.Style = "notty"
	}
	return r
}

// Render styles markdown content; other formats pass through unchanged.
// Content is returned as-is if glamour fails.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
