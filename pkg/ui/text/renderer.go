// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *display.TemplateList:
		renderTemplates(&b, v)
	case *display.PathList:
		for _, p := range v.Paths {
			b.WriteString(p + "\n")
		}
	case *display.StatsView:
		fmt.Fprintf(&b, "root: %s\n", v.Root)
		fmt.Fprintf(&b, "hosts: %d\n", v.Stats.Hosts)
		fmt.Fprintf(&b, "users: %d\n", v.Stats.Users)
		fmt.Fprintf(&b, "repositories: %d\n", v.Stats.Repositories)
		fmt.Fprintf(&b, "templates: %d\n", v.Stats.Templates)
	case *display.OperationView:
		if v.DryRun {
			fmt.Fprintf(&b, "[dry-run] %s\n", v.Command)
		} else {
			fmt.Fprintf(&b, "%s %s: ok\n", v.Kind, v.Target)
		}
		if v.Output != "" {
			b.WriteString(strings.TrimRight(v.Output, "\n") + "\n")
		}
	case string:
		b.WriteString(v + "\n")
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func renderTemplates(b *strings.Builder, list *display.TemplateList) {
	if len(list.Templates) == 0 {
		if list.Query != "" {
			fmt.Fprintf(b, "No templates match %q\n", list.Query)
		} else {
			b.WriteString("No templates found\n")
		}
		if len(list.Suggestions) > 0 {
			b.WriteString("Did you mean:\n")
			for _, s := range list.Suggestions {
				b.WriteString("  " + s + "\n")
			}
		}
		return
	}

	for i, t := range list.Templates {
		if !list.Detailed {
			if t.Summary != "" {
				fmt.Fprintf(b, "%s  %s\n", t.Identifier, t.Summary)
			} else {
				b.WriteString(t.Identifier + "\n")
			}
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Title + "\n")
		for _, f := range detailFields(t) {
			fmt.Fprintf(b, "  %-12s %s\n", f[0]+":", f[1])
		}
	}
}

func detailFields(t display.TemplateView) [][2]string {
	all := [][2]string{
		{"path", t.Path},
		{"kind", t.Kind},
		{"summary", t.Summary},
		{"description", t.Description},
		{"remote", t.Remote},
		{"file", t.RemoteFile},
	}
	fields := all[:0]
	for _, f := range all {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
