// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/style"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string

	switch v := result.(type) {
	case *display.TemplateList:
		out = renderTemplates(v)
	case *display.PathList:
		out = renderPaths(v)
	case *display.StatsView:
		s, err := renderStats(v)
		if err != nil {
			return err
		}
		out = s
	case *display.OperationView:
		out = renderOperation(v)
	case string:
		out = v
	default:
		out = fmt.Sprintf("%+v", result)
	}

	_, err := fmt.Fprintln(r.output, out)
	return err
}

func renderTemplates(list *display.TemplateList) string {
	if len(list.Templates) == 0 {
		var b strings.Builder
		if list.Query != "" {
			b.WriteString(style.WarningIndicator + " No templates match " + style.CodeStyle.Render(list.Query))
		} else {
			b.WriteString(style.MutedStyle.Render("No templates found"))
		}
		if len(list.Suggestions) > 0 {
			b.WriteString("\n\n" + style.TitleStyle.Render("Did you mean"))
			for _, s := range list.Suggestions {
				b.WriteString("\n" + style.Indent(style.Identifier(s), 1))
			}
		}
		return b.String()
	}

	blocks := make([]string, 0, len(list.Templates))
	for _, t := range list.Templates {
		line := style.Identifier(t.Identifier)
		if t.Version != "" {
			line += " " + style.MutedStyle.Render("("+t.Version+")")
		}
		if !list.Detailed {
			if t.Summary != "" {
				line += "  " + style.MutedStyle.Render(t.Summary)
			}
			blocks = append(blocks, line)
			continue
		}

		var b strings.Builder
		b.WriteString(line)
		field := func(label, value string, s func(...string) string) {
			if value != "" {
				b.WriteString("\n" + style.Indent(style.LabelStyle.Render(label)+s(value), 1))
			}
		}
		field("path", t.Path, style.PathStyle.Render)
		field("kind", t.Kind, style.CodeStyle.Render)
		field("summary", t.Summary, plain)
		field("description", t.Description, plain)
		field("remote", t.Remote, style.PathStyle.Render)
		field("file", t.RemoteFile, style.PathStyle.Render)
		blocks = append(blocks, b.String()+"\n")
	}
	return strings.TrimRight(strings.Join(blocks, "\n"), "\n")
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

func renderPaths(list *display.PathList) string {
	if len(list.Paths) == 0 {
		return style.MutedStyle.Render("No " + list.Level + " under " + list.Root)
	}
	s := style.LevelStyle(list.Level)
	lines := make([]string, 0, len(list.Paths))
	for _, p := range list.Paths {
		lines = append(lines, s.Render(p))
	}
	return strings.Join(lines, "\n")
}

func renderStats(v *display.StatsView) (string, error) {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Level", "Count"},
		{"hosts", strconv.Itoa(v.Stats.Hosts)},
		{"users", strconv.Itoa(v.Stats.Users)},
		{"repositories", strconv.Itoa(v.Stats.Repositories)},
		{"templates", strconv.Itoa(v.Stats.Templates)},
	}).Srender()
	if err != nil {
		return "", err
	}
	return style.TitleStyle.Render("Catalog") + " " + style.PathStyle.Render(v.Root) + "\n\n" + table, nil
}

func renderOperation(v *display.OperationView) string {
	var line string
	if v.DryRun {
		line = style.WarningIndicator + " " + style.MutedStyle.Render("dry run:") + " " + style.CodeStyle.Render(v.Command)
	} else {
		line = style.SuccessIndicator + " " + v.Kind + " " + style.PathStyle.Render(v.Target)
	}
	if v.Output != "" {
		line += "\n" + style.MutedStyle.Render(strings.TrimRight(v.Output, "\n"))
	}
	return line
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorIndicator+" "+style.ErrorStyle.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}
