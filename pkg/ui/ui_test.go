package ui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arthur-debert/xctemplates/pkg/catalog"
	"github.com/arthur-debert/xctemplates/pkg/template"
	"github.com/arthur-debert/xctemplates/pkg/ui"
	"github.com/arthur-debert/xctemplates/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleList() *display.TemplateList {
	t := template.New("/root/github.com/acme/tpl/View.xctemplate")
	t.Summary = "A view"
	t.Version = "abc1234"
	return display.NewTemplateList("View", []*template.Template{t})
}

func render(t *testing.T, format ui.Format, result interface{}) string {
	t.Helper()
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(format, buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(result))
	return buf.String()
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(f, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestTextRenderer_Templates(t *testing.T) {
	out := render(t, ui.FormatText, sampleList())
	assert.Equal(t, "github.com/acme/tpl/View  A view\n", out)
}

func TestTextRenderer_TemplatesDetailed(t *testing.T) {
	list := sampleList()
	list.Detailed = true

	out := render(t, ui.FormatText, list)
	assert.Contains(t, out, "github.com/acme/tpl/View (abc1234)\n")
	assert.Contains(t, out, "path:")
	assert.Contains(t, out, "/root/github.com/acme/tpl/View.xctemplate")
	assert.Contains(t, out, "https://github.com/acme/tpl/tree/HEAD/View.xctemplate")
	assert.NotContains(t, out, "kind:")
}

func TestTextRenderer_NoMatchWithSuggestions(t *testing.T) {
	list := display.NewTemplateList("Veiw", nil)
	list.Suggestions = []string{"github.com/acme/tpl/View"}

	out := render(t, ui.FormatText, list)
	assert.Contains(t, out, `No templates match "Veiw"`)
	assert.Contains(t, out, "Did you mean:\n  github.com/acme/tpl/View\n")
}

func TestTextRenderer_PathsAndStats(t *testing.T) {
	out := render(t, ui.FormatText, &display.PathList{Level: "hosts", Paths: []string{"/r/a", "/r/b"}})
	assert.Equal(t, "/r/a\n/r/b\n", out)

	out = render(t, ui.FormatText, &display.StatsView{Root: "/r", Stats: catalog.Stats{Hosts: 1, Templates: 4}})
	assert.Contains(t, out, "hosts: 1\n")
	assert.Contains(t, out, "templates: 4\n")
}

func TestTextRenderer_Operation(t *testing.T) {
	out := render(t, ui.FormatText, &display.OperationView{Kind: "mkdir", Target: "/r/x", Command: "env mkdir -p /r/x"})
	assert.Equal(t, "mkdir /r/x: ok\n", out)

	out = render(t, ui.FormatText, &display.OperationView{Kind: "mkdir", Target: "/r/x", Command: "env mkdir -p /r/x", DryRun: true})
	assert.Equal(t, "[dry-run] env mkdir -p /r/x\n", out)
}

func TestJSONRenderer(t *testing.T) {
	out := render(t, ui.FormatJSON, sampleList())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "View", decoded["query"])
	templates := decoded["templates"].([]interface{})
	require.Len(t, templates, 1)
	first := templates[0].(map[string]interface{})
	assert.Equal(t, "github.com/acme/tpl/View", first["identifier"])
	assert.Equal(t, "abc1234", first["version"])
	assert.NotContains(t, first, "kind")
}

func TestJSONRenderer_EmptyListIsArray(t *testing.T) {
	out := render(t, ui.FormatJSON, display.NewTemplateList("", nil))
	assert.Contains(t, out, `"templates": []`)
}

func TestYAMLRenderer(t *testing.T) {
	out := render(t, ui.FormatYAML, &display.StatsView{Root: "/r", Stats: catalog.Stats{Users: 2}})

	var decoded struct {
		Root  string        `yaml:"root"`
		Stats catalog.Stats `yaml:"stats"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "/r", decoded.Root)
	assert.Equal(t, 2, decoded.Stats.Users)
}

func TestTerminalRenderer(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := render(t, ui.FormatTerminal, sampleList())
	assert.Contains(t, out, "github.com/acme/tpl/View")
	assert.Contains(t, out, "(abc1234)")
	assert.Contains(t, out, "A view")

	out = render(t, ui.FormatTerminal, &display.StatsView{Root: "/r", Stats: catalog.Stats{Repositories: 3}})
	assert.Contains(t, out, "repositories")
	assert.Contains(t, out, "3")
}

func TestRenderError(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			r, err := ui.NewRenderer(f, buf)
			require.NoError(t, err)
			require.NoError(t, r.RenderError(errors.New("boom")))
			assert.Contains(t, buf.String(), "boom")
		})
	}
}
