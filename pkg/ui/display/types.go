// Package display defines the format-neutral views handed to renderers.
package display

import (
	"github.com/arthur-debert/xctemplates/pkg/catalog"
	"github.com/arthur-debert/xctemplates/pkg/operations"
	"github.com/arthur-debert/xctemplates/pkg/template"
)

// TemplateView is the printable form of a template
type TemplateView struct {
	// Title is the identifier followed by the version, when known
	Title       string `json:"-" yaml:"-"`
	Identifier  string `json:"identifier" yaml:"identifier"`
	Name        string `json:"name" yaml:"name"`
	Host        string `json:"host" yaml:"host"`
	User        string `json:"user" yaml:"user"`
	Repository  string `json:"repository" yaml:"repository"`
	Path        string `json:"path" yaml:"path"`
	Kind        string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Summary     string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Remote      string `json:"remote,omitempty" yaml:"remote,omitempty"`
	RemoteFile  string `json:"remote_file,omitempty" yaml:"remote_file,omitempty"`
}

// NewTemplateView converts a template
func NewTemplateView(t *template.Template) TemplateView {
	v := TemplateView{
		Title:       t.FormattedString(true, true),
		Identifier:  t.Identifier(),
		Name:        t.Name,
		Host:        t.Host,
		User:        t.User,
		Repository:  t.Repository,
		Path:        t.Path,
		Kind:        t.Kind,
		Summary:     t.Summary,
		Description: t.Description,
		Version:     t.Version,
	}
	if t.RemoteRepoURL != nil {
		v.Remote = t.RemoteRepoURL.String()
	}
	if t.RemoteFileURL != nil {
		v.RemoteFile = t.RemoteFileURL.String()
	}
	return v
}

// TemplateList is the result of listing or searching templates
type TemplateList struct {
	Query       string         `json:"query,omitempty" yaml:"query,omitempty"`
	Templates   []TemplateView `json:"templates" yaml:"templates"`
	Suggestions []string       `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	// Detailed asks terminal and text renderers for every field
	Detailed bool `json:"-" yaml:"-"`
}

// NewTemplateList converts templates, always yielding a non-nil slice
func NewTemplateList(query string, templates []*template.Template) *TemplateList {
	views := make([]TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, NewTemplateView(t))
	}
	return &TemplateList{Query: query, Templates: views}
}

// PathList is the result of listing one catalog level
type PathList struct {
	Level string   `json:"level" yaml:"level"`
	Root  string   `json:"root" yaml:"root"`
	Paths []string `json:"paths" yaml:"paths"`
}

// StatsView summarizes the catalog
type StatsView struct {
	Root  string        `json:"root" yaml:"root"`
	Stats catalog.Stats `json:"stats" yaml:"stats"`
}

// OperationView is the outcome of a directory operation
type OperationView struct {
	ID      string `json:"id" yaml:"id"`
	Kind    string `json:"kind" yaml:"kind"`
	Target  string `json:"target" yaml:"target"`
	Command string `json:"command" yaml:"command"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
	DryRun  bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// NewOperationView converts a finished operation result
func NewOperationView(r *operations.Result, output string, dryRun bool) *OperationView {
	return &OperationView{
		ID:      r.ID,
		Kind:    string(r.Kind),
		Target:  r.Target,
		Command: r.Command.String(),
		Output:  output,
		DryRun:  dryRun,
	}
}
