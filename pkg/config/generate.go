package config

import (
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the default configuration file with every
// value commented out, ready to be edited.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues comments out assignment lines, keeping comments,
// blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// fileView mirrors Config with durations as strings so the rendered file
// reads like the one users write.
type fileView struct {
	Paths struct {
		Root string `toml:"root"`
	} `toml:"paths"`
	Catalog struct {
		InspectGit bool `toml:"inspect_git"`
	} `toml:"catalog"`
	Operations struct {
		Timeout string   `toml:"timeout"`
		Env     []string `toml:"env"`
	} `toml:"operations"`
	Search struct {
		Suggestions     bool `toml:"suggestions"`
		SuggestionLimit int  `toml:"suggestion_limit"`
	} `toml:"search"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
}

// Render serializes the effective configuration as TOML
func Render(cfg *Config) (string, error) {
	var v fileView
	v.Paths.Root = cfg.Paths.Root
	v.Catalog.InspectGit = cfg.Catalog.InspectGit
	v.Operations.Timeout = cfg.Operations.Timeout.String()
	v.Operations.Env = cfg.Operations.Env
	if v.Operations.Env == nil {
		v.Operations.Env = []string{}
	}
	v.Search.Suggestions = cfg.Search.Suggestions
	v.Search.SuggestionLimit = cfg.Search.SuggestionLimit
	v.Output.Format = cfg.Output.Format

	data, err := toml.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
