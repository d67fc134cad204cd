package config

import (
	"time"

	"github.com/arthur-debert/xctemplates/pkg/errors"
)

// Config is the complete xctemplates configuration
type Config struct {
	Paths      Paths      `koanf:"paths"`
	Catalog    Catalog    `koanf:"catalog"`
	Operations Operations `koanf:"operations"`
	Search     Search     `koanf:"search"`
	Output     Output     `koanf:"output"`
}

// Paths configures where the catalog lives
type Paths struct {
	Root string `koanf:"root"`
}

// Catalog configures template discovery
type Catalog struct {
	InspectGit bool `koanf:"inspect_git"`
}

// Operations configures the external mkdir/rm processes
type Operations struct {
	Timeout time.Duration `koanf:"timeout"`
	Env     []string      `koanf:"env"`
}

// Search configures search output
type Search struct {
	Suggestions     bool `koanf:"suggestions"`
	SuggestionLimit int  `koanf:"suggestion_limit"`
}

// Output configures rendering
type Output struct {
	Format string `koanf:"format"`
}

var validFormats = map[string]bool{
	"auto": true, "term": true, "terminal": true, "text": true, "plain": true, "json": true, "yaml": true,
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	if c.Operations.Timeout < 0 {
		return errors.Newf(errors.ErrConfigParse, "operations.timeout must not be negative, got %s", c.Operations.Timeout)
	}
	if c.Search.SuggestionLimit < 0 {
		return errors.Newf(errors.ErrConfigParse, "search.suggestion_limit must not be negative, got %d", c.Search.SuggestionLimit)
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigParse, "unknown output.format %q", c.Output.Format)
	}
	return nil
}
