package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xctemplates/pkg/errors"
)

// ValidateSegment ensures a host, user or repository name can be used as a
// single path element.
func ValidateSegment(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "path segment cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrInvalidInput, "path segment cannot contain path separators").
			WithDetail("segment", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "path segment cannot be '.' or '..'")
	}

	if strings.Contains(name, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path segment contains null bytes")
	}

	return nil
}

// ContainsPath checks if child is parent or lies below it
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// IsHidden returns true if the name (or the last element of a path) starts
// with a dot.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 0 && base[0] == '.'
}

// IsTemplateBundle reports whether path carries the template bundle extension
func IsTemplateBundle(path string) bool {
	return filepath.Ext(path) == TemplateExtension
}
