// Package style holds the lipgloss styles used for terminal output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)
)

// Level styles
var (
	HostStyle       = lipgloss.NewStyle().Foreground(HostColor)
	UserStyle       = lipgloss.NewStyle().Foreground(UserColor)
	RepositoryStyle = lipgloss.NewStyle().Foreground(RepositoryColor)
	TemplateStyle   = lipgloss.NewStyle().Foreground(TemplateColor).Bold(true)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// LevelStyle returns the style for a catalog level name
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "hosts":
		return HostStyle
	case "users":
		return UserStyle
	case "repositories":
		return RepositoryStyle
	case "templates":
		return TemplateStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Identifier colors each segment of host/user/repository/name
func Identifier(id string) string {
	parts := strings.SplitN(id, "/", 4)
	if len(parts) != 4 {
		return TemplateStyle.Render(id)
	}
	sep := MutedStyle.Render("/")
	return HostStyle.Render(parts[0]) + sep +
		UserStyle.Render(parts[1]) + sep +
		RepositoryStyle.Render(parts[2]) + sep +
		TemplateStyle.Render(parts[3])
}

// Indent pads s by level*2 spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
