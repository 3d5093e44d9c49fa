package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/journal/internal/journal"
)

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Border    lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Selected  lipgloss.Style
	Bar       lipgloss.Style
	Mood      map[journal.MoodCategory]lipgloss.Style
}

func newTheme(title, label, value, hint, errc, ok, accent, pos, neu, neg lipgloss.Color) Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(title),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(label),
		Value:     lipgloss.NewStyle().Foreground(value),
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(label).Padding(0, 1),
		Hint:      lipgloss.NewStyle().Faint(true).Foreground(hint),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(errc),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(ok),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(label),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(title),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bar:       lipgloss.NewStyle().Foreground(accent),
		Mood: map[journal.MoodCategory]lipgloss.Style{
			journal.Positive: lipgloss.NewStyle().Foreground(pos),
			journal.Neutral:  lipgloss.NewStyle().Foreground(neu),
			journal.Negative: lipgloss.NewStyle().Foreground(neg),
		},
	}
}

// DefaultTheme is the Catppuccin-ish dark palette.
var DefaultTheme = newTheme("#A6E3A1", "#89B4FA", "#F2CDCD", "#CBA6F7", "#F38BA8", "#A6E3A1", "#94E2D5",
	"#A6E3A1", "#89B4FA", "#F38BA8")

var LightTheme = newTheme("#40A02B", "#1E66F5", "#4C4F69", "#8839EF", "#D20F39", "#40A02B", "#179299",
	"#40A02B", "#1E66F5", "#D20F39")

// Themes maps config theme names to palettes.
var Themes = map[string]Theme{
	"default": DefaultTheme,
	"dark":    DefaultTheme,
	"light":   LightTheme,
}

// ThemeFor returns the named theme, falling back to DefaultTheme.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return DefaultTheme
}
