package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Title     lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	ReadOnly  lipgloss.Style
	Input     lipgloss.Style
	Checked   lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("#2C3E50")).Bold(true).Padding(0, 2),
		Section:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(18),
		ReadOnly:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(60),
		Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 2),
		Section:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Width(18),
		ReadOnly:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(60),
		Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	},
}

// ThemeNamed returns the named theme, or the default one if unknown.
func ThemeNamed(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
