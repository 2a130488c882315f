package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	FocusBorder lipgloss.Color
	Header      lipgloss.Style
	Input       lipgloss.Style
	Result      lipgloss.Style
	Placeholder lipgloss.Style
	HistoryTime lipgloss.Style
	Delete      lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
	Error       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("63"),
		FocusBorder: lipgloss.Color("205"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Result:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		HistoryTime: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("62"),
		FocusBorder: lipgloss.Color("212"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Result:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		HistoryTime: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
	},
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
