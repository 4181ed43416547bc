package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Running   lipgloss.Style
	Break     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Dim       lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Input     lipgloss.Style
	Highlight lipgloss.Style
	BarFrom   string
	BarTo     string
	GoalBarTo string
}

var (
	lightTheme = newTheme("Light", themeColors{
		border: "#9333ea", text: "#1d1d1f", dim: "#86868b", accent: "#9333ea",
		running: "#7c3aed", brk: "#d97706", success: "#059669", err: "#dc2626", info: "#2563eb",
	})
	darkTheme = newTheme("Dark", themeColors{
		border: "#a855f7", text: "#f5f5f7", dim: "#86868b", accent: "#c084fc",
		running: "#a855f7", brk: "#fbbf24", success: "#10b981", err: "#f87171", info: "#60a5fa",
	})
)

type themeColors struct {
	border, text, dim, accent, running, brk, success, err, info string
}

func newTheme(name string, c themeColors) Theme {
	fg := func(hex string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)) }
	return Theme{
		Name:      name,
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color(c.border),
		Frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.border)).Padding(1, 2),
		Header:    fg(c.accent).Bold(true).Align(lipgloss.Center),
		Clock:     fg(c.text).Bold(true),
		Running:   fg(c.running).Bold(true),
		Break:     fg(c.brk).Bold(true),
		Label:     fg(c.dim),
		Value:     fg(c.accent).Bold(true),
		Dim:       fg(c.dim),
		Success:   fg(c.success).Bold(true),
		Error:     fg(c.err).Bold(true),
		Info:      fg(c.info),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.accent)).Padding(0, 1),
		Highlight: fg(c.accent),
		BarFrom:   "#9333ea",
		BarTo:     "#a855f7",
		GoalBarTo: c.success,
	}
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}
