package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	theme := m.theme()
	frameWidth := contentWidth(m.width)
	width := frameWidth - theme.Frame.GetHorizontalPadding()

	sections := []string{
		theme.Header.Width(width).Render(config.DesktopTitle),
		m.renderTimer(theme, width),
		m.renderSessionProgress(theme),
		m.renderStats(theme, width),
		m.renderGoal(theme),
	}
	if m.editingGoal {
		sections = append(sections, m.renderGoalInput(theme))
	}
	if m.banner != nil {
		sections = append(sections, m.renderBanner(theme, width))
	}
	if m.showHelp {
		sections = append(sections, m.renderHistory(theme, width), m.renderHelp(theme))
	}
	sections = append(sections, m.renderFooter(theme, width))

	body := theme.Frame.Width(frameWidth).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return theme.Base.Render(body)
}

func (m Model) renderTimer(theme Theme, width int) string {
	state := m.view.Timer
	label := theme.Label.Render(modeLabel(state))
	switch {
	case state.Running:
		label = theme.Running.Render(modeLabel(state))
	case state.Mode == models.ModeBreak:
		label = theme.Break.Render(modeLabel(state))
	}
	clock := theme.Clock.Render(util.FormatClock(state.TotalElapsedSeconds))
	detail := fmt.Sprintf("%s %s   %s %s",
		theme.Label.Render("Current session:"), theme.Value.Render(formatMinutes(state.CurrentSessionSeconds/60)),
		theme.Label.Render("Today's total:"), theme.Value.Render(formatMinutes(state.TotalElapsedSeconds/60)),
	)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left, "", center.Render(label), center.Render(clock), center.Render(detail), "")
}

func (m Model) renderSessionProgress(theme Theme) string {
	pct := int(m.view.SessionProgress*100 + 0.5)
	title := theme.Label.Render(fmt.Sprintf("Session goal: %d min", m.view.Timer.SessionGoalMinutes))
	bar := fmt.Sprintf("%s %3d%%", m.sessionBar.ViewAs(m.view.SessionProgress), pct)
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, "")
}

func (m Model) renderStats(theme Theme, width int) string {
	st := m.view.Stats
	tile := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center, theme.Value.Render(value), theme.Label.Render(label))
	}
	tileWidth := width / 3
	cell := lipgloss.NewStyle().Width(tileWidth).Align(lipgloss.Center)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell.Render(tile("Study Sessions", fmt.Sprintf("%d", st.StudySessionsCompleted))),
		cell.Render(tile("Study Time", formatMinutes(st.TotalStudyMinutes))),
		cell.Render(tile("Break Time", formatMinutes(st.TotalBreakMinutes))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, row, "")
}

func (m Model) renderGoal(theme Theme) string {
	v := viewGoal{
		set:     m.view.GoalSet,
		total:   m.view.Stats.TotalStudyMinutes,
		goal:    m.view.Goal.DailyGoalMinutes,
		percent: m.view.GoalPercent,
	}
	if !v.set {
		return lipgloss.JoinVertical(lipgloss.Left, theme.Label.Render("No goal set"), theme.Dim.Render(formatGoalProgress(v)))
	}
	title := theme.Label.Render(fmt.Sprintf("Daily Goal: %d minutes", v.goal))
	bar := m.goalBar.ViewAs(float64(v.percent) / 100)
	line := theme.Dim.Render(formatGoalProgress(v))
	if v.percent >= 100 {
		line = theme.Success.Render(formatGoalProgress(v))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, line)
}

func (m Model) renderGoalInput(theme Theme) string {
	prompt := theme.Highlight.Render("Daily goal (minutes), enter to save, esc to cancel")
	return lipgloss.JoinVertical(lipgloss.Left, "", prompt, theme.Input.Render(m.goalInput.View()))
}

func (m Model) renderBanner(theme Theme, width int) string {
	lines := make([]string, 0, len(m.banner.notes))
	for _, n := range m.banner.notes {
		style := theme.Info
		switch n.Severity {
		case models.SeveritySuccess:
			style = theme.Success
		case models.SeverityError:
			style = theme.Error
		}
		lines = append(lines, style.Render(truncate(n.Message, width)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{""}, lines...)...)
}

func (m Model) renderHistory(theme Theme, width int) string {
	if len(m.history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Highlight.Render("Recent days"))
	for _, day := range m.history {
		b.WriteString("\n")
		line := fmt.Sprintf("%s  %2d sessions  %4d min study  %3d min break",
			day.Date, day.StudySessionsCompleted, day.TotalStudyMinutes, day.TotalBreakMinutes)
		b.WriteString(theme.Dim.Render(truncate(line, width)))
	}
	return "\n" + b.String()
}

func (m Model) renderHelp(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Highlight.Render("Keys") + theme.Dim.Render("  pomo "+VersionLabel()))
	for _, binding := range m.keys.Bindings() {
		if binding.Description == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%-10s %s", binding.Label(), binding.Description))
	}
	return "\n" + theme.Dim.Render(b.String())
}

func (m Model) renderFooter(theme Theme, width int) string {
	lines := []string{""}
	if m.view.LastExport != "" {
		lines = append(lines, theme.Dim.Render(truncate("Last export: "+m.view.LastExport, width)))
	}
	lines = append(lines, theme.Dim.Render(truncate(m.keys.HelpLine(), width)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
