package tui

import (
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{"ctrl+c", "q"}, Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{" ", "space", "s"}, Handler: handleToggle, Description: "start/switch"})
	r.Register(KeyBinding{Keys: []string{"b"}, Handler: handleBreak, Description: "break"})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Description: "reset"})
	r.Register(KeyBinding{Keys: []string{"g"}, Handler: handleGoalInputStart, Description: "goal"})
	r.Register(KeyBinding{Keys: []string{"G"}, Handler: handleGoalClear, Description: "clear goal"})
	r.Register(KeyBinding{Keys: []string{"+", "="}, Handler: handleSessionGoal(5), Description: "session+"})
	r.Register(KeyBinding{Keys: []string{"-"}, Handler: handleSessionGoal(-5), Description: "session-"})
	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleTheme, Description: "theme"})
	r.Register(KeyBinding{Keys: []string{"e"}, Handler: handleExport(pomodoro.ExportJSON), Description: "json"})
	r.Register(KeyBinding{Keys: []string{"i"}, Handler: handleExport(pomodoro.ExportImage), Description: "image"})
	r.Register(KeyBinding{Keys: []string{"p"}, Handler: handleExport(pomodoro.ExportPDF), Description: "pdf"})
	r.Register(KeyBinding{Keys: []string{"?"}, Handler: handleHelp, Description: "help"})
	return r
}

// run applies a session command and folds its result into the model.
func (m Model) run(notes []models.Notification) (Model, tea.Cmd, bool) {
	tick := m.refresh()
	return m, tea.Batch(tick, m.notify(notes)), true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.session.Close(m.ctx)
	m.quitting = true
	return m, tea.Quit, true
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.run(m.session.Toggle(m.ctx))
}

func handleBreak(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.run(m.session.SwitchToBreak(m.ctx))
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.run(m.session.Reset(m.ctx))
}

func handleGoalInputStart(m Model, _ string) (Model, tea.Cmd, bool) {
	m.editingGoal = true
	m.goalInput.Reset()
	m.goalInput.Focus()
	return m, textinput.Blink, true
}

func handleGoalClear(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.run(m.session.ClearDailyGoal(m.ctx))
}

func handleSessionGoal(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		return m.run(m.session.AdjustSessionGoal(m.ctx, delta))
	}
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.run(m.session.ToggleTheme(m.ctx))
}

func handleExport(format pomodoro.ExportFormat) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		return m.run(m.session.Export(m.ctx, format))
	}
}

func handleHelp(m Model, _ string) (Model, tea.Cmd, bool) {
	m.showHelp = !m.showHelp
	return m, nil, true
}
