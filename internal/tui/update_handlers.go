package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick(msg)
	case bannerExpiredMsg:
		if m.banner != nil && m.banner.id == msg.id {
			m.banner = nil
		}
		return m, nil
	case tipMsg:
		return m.handleTip()
	}
	if m.editingGoal {
		var cmd tea.Cmd
		m.goalInput, cmd = m.goalInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	bar := contentWidth(m.width) - 8
	if bar > config.ProgressBarWidth {
		bar = config.ProgressBarWidth
	}
	if bar < config.MinProgressBarWidth {
		bar = config.MinProgressBarWidth
	}
	m.sessionBar.Width = bar
	m.goalBar.Width = bar
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editingGoal {
		return m.handleGoalInput(msg)
	}
	next, cmd, handled := m.keys.Handle(m, msg.String())
	if !handled {
		return m, nil
	}
	return next, cmd
}

func (m Model) handleGoalInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.session.Close(m.ctx)
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editingGoal = false
		m.goalInput.Blur()
		return m, nil
	case tea.KeyEnter:
		input := m.goalInput.Value()
		notes := m.session.SetDailyGoal(m.ctx, input)
		if len(notes) > 0 && notes[0].Severity != models.SeverityError {
			m.editingGoal = false
			m.goalInput.Blur()
			m.goalInput.Reset()
		}
		next, cmd, _ := m.run(notes)
		return next, cmd
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

// handleTick forwards a tick to the session. The tick chain continues only
// while its run is still current.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	notes := m.session.Tick(m.ctx, msg.Generation)
	m.refresh()
	if !m.view.Timer.Running || m.view.Generation != msg.Generation {
		m.log.Debug("tick chain ended", zap.Uint64("generation", msg.Generation))
		return m, m.notify(notes)
	}
	return m, tea.Batch(tickCmd(msg.Generation), m.notify(notes))
}

func (m Model) handleTip() (Model, tea.Cmd) {
	if !m.tips {
		return m, nil
	}
	var cmd tea.Cmd
	if m.banner == nil {
		cmd = m.notify([]models.Notification{{Severity: models.SeverityInfo, Message: m.randomTip()}})
	}
	return m, tea.Batch(cmd, tipCmd())
}
