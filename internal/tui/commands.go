package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one clock tick for the run identified by Generation.
type TickMsg struct {
	Generation uint64
	At         time.Time
}

type bannerExpiredMsg struct {
	id int
}

type tipMsg time.Time

func tickCmd(generation uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Generation: generation, At: t}
	})
}

func bannerCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return bannerExpiredMsg{id: id} })
}

func tipCmd() tea.Cmd {
	return tea.Tick(config.TipInterval, func(t time.Time) tea.Msg { return tipMsg(t) })
}
