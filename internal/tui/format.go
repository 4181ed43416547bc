package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// modeLabel is the status line above the clock.
func modeLabel(s models.TimerState) string {
	switch {
	case s.Running:
		return s.Mode.Label()
	case s.Mode == models.ModeBreak:
		return models.ModeBreak.Label()
	default:
		return "Ready to Start"
	}
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// formatGoalProgress renders the goal line under the goal bar.
func formatGoalProgress(v viewGoal) string {
	if !v.set {
		return "Set a daily goal to track progress"
	}
	return fmt.Sprintf("Progress: %d of %d min (%d%%)", v.total, v.goal, v.percent)
}

type viewGoal struct {
	set     bool
	total   int
	goal    int
	percent int
}

func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		return config.MaxContentWidth
	}
	w := termWidth - 8
	if w > config.MaxContentWidth {
		w = config.MaxContentWidth
	}
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
