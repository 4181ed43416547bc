package timer

import (
	"errors"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// ErrInvalidSessionGoal is returned for non-positive session goals.
var ErrInvalidSessionGoal = errors.New("session goal must be positive")

// Engine is the study/break state machine. It is not safe for concurrent
// use; the owner serialises commands and ticks.
type Engine struct {
	state        models.TimerState
	generation   uint64
	goalNotified bool
	startedAt    time.Time
	now          func() time.Time
}

// NewEngine creates an idle Engine in study mode. A non-positive session
// goal falls back to the default.
func NewEngine(sessionGoalMinutes int) *Engine {
	if sessionGoalMinutes <= 0 {
		sessionGoalMinutes = config.DefaultSessionGoalMinutes
	}
	return &Engine{
		state: models.TimerState{
			Mode:               models.ModeStudy,
			SessionGoalMinutes: sessionGoalMinutes,
		},
		now: time.Now,
	}
}

// SetClock replaces the wall clock used to timestamp events.
func (e *Engine) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// State returns a copy of the current timer state.
func (e *Engine) State() models.TimerState {
	return e.state
}

// Generation identifies the current run. It changes on every Start, so a
// tick scheduled for an earlier run can be recognised and dropped.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Start begins a study run. Starting from break mode always re-enters study
// with a fresh session counter. It is a no-op while running.
func (e *Engine) Start() []Event {
	if e.state.Running {
		return nil
	}
	if e.state.Mode == models.ModeBreak {
		e.state.Mode = models.ModeStudy
		e.state.CurrentSessionSeconds = 0
	}
	e.state.Running = true
	e.generation++
	e.goalNotified = false
	e.startedAt = e.now()
	return []Event{{Type: EventStarted, Mode: e.state.Mode, At: e.startedAt}}
}

// Tick advances both counters by one second. Ticks while stopped are ignored.
func (e *Engine) Tick() []Event {
	if !e.state.Running {
		return nil
	}
	e.state.TotalElapsedSeconds++
	e.state.CurrentSessionSeconds++

	if e.state.Mode != models.ModeStudy || e.goalNotified {
		return nil
	}
	if e.state.CurrentSessionSeconds < e.state.SessionGoalMinutes*60 {
		return nil
	}
	e.goalNotified = true
	return []Event{{
		Type:    EventSessionGoalReached,
		Mode:    e.state.Mode,
		Seconds: e.state.CurrentSessionSeconds,
		At:      e.now(),
	}}
}

// SwitchToBreak ends the running session and parks the engine in break mode.
// Break does not count; the next Start returns to study.
func (e *Engine) SwitchToBreak() []Event {
	if !e.state.Running {
		return nil
	}
	now := e.now()
	events := []Event{e.endSession(now)}

	e.state.Mode = models.ModeBreak
	e.state.CurrentSessionSeconds = 0
	e.goalNotified = false
	return append(events, Event{Type: EventBreakStarted, Mode: models.ModeBreak, At: now})
}

// Reset stops the engine and clears all counters. A running session is
// finalized first.
func (e *Engine) Reset() []Event {
	now := e.now()
	var events []Event
	if e.state.Running {
		events = append(events, e.endSession(now))
	}
	e.state.Running = false
	e.state.Mode = models.ModeStudy
	e.state.TotalElapsedSeconds = 0
	e.state.CurrentSessionSeconds = 0
	e.goalNotified = false
	return append(events, Event{Type: EventReset, Mode: models.ModeStudy, At: now})
}

// SetSessionGoal changes the target length of a study session.
func (e *Engine) SetSessionGoal(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidSessionGoal
	}
	if minutes*60 > e.state.CurrentSessionSeconds {
		e.goalNotified = false
	}
	e.state.SessionGoalMinutes = minutes
	return nil
}

// SessionProgress is the fraction of the session goal reached, clamped to
// [0, 1]. It is zero when stopped.
func (e *Engine) SessionProgress() float64 {
	if !e.state.Running {
		return 0
	}
	goal := float64(e.state.SessionGoalMinutes * 60)
	progress := float64(e.state.CurrentSessionSeconds) / goal
	if progress > 1 {
		return 1
	}
	return progress
}

func (e *Engine) endSession(now time.Time) Event {
	e.state.Running = false
	return Event{
		Type:      EventSessionEnded,
		Mode:      e.state.Mode,
		Seconds:   e.state.CurrentSessionSeconds,
		StartedAt: e.startedAt,
		At:        now,
	}
}
