// Package goal tracks progress toward the daily study goal.
package goal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// ErrInvalidGoal is returned for goals outside 1..1440 minutes.
var ErrInvalidGoal = errors.New("please enter a valid goal (1-1440 minutes)")

// Tracker owns the daily goal configuration and fires achievement once per
// crossing.
type Tracker struct {
	cfg      models.GoalConfig
	achieved bool
}

// NewTracker creates a Tracker. Out-of-range minutes leave the goal unset.
func NewTracker(minutes int) *Tracker {
	t := &Tracker{}
	if Valid(minutes) {
		t.cfg.DailyGoalMinutes = minutes
	}
	return t
}

// Valid reports whether minutes is an acceptable daily goal.
func Valid(minutes int) bool {
	return minutes >= config.MinDailyGoalMinutes && minutes <= config.MaxDailyGoalMinutes
}

// Config returns the current goal configuration.
func (t *Tracker) Config() models.GoalConfig {
	return t.cfg
}

// SetDailyGoal parses user input and applies it. The goal is unchanged on
// error.
func (t *Tracker) SetDailyGoal(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoal, trimmed)
	}
	if err := t.SetDailyGoalMinutes(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// SetDailyGoalMinutes applies a validated goal and re-arms the achievement.
func (t *Tracker) SetDailyGoalMinutes(minutes int) error {
	if !Valid(minutes) {
		return fmt.Errorf("%w: %d", ErrInvalidGoal, minutes)
	}
	t.cfg.DailyGoalMinutes = minutes
	t.achieved = false
	return nil
}

// Clear unsets the daily goal.
func (t *Tracker) Clear() {
	t.cfg.DailyGoalMinutes = 0
	t.achieved = false
}

// Progress returns the display percentage for totalStudyMinutes. ok is
// false when no goal is set.
func (t *Tracker) Progress(totalStudyMinutes int) (percent int, ok bool) {
	if !t.cfg.IsSet() {
		return 0, false
	}
	return Percent(totalStudyMinutes, t.cfg.DailyGoalMinutes), true
}

// Prime records whether the goal is already met without firing. It is used
// after loading persisted stats so a restart does not repeat the
// achievement.
func (t *Tracker) Prime(totalStudyMinutes int) {
	t.achieved = t.cfg.IsSet() && totalStudyMinutes >= t.cfg.DailyGoalMinutes
}

// Evaluate returns true exactly once when totalStudyMinutes crosses the
// goal. Dropping below the goal (a new day) re-arms it.
func (t *Tracker) Evaluate(totalStudyMinutes int) bool {
	if !t.cfg.IsSet() {
		return false
	}
	if totalStudyMinutes < t.cfg.DailyGoalMinutes {
		t.achieved = false
		return false
	}
	if t.achieved {
		return false
	}
	t.achieved = true
	return true
}

// Percent is round(total/goal*100) clamped to [0, 100]. A total short of the
// goal never reads 100, so the display and the achievement agree.
func Percent(totalStudyMinutes, dailyGoalMinutes int) int {
	if dailyGoalMinutes <= 0 || totalStudyMinutes <= 0 {
		return 0
	}
	p := util.RoundPercent(totalStudyMinutes, dailyGoalMinutes)
	if totalStudyMinutes < dailyGoalMinutes && p >= 100 {
		return 99
	}
	return util.Clamp(p, 0, 100)
}
