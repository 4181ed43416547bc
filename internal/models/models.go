package models

import "time"

// Mode enumerates the two phases of the timer.
type Mode string

const (
	ModeStudy Mode = "study"
	ModeBreak Mode = "break"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeStudy || m == ModeBreak
}

// Label is the human readable name used by the presentation layers.
func (m Mode) Label() string {
	switch m {
	case ModeBreak:
		return "On Break"
	default:
		return "Studying"
	}
}

// TimerState is the observable state of the session engine.
type TimerState struct {
	Mode                  Mode
	Running               bool
	TotalElapsedSeconds   int // cumulative since last reset
	CurrentSessionSeconds int // elapsed in the active session
	SessionGoalMinutes    int
}

// DailyStats accumulates completed sessions for a single calendar day.
type DailyStats struct {
	Date                   string // YYYY-MM-DD, local time
	StudySessionsCompleted int
	TotalStudyMinutes      int
	TotalBreakMinutes      int
}

// Valid reports whether every counter is non-negative and the date is set.
func (s DailyStats) Valid() bool {
	return s.Date != "" && s.StudySessionsCompleted >= 0 && s.TotalStudyMinutes >= 0 && s.TotalBreakMinutes >= 0
}

// GoalConfig holds the daily study goal. Zero means unset.
type GoalConfig struct {
	DailyGoalMinutes int
}

// IsSet reports whether a daily goal has been configured.
func (g GoalConfig) IsSet() bool {
	return g.DailyGoalMinutes > 0
}

// Settings are persisted as one unit, independent of daily stats.
type Settings struct {
	DarkMode           bool
	DailyGoalMinutes   int
	SessionGoalMinutes int
}

// Segment is one finalized run of the timer in a single mode.
type Segment struct {
	ID        string
	Date      string
	Mode      Mode
	Seconds   int
	StartedAt time.Time
	EndedAt   time.Time
}

// Snapshot is the immutable record handed to exporters.
type Snapshot struct {
	Date                   time.Time
	StudySessionsCompleted int
	TotalStudyMinutes      int
	TotalBreakMinutes      int
	DailyGoalMinutes       int
	GoalProgressPercent    int
}

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Severity Severity
	Message  string
	At       time.Time
}
