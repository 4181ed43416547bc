package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// EventType defines the kind of Engine event.
type EventType string

const (
	EventStarted            EventType = "started"
	EventSessionGoalReached EventType = "session_goal_reached"
	EventSessionEnded       EventType = "session_ended"
	EventBreakStarted       EventType = "break_started"
	EventReset              EventType = "reset"
)

// Event is a side effect produced by an Engine transition.
//
// For EventSessionEnded, Mode and Seconds describe the finished segment and
// StartedAt is when that segment began.
type Event struct {
	Type      EventType
	Mode      models.Mode
	Seconds   int
	StartedAt time.Time
	At        time.Time
}
