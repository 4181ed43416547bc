package notify

import "time"

// Cue identifies an audible event.
type Cue int

const (
	CueStart Cue = iota
	CueBreak
	CueSessionComplete
	CueGoalAchieved
)

// Tone is one beep of a cue.
type Tone struct {
	Frequency int
	Duration  time.Duration
}

// Tones returns the beep sequence for c.
func (c Cue) Tones() []Tone {
	switch c {
	case CueStart:
		return []Tone{{800, 200 * time.Millisecond}}
	case CueBreak:
		return []Tone{{600, 300 * time.Millisecond}}
	case CueSessionComplete:
		return []Tone{{1000, 200 * time.Millisecond}, {800, 200 * time.Millisecond}}
	case CueGoalAchieved:
		return []Tone{
			{1200, 150 * time.Millisecond},
			{1000, 150 * time.Millisecond},
			{800, 300 * time.Millisecond},
		}
	default:
		return nil
	}
}

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueBreak:
		return "break"
	case CueSessionComplete:
		return "session_complete"
	case CueGoalAchieved:
		return "goal_achieved"
	default:
		return "unknown"
	}
}
