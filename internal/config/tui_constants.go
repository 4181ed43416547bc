package config

// Layout constants.
const (
	// MinContentWidth is the narrowest frame the dashboard renders into.
	MinContentWidth = 40

	// MaxContentWidth caps the frame on wide terminals.
	MaxContentWidth = 72

	// ProgressBarWidth is the preferred width for progress bars.
	ProgressBarWidth = 40

	// MinProgressBarWidth is used on narrow terminals.
	MinProgressBarWidth = 10

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// GoalInputCharLimit fits "1440".
	GoalInputCharLimit = 4

	// MaxSessionGoalMinutes bounds the +/- session goal adjustment.
	MaxSessionGoalMinutes = 180
)
