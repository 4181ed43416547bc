package config

import "time"

// Timer settings.
const (
	DefaultSessionGoalMinutes = 25
	TickInterval              = time.Second
)

// Daily goal bounds. Zero means "unset".
const (
	MinDailyGoalMinutes = 1
	MaxDailyGoalMinutes = 1440
)

// Notifications.
const (
	BannerTTL    = 3 * time.Second
	TipInterval  = 45 * time.Second
	DesktopTitle = "Pomodoro Timer"
)

// Export artifacts. The placeholder is the ISO date.
const (
	JSONExportPattern  = "pomodoro-stats-%s.json"
	ImageExportPattern = "pomodoro-progress-%s.jpg"
	PDFExportPattern   = "pomodoro-report-%s.pdf"
	ImageQuality       = 90
	HistoryDays        = 7
)

// Database/application settings.
const (
	AppName        = "pomo"
	DBFileName     = "pomo.db"
	LogFileName    = "pomo.log"
	ConfigFileName = "config.yaml"
	DateLayout     = "2006-01-02"
)
