// Package export renders daily statistics as JSON, JPEG and PDF artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/goal"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// HumanDateLayout is the date format shown in exports, e.g. "Thu Oct 15 2026".
const HumanDateLayout = "Mon Jan 02 2006"

// BuildSnapshot freezes the current totals for export. Progress uses the
// same rounding as the live display.
func BuildSnapshot(stats models.DailyStats, cfg models.GoalConfig, now time.Time) models.Snapshot {
	snap := models.Snapshot{
		Date:                   now,
		StudySessionsCompleted: stats.StudySessionsCompleted,
		TotalStudyMinutes:      stats.TotalStudyMinutes,
		TotalBreakMinutes:      stats.TotalBreakMinutes,
		DailyGoalMinutes:       cfg.DailyGoalMinutes,
	}
	if cfg.IsSet() {
		snap.GoalProgressPercent = util.Clamp(goal.Percent(stats.TotalStudyMinutes, cfg.DailyGoalMinutes), 0, 100)
	}
	return snap
}

func artifactPath(dir, pattern string, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf(pattern, now.Format(config.DateLayout))), nil
}
