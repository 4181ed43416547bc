package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

type statsJSON struct {
	Date           string `json:"date"`
	StudySessions  int    `json:"studySessions"`
	TotalStudyTime int    `json:"totalStudyTime"`
	TotalBreakTime int    `json:"totalBreakTime"`
	DailyGoal      int    `json:"dailyGoal"`
	GoalProgress   int    `json:"goalProgress"`
}

// WriteJSON encodes snap as indented JSON.
func WriteJSON(w io.Writer, snap models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statsJSON{
		Date:           snap.Date.Format(HumanDateLayout),
		StudySessions:  snap.StudySessionsCompleted,
		TotalStudyTime: snap.TotalStudyMinutes,
		TotalBreakTime: snap.TotalBreakMinutes,
		DailyGoal:      snap.DailyGoalMinutes,
		GoalProgress:   snap.GoalProgressPercent,
	})
}

// SaveJSON writes pomodoro-stats-<date>.json into dir and returns its path.
func SaveJSON(dir string, snap models.Snapshot, now time.Time) (string, error) {
	path, err := artifactPath(dir, config.JSONExportPattern, now)
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if err := WriteJSON(f, snap); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}
