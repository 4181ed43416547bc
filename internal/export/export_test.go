package export

import (
	"bytes"
	"encoding/json"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

var exportDay = time.Date(2026, 10, 15, 18, 30, 0, 0, time.Local)

func TestBuildSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		study int
		goal  int
		want  int
	}{
		{"no goal", 90, 0, 0},
		{"exact goal", 120, 120, 100},
		{"over goal clamps", 150, 120, 100},
		{"rounds half up", 1, 8, 13},
		{"just short never reads 100", 299, 300, 99},
		{"zero study", 0, 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := models.DailyStats{Date: "2026-10-15", StudySessionsCompleted: 3, TotalStudyMinutes: tt.study, TotalBreakMinutes: 5}
			snap := BuildSnapshot(stats, models.GoalConfig{DailyGoalMinutes: tt.goal}, exportDay)
			if snap.GoalProgressPercent != tt.want {
				t.Fatalf("expected %d%%, got %d%%", tt.want, snap.GoalProgressPercent)
			}
			if snap.StudySessionsCompleted != 3 || snap.TotalStudyMinutes != tt.study || snap.TotalBreakMinutes != 5 {
				t.Fatalf("unexpected counts %+v", snap)
			}
			if snap.DailyGoalMinutes != tt.goal || !snap.Date.Equal(exportDay) {
				t.Fatalf("unexpected snapshot %+v", snap)
			}
		})
	}
}

func TestWriteJSONFields(t *testing.T) {
	snap := models.Snapshot{
		Date:                   exportDay,
		StudySessionsCompleted: 4,
		TotalStudyMinutes:      100,
		TotalBreakMinutes:      20,
		DailyGoalMinutes:       120,
		GoalProgressPercent:    83,
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, snap); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := map[string]any{
		"date":           "Thu Oct 15 2026",
		"studySessions":  float64(4),
		"totalStudyTime": float64(100),
		"totalBreakTime": float64(20),
		"dailyGoal":      float64(120),
		"goalProgress":   float64(83),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("field %s: expected %v, got %v", k, v, got[k])
		}
	}
	if !strings.Contains(buf.String(), "\n  \"date\"") {
		t.Fatalf("expected two-space indentation, got %s", buf.String())
	}
}

func TestSaveJSONFileName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := SaveJSON(dir, models.Snapshot{Date: exportDay}, exportDay)
	if err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}
	if filepath.Base(path) != "pomodoro-stats-2026-10-15.json" {
		t.Fatalf("unexpected file name %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file: %v", err)
	}
}

func TestRenderImageDimensionsAndTheme(t *testing.T) {
	snap := models.Snapshot{Date: exportDay, TotalStudyMinutes: 60, DailyGoalMinutes: 120, GoalProgressPercent: 50}
	light, err := RenderImage(snap, false)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	dark, err := RenderImage(snap, true)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if b := light.Bounds(); b.Dx() != ImageWidth || b.Dy() != ImageHeight {
		t.Fatalf("unexpected bounds %v", b)
	}
	lr, _, _, _ := light.At(10, 10).RGBA()
	dr, _, _, _ := dark.At(10, 10).RGBA()
	if lr>>8 < 200 {
		t.Fatalf("expected light background, got red %d", lr>>8)
	}
	if dr>>8 > 60 {
		t.Fatalf("expected dark background, got red %d", dr>>8)
	}
}

func TestRenderImageGoalBar(t *testing.T) {
	base := models.Snapshot{Date: exportDay, TotalStudyMinutes: 120, DailyGoalMinutes: 120, GoalProgressPercent: 100}
	withGoal, err := RenderImage(base, false)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	noGoal, err := RenderImage(models.Snapshot{Date: exportDay, TotalStudyMinutes: 120}, false)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	// Left end of the filled progress bar is primary purple.
	r, g, b, _ := withGoal.At(120, 460).RGBA()
	if r>>8 < 0x80 || g>>8 > 0x70 || b>>8 < 0xc0 {
		t.Fatalf("expected purple bar, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	nr, ng, nb, _ := noGoal.At(120, 460).RGBA()
	if nr == r && ng == g && nb == b {
		t.Fatalf("expected no bar without a goal")
	}
}

func TestSaveImageWritesJPEG(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveImage(dir, models.Snapshot{Date: exportDay, StudySessionsCompleted: 2}, true, exportDay)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if filepath.Base(path) != "pomodoro-progress-2026-10-15.jpg" {
		t.Fatalf("unexpected file name %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()
	history := []models.DailyStats{
		{Date: "2026-10-15", StudySessionsCompleted: 2, TotalStudyMinutes: 50},
		{Date: "2026-10-14", StudySessionsCompleted: 4, TotalStudyMinutes: 100, TotalBreakMinutes: 15},
	}
	snap := models.Snapshot{Date: exportDay, StudySessionsCompleted: 2, TotalStudyMinutes: 50, DailyGoalMinutes: 60, GoalProgressPercent: 83}
	path, err := SavePDF(dir, snap, history, exportDay)
	if err != nil {
		t.Fatalf("SavePDF failed: %v", err)
	}
	if filepath.Base(path) != "pomodoro-report-2026-10-15.pdf" {
		t.Fatalf("unexpected file name %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		t.Fatalf("expected pdf header")
	}
}
