package export

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/go-pdf/fpdf"
)

// SavePDF writes pomodoro-report-<date>.pdf with today's snapshot and the
// recent daily history.
func SavePDF(dir string, snap models.Snapshot, history []models.DailyStats, now time.Time) (string, error) {
	path, err := artifactPath(dir, config.PDFExportPattern, now)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Pomodoro Progress Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, snap.Date.Format(HumanDateLayout))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Today")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Study sessions: %d", snap.StudySessionsCompleted))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Study time: %d min", snap.TotalStudyMinutes))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Break time: %d min", snap.TotalBreakMinutes))
	pdf.Ln(6)
	if snap.DailyGoalMinutes > 0 {
		line := fmt.Sprintf("Daily goal: %d / %d min (%d%%)",
			snap.TotalStudyMinutes, snap.DailyGoalMinutes, snap.GoalProgressPercent)
		if snap.GoalProgressPercent >= 100 {
			line += " - Goal achieved!"
		}
		pdf.Cell(0, 8, line)
	} else {
		pdf.Cell(0, 8, "Daily goal: not set")
	}
	pdf.Ln(14)

	if len(history) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Recent days")
		pdf.Ln(10)

		widths := []float64{45, 40, 45, 45}
		headers := []string{"Date", "Sessions", "Study (min)", "Break (min)"}
		pdf.SetFont("Arial", "B", 11)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 11)
		for _, day := range history {
			cells := []string{
				day.Date,
				fmt.Sprintf("%d", day.StudySessionsCompleted),
				fmt.Sprintf("%d", day.TotalStudyMinutes),
				fmt.Sprintf("%d", day.TotalBreakMinutes),
			}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, "Generated by "+config.DesktopTitle)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}
