package pomodoro

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/export"
	"github.com/akyairhashvil/pomo/internal/models"
	"go.uber.org/zap"
)

// Export writes today's snapshot in the requested format to the export
// directory.
func (s *Session) Export(ctx context.Context, format ExportFormat) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	snap := export.BuildSnapshot(s.agg.Stats(), s.tracker.Config(), now)

	var (
		path string
		err  error
		msg  string
	)
	switch format {
	case ExportJSON:
		path, err = export.SaveJSON(s.exportDir, snap, now)
		msg = MsgExportedJSON
	case ExportImage:
		path, err = export.SaveImage(s.exportDir, snap, s.settings.DarkMode, now)
		msg = MsgExportedImage
	case ExportPDF:
		history := s.agg.History(ctx, config.HistoryDays)
		path, err = export.SavePDF(s.exportDir, snap, history, now)
		msg = MsgExportedPDF
	default:
		return []models.Notification{s.note(models.SeverityError, fmt.Sprintf(MsgUnknownExport, string(format)))}
	}
	if err != nil {
		s.log.Error("export failed", zap.String("format", string(format)), zap.Error(err))
		return []models.Notification{s.note(models.SeverityError, fmt.Sprintf(MsgExportFailed, err))}
	}

	s.lastExport = path
	s.log.Info("exported", zap.String("format", string(format)), zap.String("path", path))
	return []models.Notification{s.note(models.SeveritySuccess, msg)}
}
