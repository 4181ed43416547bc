// Package stats accumulates per-day study and break totals.
package stats

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Aggregator is the only writer of DailyStats.
type Aggregator struct {
	repo  database.StatsRepository
	log   *zap.Logger
	stats models.DailyStats
}

// NewAggregator creates an Aggregator with empty stats. Call Load before use.
func NewAggregator(repo database.StatsRepository, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{repo: repo, log: log}
}

// DateKey formats t as the calendar-day key used for stats.
func DateKey(t time.Time) string {
	return t.Format(config.DateLayout)
}

// Load reads the persisted stats. A record from another day is discarded
// and the counters start at zero for today. It reports whether a rollover
// happened.
func (a *Aggregator) Load(ctx context.Context, now time.Time) bool {
	today := DateKey(now)
	a.stats = models.DailyStats{Date: today}

	stored, ok, err := a.repo.LatestStats(ctx)
	if err != nil {
		if errors.Is(err, database.ErrMalformedRecord) {
			a.log.Warn("stored stats malformed, starting fresh", zap.Error(err))
		} else {
			a.log.Error("load stats failed", zap.Error(err))
		}
		return false
	}
	if !ok {
		return false
	}
	if stored.Date != today {
		a.log.Info("daily rollover", zap.String("previous", stored.Date), zap.String("today", today))
		return true
	}
	a.stats = stored
	return false
}

// Stats returns a copy of the current totals.
func (a *Aggregator) Stats() models.DailyStats {
	return a.stats
}

// RollIfStale zeroes the counters when now falls on a later day than the
// current record. It reports whether a rollover happened.
func (a *Aggregator) RollIfStale(now time.Time) bool {
	today := DateKey(now)
	if a.stats.Date == today {
		return false
	}
	a.log.Info("daily rollover", zap.String("previous", a.stats.Date), zap.String("today", today))
	a.stats = models.DailyStats{Date: today}
	return true
}

// FinalizeSession folds one completed run segment into today's totals and
// persists the result. Sub-minute remainders are dropped. Persistence is
// best effort; failures are logged.
func (a *Aggregator) FinalizeSession(ctx context.Context, mode models.Mode, seconds int, startedAt, endedAt time.Time) models.DailyStats {
	if seconds < 0 {
		seconds = 0
	}
	a.RollIfStale(endedAt)

	minutes := seconds / 60
	switch mode {
	case models.ModeStudy:
		a.stats.StudySessionsCompleted++
		a.stats.TotalStudyMinutes += minutes
	case models.ModeBreak:
		a.stats.TotalBreakMinutes += minutes
	default:
		a.log.Warn("finalize with unknown mode", zap.String("mode", string(mode)))
		return a.stats
	}

	if err := a.repo.SaveStats(ctx, a.stats); err != nil {
		a.log.Error("save stats failed", zap.Error(err), zap.String("date", a.stats.Date))
	}

	seg := models.Segment{
		ID:        uuid.NewString(),
		Date:      a.stats.Date,
		Mode:      mode,
		Seconds:   seconds,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
	if err := a.repo.AppendSegment(ctx, seg); err != nil {
		a.log.Warn("append segment failed", zap.Error(err), zap.String("segment", seg.ID))
	}

	a.log.Debug("session finalized",
		zap.String("mode", string(mode)),
		zap.Int("seconds", seconds),
		zap.Int("study_minutes", a.stats.TotalStudyMinutes),
		zap.Int("sessions", a.stats.StudySessionsCompleted),
	)
	return a.stats
}

// History returns up to days records, newest first, with today's in-memory
// totals in place of any stored copy.
func (a *Aggregator) History(ctx context.Context, days int) []models.DailyStats {
	stored, err := a.repo.RecentStats(ctx, days)
	if err != nil {
		a.log.Warn("load history failed", zap.Error(err))
	}
	out := make([]models.DailyStats, 0, len(stored)+1)
	out = append(out, a.stats)
	for _, s := range stored {
		if s.Date == a.stats.Date {
			continue
		}
		out = append(out, s)
	}
	if days > 0 && len(out) > days {
		out = out[:days]
	}
	return out
}
