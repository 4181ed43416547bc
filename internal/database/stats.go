package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// SaveStats upserts the record for s.Date.
func (d *Database) SaveStats(ctx context.Context, s models.DailyStats) error {
	if !validStats(s) {
		return wrapStatsErr("save", s.Date, ErrMalformedRecord)
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO daily_stats (date, study_sessions, study_minutes, break_minutes, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			study_sessions = excluded.study_sessions,
			study_minutes = excluded.study_minutes,
			break_minutes = excluded.break_minutes,
			updated_at = CURRENT_TIMESTAMP`,
		s.Date, s.StudySessionsCompleted, s.TotalStudyMinutes, s.TotalBreakMinutes)
	return wrapStatsErr("save", s.Date, err)
}

// GetStats returns the record for date, if any.
func (d *Database) GetStats(ctx context.Context, date string) (models.DailyStats, bool, error) {
	row := d.DB.QueryRowContext(ctx, `
		SELECT date, study_sessions, study_minutes, break_minutes
		FROM daily_stats WHERE date = ?`, date)
	return scanStatsRow(row, "get", date)
}

// LatestStats returns the most recent record. A malformed record is
// reported as absent together with an error wrapping ErrMalformedRecord.
func (d *Database) LatestStats(ctx context.Context) (models.DailyStats, bool, error) {
	row := d.DB.QueryRowContext(ctx, `
		SELECT date, study_sessions, study_minutes, break_minutes
		FROM daily_stats ORDER BY date DESC LIMIT 1`)
	return scanStatsRow(row, "latest", "")
}

// RecentStats returns up to limit records, newest first. Malformed rows are
// skipped.
func (d *Database) RecentStats(ctx context.Context, limit int) ([]models.DailyStats, error) {
	if limit <= 0 {
		limit = config.HistoryDays
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, study_sessions, study_minutes, break_minutes
		FROM daily_stats ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, wrapStatsErr("recent", "", err)
	}
	defer rows.Close()

	var out []models.DailyStats
	for rows.Next() {
		var s models.DailyStats
		if err := rows.Scan(&s.Date, &s.StudySessionsCompleted, &s.TotalStudyMinutes, &s.TotalBreakMinutes); err != nil {
			continue
		}
		if !validStats(s) {
			continue
		}
		out = append(out, s)
	}
	return out, wrapStatsErr("recent", "", rows.Err())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatsRow(row rowScanner, op, date string) (models.DailyStats, bool, error) {
	var s models.DailyStats
	err := row.Scan(&s.Date, &s.StudySessionsCompleted, &s.TotalStudyMinutes, &s.TotalBreakMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyStats{}, false, nil
	}
	if err != nil {
		return models.DailyStats{}, false, wrapStatsErr(op, date, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
	}
	if !validStats(s) {
		return models.DailyStats{}, false, wrapStatsErr(op, s.Date, ErrMalformedRecord)
	}
	return s, true, nil
}

func validStats(s models.DailyStats) bool {
	if !s.Valid() {
		return false
	}
	_, err := time.Parse(config.DateLayout, s.Date)
	return err == nil
}
