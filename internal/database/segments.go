package database

import (
	"context"

	"github.com/akyairhashvil/pomo/internal/models"
)

// AppendSegment records a finalized run segment.
func (d *Database) AppendSegment(ctx context.Context, seg models.Segment) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO segments (id, date, mode, seconds, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seg.ID, seg.Date, string(seg.Mode), seg.Seconds, seg.StartedAt.UTC(), seg.EndedAt.UTC())
	return wrapSegmentErr("append", seg.ID, err)
}

// SegmentsForDate lists the segments recorded on date in start order.
func (d *Database) SegmentsForDate(ctx context.Context, date string) ([]models.Segment, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, date, mode, seconds, started_at, ended_at
		FROM segments WHERE date = ?
		ORDER BY started_at ASC`, date)
	if err != nil {
		return nil, wrapSegmentErr("list", date, err)
	}
	defer rows.Close()

	var out []models.Segment
	for rows.Next() {
		var seg models.Segment
		var mode string
		if err := rows.Scan(&seg.ID, &seg.Date, &mode, &seg.Seconds, &seg.StartedAt, &seg.EndedAt); err != nil {
			return nil, wrapSegmentErr("scan", date, err)
		}
		seg.Mode = models.Mode(mode)
		out = append(out, seg)
	}
	return out, wrapSegmentErr("list", date, rows.Err())
}
