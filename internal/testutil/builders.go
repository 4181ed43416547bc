package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Day is the reference "today" used across tests.
var Day = time.Date(2026, 10, 15, 9, 0, 0, 0, time.Local)

// Clock is a manually advanced time source.
type Clock struct {
	Now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{Now: start}
}

func (c *Clock) Func() func() time.Time {
	return func() time.Time { return c.Now }
}

func (c *Clock) Advance(d time.Duration) {
	c.Now = c.Now.Add(d)
}

// StatsBuilder provides fluent API for creating test daily stats.
type StatsBuilder struct {
	stats models.DailyStats
}

func NewStats() *StatsBuilder {
	return &StatsBuilder{
		stats: models.DailyStats{Date: Day.Format("2006-01-02")},
	}
}

func (b *StatsBuilder) OnDate(t time.Time) *StatsBuilder {
	b.stats.Date = t.Format("2006-01-02")
	return b
}

func (b *StatsBuilder) WithSessions(n int) *StatsBuilder {
	b.stats.StudySessionsCompleted = n
	return b
}

func (b *StatsBuilder) WithStudyMinutes(n int) *StatsBuilder {
	b.stats.TotalStudyMinutes = n
	return b
}

func (b *StatsBuilder) WithBreakMinutes(n int) *StatsBuilder {
	b.stats.TotalBreakMinutes = n
	return b
}

func (b *StatsBuilder) Build() models.DailyStats {
	return b.stats
}

// OpenDB creates a sqlite database in a temp dir and closes it on cleanup.
func OpenDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// SeedStats stores each record or fails the test.
func SeedStats(t *testing.T, db *database.Database, records ...models.DailyStats) {
	t.Helper()
	for _, s := range records {
		if err := db.SaveStats(context.Background(), s); err != nil {
			t.Fatalf("SaveStats failed: %v", err)
		}
	}
}
