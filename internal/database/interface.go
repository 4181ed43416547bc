package database

import (
	"context"

	"github.com/akyairhashvil/pomo/internal/models"
)

// StatsRepository defines daily statistics persistence.
type StatsRepository interface {
	LatestStats(ctx context.Context) (models.DailyStats, bool, error)
	SaveStats(ctx context.Context, s models.DailyStats) error
	RecentStats(ctx context.Context, limit int) ([]models.DailyStats, error)
	AppendSegment(ctx context.Context, seg models.Segment) error
}

// SettingsRepository defines settings persistence.
type SettingsRepository interface {
	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	StatsRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
