package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Setting keys.
const (
	SettingDarkMode           = "dark_mode"
	SettingDailyGoalMinutes   = "daily_goal_minutes"
	SettingSessionGoalMinutes = "session_goal_minutes"
)

// DefaultSettings are applied when nothing valid is stored.
func DefaultSettings() models.Settings {
	return models.Settings{
		DarkMode:           false,
		DailyGoalMinutes:   0,
		SessionGoalMinutes: config.DefaultSessionGoalMinutes,
	}
}

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, ok, err := d.getSetting(ctx, key)
	if err != nil {
		return "", false
	}
	return value, ok
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingsErr("set", key, err)
}

// LoadSettings reads the settings record. Missing keys take defaults. A
// malformed value also takes its default and the returned settings remain
// usable; the error then wraps ErrMalformedRecord.
func (d *Database) LoadSettings(ctx context.Context) (models.Settings, error) {
	settings := DefaultSettings()
	var malformed []string

	if raw, ok, err := d.getSetting(ctx, SettingDarkMode); err != nil {
		return settings, err
	} else if ok {
		if v, perr := strconv.ParseBool(raw); perr == nil {
			settings.DarkMode = v
		} else {
			malformed = append(malformed, SettingDarkMode)
		}
	}

	if raw, ok, err := d.getSetting(ctx, SettingDailyGoalMinutes); err != nil {
		return settings, err
	} else if ok {
		v, perr := strconv.Atoi(raw)
		if perr == nil && v >= 0 && v <= config.MaxDailyGoalMinutes {
			settings.DailyGoalMinutes = v
		} else {
			malformed = append(malformed, SettingDailyGoalMinutes)
		}
	}

	if raw, ok, err := d.getSetting(ctx, SettingSessionGoalMinutes); err != nil {
		return settings, err
	} else if ok {
		v, perr := strconv.Atoi(raw)
		if perr == nil && v > 0 {
			settings.SessionGoalMinutes = v
		} else {
			malformed = append(malformed, SettingSessionGoalMinutes)
		}
	}

	if len(malformed) > 0 {
		return settings, wrapSettingsErr("load", malformed[0], ErrMalformedRecord)
	}
	return settings, nil
}

// SaveSettings writes all settings as one unit.
func (d *Database) SaveSettings(ctx context.Context, s models.Settings) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapSettingsErr("save", "", err)
	}
	values := [][2]string{
		{SettingDarkMode, strconv.FormatBool(s.DarkMode)},
		{SettingDailyGoalMinutes, strconv.Itoa(s.DailyGoalMinutes)},
		{SettingSessionGoalMinutes, strconv.Itoa(s.SessionGoalMinutes)},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", kv[0], kv[1]); err != nil {
			_ = tx.Rollback()
			return wrapSettingsErr("save", kv[0], err)
		}
	}
	return wrapSettingsErr("save", "", tx.Commit())
}

func (d *Database) getSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapSettingsErr("get", key, err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}
