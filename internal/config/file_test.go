package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	defaults := DefaultFile("/data", "/exports")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"), defaults)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg != defaults {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromAppliesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "data_dir: /tmp/pomo\nlog_level: DEBUG\nsound: false\ntips: false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadFrom(path, DefaultFile("/data", "/exports"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DataDir != "/tmp/pomo" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ExportDir != "/exports" {
		t.Fatalf("ExportDir = %q", cfg.ExportDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Sound || cfg.Tips {
		t.Fatalf("expected sound and tips disabled")
	}
	if !cfg.DesktopNotifications {
		t.Fatalf("expected desktop notifications to keep default")
	}
}

func TestLoadFromIgnoresInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadFrom(path, DefaultFile("/data", "/exports"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadFromMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sound: [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	defaults := DefaultFile("/data", "/exports")
	cfg, err := LoadFrom(path, defaults)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg != defaults {
		t.Fatalf("expected defaults on parse error, got %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDataDir:   " /env/data ",
		EnvExportDir: "/env/exports",
		EnvLogLevel:  "warn",
	}
	cfg := ApplyEnv(DefaultFile("/data", "/exports"), func(k string) string { return env[k] })
	if cfg.DataDir != "/env/data" || cfg.ExportDir != "/env/exports" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
}
