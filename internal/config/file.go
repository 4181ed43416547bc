package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvDataDir   = "POMO_DATA_DIR"
	EnvExportDir = "POMO_EXPORT_DIR"
	EnvLogLevel  = "POMO_LOG_LEVEL"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// File holds runtime options read from config.yaml and the environment.
type File struct {
	DataDir              string
	ExportDir            string
	LogLevel             string
	DesktopNotifications bool
	Sound                bool
	Tips                 bool
}

type yamlFile struct {
	DataDir              string `yaml:"data_dir"`
	ExportDir            string `yaml:"export_dir"`
	LogLevel             string `yaml:"log_level"`
	DesktopNotifications *bool  `yaml:"desktop_notifications"`
	Sound                *bool  `yaml:"sound"`
	Tips                 *bool  `yaml:"tips"`
}

// DefaultFile returns options used when no config file exists.
func DefaultFile(dataDir, exportDir string) File {
	return File{
		DataDir:              dataDir,
		ExportDir:            exportDir,
		LogLevel:             "info",
		DesktopNotifications: true,
		Sound:                true,
		Tips:                 true,
	}
}

// Load reads the config file from the user config directory, then applies
// .env and environment overrides. A missing file yields defaults.
func Load(defaults File) (File, error) {
	path, err := ConfigPath()
	if err != nil {
		return ApplyEnv(defaults, os.Getenv), err
	}
	_ = godotenv.Load()
	cfg, err := LoadFrom(path, defaults)
	return ApplyEnv(cfg, os.Getenv), err
}

// LoadFrom reads a YAML config file at path on top of defaults.
func LoadFrom(path string, defaults File) (File, error) {
	cfg := defaults
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlFile
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	applyYamlFile(&cfg, fileData)
	return cfg, nil
}

// ApplyEnv overlays environment overrides using getenv.
func ApplyEnv(cfg File, getenv func(string) string) File {
	if v := strings.TrimSpace(getenv(EnvDataDir)); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(getenv(EnvExportDir)); v != "" {
		cfg.ExportDir = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))); validLogLevels[v] {
		cfg.LogLevel = v
	}
	return cfg
}

// ConfigPath returns the location of config.yaml.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, ConfigFileName), nil
}

func applyYamlFile(cfg *File, fileData yamlFile) {
	if v := strings.TrimSpace(fileData.DataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(fileData.ExportDir); v != "" {
		cfg.ExportDir = v
	}
	if v := strings.ToLower(strings.TrimSpace(fileData.LogLevel)); validLogLevels[v] {
		cfg.LogLevel = v
	}
	if fileData.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fileData.DesktopNotifications
	}
	if fileData.Sound != nil {
		cfg.Sound = *fileData.Sound
	}
	if fileData.Tips != nil {
		cfg.Tips = *fileData.Tips
	}
}
