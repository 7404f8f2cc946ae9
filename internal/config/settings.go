package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/regexcat/regexcat/internal/pattern"
)

// Settings holds all user-configurable application settings organized by category.
// The file is only ever read; selections made in the UI are not written back.
type Settings struct {
	General GeneralSettings `json:"general"`
	Pattern PatternSettings `json:"pattern"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	AutoCopy          bool `json:"auto_copy"`
	Theme             int  `json:"theme"`
	LogRetentionCount int  `json:"log_retention_count"`
	Debug             bool `json:"debug"`
}

const (
	ThemeAdaptive = 0
	ThemeLight    = 1
	ThemeDark     = 2
)

// PatternSettings holds the initial mode selections.
type PatternSettings struct {
	DefaultCleanup  string `json:"default_cleanup"`
	DefaultMatching string `json:"default_matching"`
}

// Environment variables that override the settings file.
const (
	EnvCleanup = "REGEXCAT_CLEANUP"
	EnvMatch   = "REGEXCAT_MATCH"
	EnvNoCopy  = "REGEXCAT_NO_COPY"
)

// SettingMeta provides metadata for a single setting (for UI rendering).
type SettingMeta struct {
	Key         string // JSON key name
	Label       string // Human-readable label
	Description string // Help text
	Type        string // "string", "int", "bool"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "auto_copy", Label: "Auto Copy", Description: "Copy the pattern to the clipboard after every change.", Type: "bool"},
			{Key: "theme", Label: "App Theme", Description: "UI Theme (System, Light, Dark).", Type: "int"},
			{Key: "log_retention_count", Label: "Log Retention Count", Description: "Number of recent log files to keep.", Type: "int"},
			{Key: "debug", Label: "Debug Log", Description: "Write a debug log to the logs directory.", Type: "bool"},
		},
		"Pattern": {
			{Key: "default_cleanup", Label: "Default Clean-Up", Description: "Clean-up mode selected on startup (e.g. removeScheme, domain).", Type: "string"},
			{Key: "default_matching", Label: "Default Matching", Description: "Matching mode selected on startup (wildcard or strict).", Type: "string"},
		},
	}
}

// CategoryOrder returns the order of categories for display.
func CategoryOrder() []string {
	return []string{"General", "Pattern"}
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	defaults := pattern.DefaultOptions()
	return &Settings{
		General: GeneralSettings{
			AutoCopy:          true,
			Theme:             ThemeAdaptive,
			LogRetentionCount: 5,
			Debug:             false,
		},
		Pattern: PatternSettings{
			DefaultCleanup:  defaults.Cleanup.String(),
			DefaultMatching: defaults.Matching.String(),
		},
	}
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads settings from path, filling missing fields with defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}

// ApplyEnv overlays environment overrides onto s.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvCleanup); ok && strings.TrimSpace(v) != "" {
		if _, err := pattern.ParseCleanupMode(v); err != nil {
			return fmt.Errorf("%s: %w", EnvCleanup, err)
		}
		s.Pattern.DefaultCleanup = v
	}
	if v, ok := lookup(EnvMatch); ok && strings.TrimSpace(v) != "" {
		if _, err := pattern.ParseMatchingMode(v); err != nil {
			return fmt.Errorf("%s: %w", EnvMatch, err)
		}
		s.Pattern.DefaultMatching = v
	}
	if v, ok := lookup(EnvNoCopy); ok && strings.TrimSpace(v) != "" {
		noCopy, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoCopy, err)
		}
		s.General.AutoCopy = !noCopy
	}
	return nil
}

// Options resolves the configured default modes.
func (s *Settings) Options() (pattern.Options, error) {
	cleanup, err := pattern.ParseCleanupMode(s.Pattern.DefaultCleanup)
	if err != nil {
		return pattern.DefaultOptions(), err
	}
	matching, err := pattern.ParseMatchingMode(s.Pattern.DefaultMatching)
	if err != nil {
		return pattern.DefaultOptions(), err
	}
	return pattern.Options{Cleanup: cleanup, Matching: matching}, nil
}

// Validate checks every field that has a restricted range.
func (s *Settings) Validate() error {
	if s.General.Theme < ThemeAdaptive || s.General.Theme > ThemeDark {
		return fmt.Errorf("theme %d out of range", s.General.Theme)
	}
	if s.General.LogRetentionCount < 0 {
		return fmt.Errorf("log_retention_count must not be negative, got %d", s.General.LogRetentionCount)
	}
	if _, err := s.Options(); err != nil {
		return err
	}
	return nil
}
