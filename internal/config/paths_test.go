package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetRegexcatDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)

		if got, want := GetRegexcatDir(), filepath.Join(tmpDir, "regexcat"); got != want {
			t.Errorf("GetRegexcatDir mismatch. Got %s, want %s", got, want)
		}
	}

	dir := GetRegexcatDir()
	if !strings.Contains(strings.ToLower(dir), "regexcat") {
		t.Errorf("Expected path to contain 'regexcat', got: %s", dir)
	}
}

func TestGetStateDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		tmpDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", tmpDir)

		dir := GetStateDir()
		expected := filepath.Join(tmpDir, "regexcat")
		if dir != expected {
			t.Errorf("GetStateDir mismatch. Got %s, want %s", dir, expected)
		}
	} else if GetStateDir() != GetRegexcatDir() {
		t.Error("GetStateDir should equal GetRegexcatDir on non-Linux")
	}
}

func TestGetLogsDir(t *testing.T) {
	dir := GetLogsDir()
	if !strings.HasSuffix(dir, "logs") {
		t.Errorf("Expected path to end with 'logs', got: %s", dir)
	}
	if !strings.HasPrefix(dir, GetStateDir()) {
		t.Errorf("LogsDir should be under StateDir. LogsDir: %s, StateDir: %s", dir, GetStateDir())
	}
}

func TestGetSettingsPath(t *testing.T) {
	path := GetSettingsPath()
	if filepath.Base(path) != "settings.json" {
		t.Errorf("unexpected settings file name: %s", path)
	}
	if filepath.Dir(path) != GetRegexcatDir() {
		t.Errorf("settings should live in the config dir, got %s", path)
	}
}

func TestEnsureDirs(t *testing.T) {
	if runtime.GOOS == "linux" {
		baseDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(baseDir, "config"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(baseDir, "state"))
	} else {
		t.Skip("directories outside a temp root on this platform")
	}

	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	for _, dir := range []string{GetRegexcatDir(), GetStateDir(), GetLogsDir()} {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			t.Errorf("Directory not created: %s", dir)
		} else if err != nil {
			t.Errorf("Error checking directory %s: %v", dir, err)
		} else if !info.IsDir() {
			t.Errorf("Path exists but is not a directory: %s", dir)
		}
	}
}
