package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetDebug(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = CloseDebug()
		ConfigureDebug("")
	})
}

func TestDebug_Unconfigured(t *testing.T) {
	resetDebug(t)
	ConfigureDebug("")
	Debug("nothing %d", 1) // must not panic or create files
}

func TestDebug_WritesTimestampedLine(t *testing.T) {
	resetDebug(t)
	dir := t.TempDir()
	ConfigureDebug(dir)

	Debug("run %d copied", 7)
	if err := CloseDebug(); err != nil {
		t.Fatalf("CloseDebug: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "debug-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one debug log, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "] run 7 copied\n") {
		t.Fatalf("unexpected log line %q", line)
	}
}

func TestCleanupLogs(t *testing.T) {
	resetDebug(t)
	dir := t.TempDir()
	ConfigureDebug(dir)

	names := []string{
		"debug-20240101-000000.log",
		"debug-20240102-000000.log",
		"debug-20240103-000000.log",
		"debug-20240104-000000.log",
		"notes.txt",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	CleanupLogs(2)

	for _, n := range []string{"debug-20240103-000000.log", "debug-20240104-000000.log", "notes.txt"} {
		if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
			t.Errorf("%s should be kept: %v", n, err)
		}
	}
	for _, n := range []string{"debug-20240101-000000.log", "debug-20240102-000000.log"} {
		if _, err := os.Stat(filepath.Join(dir, n)); !os.IsNotExist(err) {
			t.Errorf("%s should be removed", n)
		}
	}
}

func TestCleanupLogs_NonPositiveKeepsEverything(t *testing.T) {
	resetDebug(t)
	dir := t.TempDir()
	ConfigureDebug(dir)
	path := filepath.Join(dir, "debug-20240101-000000.log")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	CleanupLogs(0)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log removed with keep=0: %v", err)
	}
}
